package planner

import (
	"strings"
	"testing"
)

func TestPhaseFor(t *testing.T) {
	want := map[int]string{
		0: PhaseExplore, 1: PhaseExplore, 2: PhaseExplore,
		3: PhaseBalance, 4: PhaseBalance,
		5: PhaseExploit, 6: PhaseExploit, 9: PhaseExploit,
	}
	for attempt, phase := range want {
		if got := PhaseFor(attempt); got != phase {
			t.Fatalf("PhaseFor(%d) = %s, want %s", attempt, got, phase)
		}
	}
}

func TestPlan(t *testing.T) {
	s := Plan(-3)
	if s.Attempt != 1 || s.Phase != PhaseExplore {
		t.Fatalf("unexpected step %+v", s)
	}
	if !strings.Contains(Plan(5).Hint, "ALL known constraints") {
		t.Fatalf("exploit hint must demand every constraint: %q", Plan(5).Hint)
	}
	if !strings.Contains(Plan(3).Hint, "discover new letters") {
		t.Fatalf("balance hint must ask for discovery: %q", Plan(3).Hint)
	}
	if Hint("unknown") != Hint(PhaseExploit) {
		t.Fatalf("unknown phase must fall back to exploit")
	}
}
