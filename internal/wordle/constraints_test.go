package wordle

import (
	"fmt"
	"testing"
)

func mustResult(t *testing.T, guess string, colors ...LetterColor) GuessResult {
	t.Helper()
	r, err := NewGuessResult(guess, colors)
	if err != nil {
		t.Fatalf("NewGuessResult(%q): %v", guess, err)
	}
	return r
}

func TestTrackEmptyHistory(t *testing.T) {
	cs := Track(nil)
	if !cs.Empty() {
		t.Fatalf("expected empty constraint set, got %+v", cs)
	}
	if got := cs.Pattern(); got != "?????" {
		t.Fatalf("pattern = %q, want ?????", got)
	}
}

func TestTrackCrane(t *testing.T) {
	h := RoundHistory{mustResult(t, "CRANE", Gray, Green, Yellow, Gray, Gray)}
	cs := Track(h)

	if cs.Fixed[1] != 'R' {
		t.Fatalf("position 1 = %q, want R", cs.Fixed[1])
	}
	if got := cs.Pattern(); got != "?R???" {
		t.Fatalf("pattern = %q", got)
	}
	if got := cs.MustContain.String(); got != "AR" {
		t.Fatalf("must contain = %q, want AR", got)
	}
	if got := cs.PositionExclusions[2].String(); got != "A" {
		t.Fatalf("position 2 exclusions = %q, want A", got)
	}
	for pos, set := range cs.PositionExclusions {
		if pos != 2 && !set.Empty() {
			t.Fatalf("unexpected exclusions at %d: %s", pos, set)
		}
	}
	if got := cs.Excluded.String(); got != "CEN" {
		t.Fatalf("excluded = %q, want CEN", got)
	}
}

func TestTrackDuplicateLetterGrayNotExcluded(t *testing.T) {
	h := RoundHistory{mustResult(t, "geese", Gray, Green, Gray, Gray, Gray)}
	cs := Track(h)
	if cs.Excluded.Has('E') {
		t.Fatalf("E must not be excluded when another E is green: %s", cs.Excluded)
	}
	if !cs.MustContain.Has('E') {
		t.Fatalf("E must be present")
	}
	if got := cs.Excluded.String(); got != "GS" {
		t.Fatalf("excluded = %q, want GS", got)
	}
}

func TestTrackDuplicateLetterYellowAndGray(t *testing.T) {
	h := RoundHistory{mustResult(t, "allot", Yellow, Gray, Gray, Gray, Gray)}
	cs := Track(h)
	if cs.Excluded.Has('A') {
		t.Fatalf("A is yellow, must not be excluded")
	}
	if got := cs.Excluded.String(); got != "LOT" {
		t.Fatalf("excluded = %q, want LOT", got)
	}

	h = RoundHistory{mustResult(t, "level", Gray, Yellow, Gray, Gray, Gray)}
	cs = Track(h)
	if got := cs.Excluded.String(); got != "LV" {
		t.Fatalf("excluded = %q, want LV", got)
	}
}

func TestTrackLaterGrayDoesNotExcludeKnownLetter(t *testing.T) {
	h := RoundHistory{
		mustResult(t, "crane", Gray, Green, Gray, Gray, Gray),
		mustResult(t, "robot", Gray, Gray, Gray, Gray, Gray),
	}
	cs := Track(h)
	if cs.Excluded.Has('R') {
		t.Fatalf("R was confirmed present and must never be excluded")
	}
	if cs.Fixed[1] != 'R' {
		t.Fatalf("fixed R lost")
	}
}

func TestTrackIdempotent(t *testing.T) {
	h := RoundHistory{
		mustResult(t, "crane", Gray, Green, Yellow, Gray, Gray),
		mustResult(t, "druid", Gray, Green, Yellow, Gray, Gray),
	}
	a := Track(h)
	b := Track(h)
	if a != b {
		t.Fatalf("Track not idempotent:\n%+v\n%+v", a, b)
	}
	if fmt.Sprintf("%#v", a) != fmt.Sprintf("%#v", b) {
		t.Fatalf("Track output differs between calls")
	}
}

func TestTrackMonotonic(t *testing.T) {
	answers := []string{"spear", "lever", "apple", "eerie", "mamma", "trust"}
	guesses := []string{"crane", "sleep", "eerie", "llama", "tests", "spear", "apple"}

	for _, answer := range answers {
		var h RoundHistory
		prev := Track(h)
		for _, g := range guesses {
			colors := Score(answer, g)
			h = append(h, mustResult(t, g, colors[:]...))
			next := Track(h)

			for i, c := range prev.Fixed {
				if c != 0 && next.Fixed[i] != c {
					t.Fatalf("answer %s after %s: fixed position %d lost %c", answer, g, i, c)
				}
			}
			if !next.MustContain.Contains(prev.MustContain) {
				t.Fatalf("answer %s after %s: must-contain shrank %s -> %s", answer, g, prev.MustContain, next.MustContain)
			}
			if !next.Excluded.Contains(prev.Excluded) {
				t.Fatalf("answer %s after %s: excluded shrank %s -> %s", answer, g, prev.Excluded, next.Excluded)
			}
			for i := range prev.PositionExclusions {
				if !next.PositionExclusions[i].Contains(prev.PositionExclusions[i]) {
					t.Fatalf("answer %s after %s: position %d exclusions shrank", answer, g, i)
				}
			}
			if next.MustContain&next.Excluded != 0 {
				t.Fatalf("answer %s after %s: letters both present and excluded: %s", answer, g, LetterSet(next.MustContain&next.Excluded))
			}
			if !next.Allows(answer) {
				t.Fatalf("answer %s after %s: constraints %+v reject the answer", answer, g, next)
			}
			prev = next
		}
	}
}

func TestAllows(t *testing.T) {
	cs := Track(RoundHistory{mustResult(t, "crane", Gray, Green, Yellow, Gray, Gray)})
	if !cs.Allows("trial") {
		t.Fatalf("expected trial to be allowed")
	}
	for _, w := range []string{"crane", "proud", "brand", "draws", "abc"} {
		if cs.Allows(w) {
			t.Fatalf("expected %q to be rejected", w)
		}
	}
}

func TestLetterSet(t *testing.T) {
	var s LetterSet
	s = s.Add('z').Add('A').Add('m').Add('1')
	if got := s.String(); got != "AMZ" {
		t.Fatalf("String() = %q", got)
	}
	if !s.Has('a') || s.Has('b') || s.Empty() {
		t.Fatalf("unexpected set %s", s)
	}
}
