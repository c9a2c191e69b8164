package browser

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nbenliogludev/go-wordle-agent/internal/wordle"
)

func TestParseRowScored(t *testing.T) {
	raw := `[{"letter":"c","state":"absent"},{"letter":"r","state":"correct"},{"letter":"a","state":"absent"},{"letter":"n","state":"present"},{"letter":"e","state":"absent"}]`
	res, err := parseRow(raw)
	if err != nil {
		t.Fatalf("parseRow: %v", err)
	}
	want := [wordle.WordLength]wordle.LetterColor{wordle.Gray, wordle.Green, wordle.Gray, wordle.Yellow, wordle.Gray}
	if res.Guess != "crane" || res.Colors != want {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestParseRowRejected(t *testing.T) {
	for _, raw := range []string{
		`[{"letter":"x","state":"tbd"},{"letter":"y","state":"tbd"},{"letter":"z","state":"tbd"},{"letter":"z","state":"tbd"},{"letter":"y","state":"tbd"}]`,
		`[{"letter":"","state":"empty"},{"letter":"","state":"empty"},{"letter":"","state":"empty"},{"letter":"","state":"empty"},{"letter":"","state":"empty"}]`,
	} {
		if _, err := parseRow(raw); !errors.Is(err, ErrWordRejected) {
			t.Fatalf("expected ErrWordRejected, got %v", err)
		}
	}
}

func TestParseRowBroken(t *testing.T) {
	for _, raw := range []string{`null`, `[]`, `not json`} {
		_, err := parseRow(raw)
		if err == nil || errors.Is(err, ErrWordRejected) {
			t.Fatalf("raw %q: expected a hard error, got %v", raw, err)
		}
	}
}

func TestRowScriptTargetsRow(t *testing.T) {
	if s := rowScript(0); !strings.Contains(s, `[aria-label="Row 1"]`) {
		t.Fatalf("row 0 must target Row 1: %s", s)
	}
	if s := rowScript(5); !strings.Contains(s, `[aria-label="Row 6"]`) {
		t.Fatalf("row 5 must target Row 6: %s", s)
	}
}

func TestWaitForRowPollsUntilRevealed(t *testing.T) {
	pending := `[{"letter":"c","state":"absent"},{"letter":"r","state":"tbd"},{"letter":"a","state":"tbd"},{"letter":"n","state":"tbd"},{"letter":"e","state":"tbd"}]`
	done := `[{"letter":"c","state":"absent"},{"letter":"r","state":"correct"},{"letter":"a","state":"absent"},{"letter":"n","state":"present"},{"letter":"e","state":"absent"}]`

	calls := 0
	res, err := waitForRow(context.Background(), 5*time.Second, func() (string, error) {
		calls++
		if calls < 3 {
			return pending, nil
		}
		return done, nil
	})
	if err != nil {
		t.Fatalf("waitForRow: %v", err)
	}
	if calls != 3 || res.Guess != "crane" {
		t.Fatalf("calls=%d result=%+v", calls, res)
	}
}

func TestWaitForRowRejectsAtDeadline(t *testing.T) {
	pending := `[{"letter":"x","state":"tbd"},{"letter":"y","state":"tbd"},{"letter":"z","state":"tbd"},{"letter":"z","state":"tbd"},{"letter":"y","state":"tbd"}]`
	_, err := waitForRow(context.Background(), 300*time.Millisecond, func() (string, error) { return pending, nil })
	if !errors.Is(err, ErrWordRejected) {
		t.Fatalf("expected ErrWordRejected, got %v", err)
	}
}
