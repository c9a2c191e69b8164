package browser

import (
	"context"
	"errors"
	"testing"

	"github.com/nbenliogludev/go-wordle-agent/internal/wordle"
)

func TestOfflineBoardPlaysAndRejects(t *testing.T) {
	ctx := context.Background()
	b, err := NewOfflineBoard("spear", "crane", "slate", "spear")
	if err != nil {
		t.Fatalf("NewOfflineBoard: %v", err)
	}

	if err := b.SubmitGuess(ctx, "xyzzy"); err != nil {
		t.Fatalf("SubmitGuess: %v", err)
	}
	if _, err := b.ReadRowFeedback(ctx, 0); !errors.Is(err, ErrWordRejected) {
		t.Fatalf("expected rejection, got %v", err)
	}
	if err := b.SubmitGuess(ctx, "crane"); err == nil {
		t.Fatalf("typing over an uncleared row must fail")
	}
	if err := b.ClearRow(ctx); err != nil {
		t.Fatalf("ClearRow: %v", err)
	}

	if err := b.SubmitGuess(ctx, "CRANE"); err != nil {
		t.Fatalf("SubmitGuess: %v", err)
	}
	res, err := b.ReadRowFeedback(ctx, 0)
	if err != nil {
		t.Fatalf("ReadRowFeedback: %v", err)
	}
	if res.Colors != wordle.Score("spear", "crane") {
		t.Fatalf("unexpected colors %v", res.Colors)
	}

	if err := b.SubmitGuess(ctx, "spear"); err != nil {
		t.Fatalf("SubmitGuess: %v", err)
	}
	res, err = b.ReadRowFeedback(ctx, 1)
	if err != nil || !res.Solved() {
		t.Fatalf("expected solved row, got %+v, %v", res, err)
	}
	if _, err := b.ReadRowFeedback(ctx, 2); err == nil {
		t.Fatalf("row 3 has not been played")
	}
}

func TestOfflineBoardRandomAnswer(t *testing.T) {
	b, err := NewOfflineBoard("")
	if err != nil {
		t.Fatalf("NewOfflineBoard: %v", err)
	}
	if !wordle.IsWord(b.Answer()) {
		t.Fatalf("random answer %q is not a word", b.Answer())
	}
	if len(EmbeddedWords()) < 100 {
		t.Fatalf("embedded word list too small")
	}
}

func TestOfflineBoardValidation(t *testing.T) {
	if _, err := NewOfflineBoard("toolong"); err == nil {
		t.Fatalf("expected error for bad answer")
	}
	b, _ := NewOfflineBoard("crane")
	if err := b.SubmitGuess(context.Background(), "cr4ne"); err == nil {
		t.Fatalf("expected error for non-letters")
	}
}

func TestNewUnknownDriver(t *testing.T) {
	if _, err := New("selenium", Options{}); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
	b, err := New(DriverOffline, Options{Answer: "crane"})
	if err != nil {
		t.Fatalf("offline driver: %v", err)
	}
	_ = b.Close()
}
