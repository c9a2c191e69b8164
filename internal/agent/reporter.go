package agent

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nbenliogludev/go-wordle-agent/internal/wordle"
)

type Reporter struct {
	out io.Writer
}

func NewReporter(out io.Writer) *Reporter {
	if out == nil {
		out = os.Stdout
	}
	return &Reporter{out: out}
}

// Report prints the end-of-game summary.
func (r *Reporter) Report(res *Result, mem *GameMemory, err error) {
	w := r.out

	fmt.Fprintln(w, "\n===== GAME REPORT =====")
	fmt.Fprintf(w, "Duration: %s\n", res.Duration)
	fmt.Fprintf(w, "Attempts: %d\n", res.Attempts)
	fmt.Fprintf(w, "Exit reason: %s\n", humanizeReason(res.Reason))
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
	}

	fmt.Fprintln(w, "\n--- BOARD ---")
	if len(res.History) == 0 {
		fmt.Fprintln(w, "(no guesses)")
	}
	for _, round := range res.History {
		fmt.Fprintln(w, emojiRow(round.Colors[:]), strings.ToUpper(round.Guess))
	}

	if len(res.Invalid) > 0 {
		fmt.Fprintln(w, "\n--- REJECTED WORDS ---")
		fmt.Fprintln(w, strings.ToUpper(strings.Join(res.Invalid, ", ")))
	}

	fmt.Fprintln(w, "\n--- RAW TRACE ---")
	for _, line := range mem.FullHistory() {
		fmt.Fprintln(w, line)
	}

	fmt.Fprintln(w, "===== END OF REPORT =====")
}

func emojiRow(colors []wordle.LetterColor) string {
	var b strings.Builder
	for _, c := range colors {
		b.WriteString(c.Emoji())
	}
	return b.String()
}
