package agent

import (
	"context"
	"io"
	"os"

	"github.com/nbenliogludev/go-wordle-agent/internal/browser"
	"github.com/nbenliogludev/go-wordle-agent/internal/llm"
)

// Agent pairs the board it plays on with the oracle that proposes words.
type Agent struct {
	board  browser.Board
	oracle llm.GuessOracle
	out    io.Writer
}

func NewAgent(b browser.Board, o llm.GuessOracle) *Agent {
	return &Agent{board: b, oracle: o, out: os.Stdout}
}

// WithOutput redirects the end-of-game report.
func (a *Agent) WithOutput(w io.Writer) *Agent {
	a.out = w
	return a
}

// Run plays one game with default settings and maxAttempts attempts.
func (a *Agent) Run(ctx context.Context, maxAttempts int) (*Result, error) {
	s := DefaultSettings()
	s.MaxAttempts = maxAttempts
	return NewRunner(a, s).Run(ctx)
}
