package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nbenliogludev/go-wordle-agent/internal/wordle"
)

var (
	ErrInterrupted       = errors.New("execution interrupted")
	ErrTooManyRejections = errors.New("too many rejected guesses")
	ErrOracleFail        = errors.New("oracle error")
	ErrBoardFail         = errors.New("board error")
)

const (
	DefaultMaxAttempts   = 6
	DefaultMaxRejections = 10
)

type Settings struct {
	MaxAttempts int
	// MaxRejections caps rejected or blocked words within one attempt slot.
	MaxRejections int
}

func DefaultSettings() Settings {
	return Settings{MaxAttempts: DefaultMaxAttempts, MaxRejections: DefaultMaxRejections}
}

// Result is the outcome of one game.
type Result struct {
	Won      bool
	Attempts int
	History  wordle.RoundHistory
	Invalid  []string
	Duration time.Duration
	Reason   string
}

type Runner struct {
	agent      *Agent
	settings   Settings
	mem        *GameMemory
	reporter   *Reporter
	signalCtrl *SignalController
}

func NewRunner(a *Agent, s Settings) *Runner {
	if s.MaxAttempts <= 0 {
		s.MaxAttempts = DefaultMaxAttempts
	}
	if s.MaxRejections <= 0 {
		s.MaxRejections = DefaultMaxRejections
	}
	return &Runner{
		agent:      a,
		settings:   s,
		mem:        NewGameMemory(),
		reporter:   NewReporter(a.out),
		signalCtrl: NewSignalController(),
	}
}

// Run plays until the word is guessed, attempts run out, or a fatal error.
// Losing is not an error.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	defer r.signalCtrl.Close()

	if err := r.agent.board.Open(ctx); err != nil {
		return r.finish(start, reasonBoardError, false, fmt.Errorf("%w: open game: %w", ErrBoardFail, err))
	}

	for attempt := 1; attempt <= r.settings.MaxAttempts; attempt++ {
		if r.signalCtrl.Interrupted() || ctx.Err() != nil {
			return r.finish(start, reasonInterrupted, false, ErrInterrupted)
		}

		res, err := r.executeStep(ctx, attempt)
		if err != nil {
			return r.finish(start, reasonFor(err), false, err)
		}

		if res.Solved() {
			log.Info().Int("attempt", attempt).Str("guess", res.Guess).Msg("Word guessed correctly!")
			return r.finish(start, reasonWon, true, nil)
		}
	}

	log.Info().Int("attempts", r.settings.MaxAttempts).Msg("out of attempts")
	return r.finish(start, reasonOutOfAttempts, false, nil)
}

func (r *Runner) finish(start time.Time, reason string, won bool, err error) (*Result, error) {
	history := r.mem.History()
	res := &Result{
		Won:      won,
		Attempts: len(history),
		History:  history,
		Invalid:  r.mem.Invalid().Words(),
		Duration: time.Since(start).Truncate(time.Millisecond),
		Reason:   reason,
	}
	r.reporter.Report(res, r.mem, err)
	return res, err
}

func reasonFor(err error) string {
	switch {
	case errors.Is(err, ErrTooManyRejections):
		return reasonTooManyRejections
	case errors.Is(err, ErrOracleFail):
		return reasonOracleError
	case errors.Is(err, ErrBoardFail):
		return reasonBoardError
	default:
		return err.Error()
	}
}
