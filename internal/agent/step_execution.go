package agent

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/nbenliogludev/go-wordle-agent/internal/browser"
	"github.com/nbenliogludev/go-wordle-agent/internal/llm"
	"github.com/nbenliogludev/go-wordle-agent/internal/wordle"
)

// executeStep fills one attempt slot. Words the game rejects, and words the
// guard blocks, do not use up the attempt; the oracle is asked again.
func (r *Runner) executeStep(ctx context.Context, attempt int) (wordle.GuessResult, error) {
	row := attempt - 1
	board := r.agent.board
	var repeated []string

	for rejections := 0; ; {
		if rejections > r.settings.MaxRejections {
			return wordle.GuessResult{}, fmt.Errorf("%w: %d in attempt %d", ErrTooManyRejections, rejections, attempt)
		}

		history := r.mem.History()
		guess, err := llm.GenerateGuess(ctx, r.agent.oracle, history, r.mem.Invalid(), repeated...)
		if err != nil {
			return wordle.GuessResult{}, fmt.Errorf("%w: %w", ErrOracleFail, err)
		}

		if blocked, reason := r.mem.ShouldBlock(guess); blocked {
			log.Warn().Int("attempt", attempt).Str("guess", guess).Msg("oracle repeated a word, asking again")
			r.mem.AddSystemNote(reason)
			if !slices.Contains(repeated, guess) {
				repeated = append(repeated, guess)
			}
			rejections++
			continue
		}

		if cs := wordle.Track(history); !cs.Allows(guess) {
			log.Warn().Int("attempt", attempt).Str("guess", guess).Str("pattern", cs.Pattern()).
				Msg("guess contradicts known constraints")
			r.mem.AddSystemNote(fmt.Sprintf("NOTE: %s does not fit the known constraints.", strings.ToUpper(guess)))
		}

		log.Info().Int("attempt", attempt).Str("guess", guess).Msg("Guessing")
		if err := board.SubmitGuess(ctx, guess); err != nil {
			return wordle.GuessResult{}, fmt.Errorf("%w: submit %q: %w", ErrBoardFail, guess, err)
		}

		res, err := board.ReadRowFeedback(ctx, row)
		if errors.Is(err, browser.ErrWordRejected) {
			log.Warn().Int("attempt", attempt).Str("guess", guess).Msg("word rejected by the game")
			r.mem.Reject(attempt, guess)
			if err := board.ClearRow(ctx); err != nil {
				return wordle.GuessResult{}, fmt.Errorf("%w: clear row: %w", ErrBoardFail, err)
			}
			rejections++
			continue
		}
		if err != nil {
			return wordle.GuessResult{}, fmt.Errorf("%w: read row %d: %w", ErrBoardFail, row+1, err)
		}

		log.Info().Int("attempt", attempt).Str("row", res.Row()).Msg("feedback")
		r.mem.Add(attempt, res)
		return res, nil
	}
}
