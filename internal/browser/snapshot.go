package browser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nbenliogludev/go-wordle-agent/internal/wordle"
)

// Selectors of the NYT board.
const (
	playButtonSelector  = `button[data-testid="Play"]`
	closeModalSelector  = `button[aria-label="Close"]`
	boardSelector       = `div[class^="Board-module_board__"]`
	revealPollInterval  = 250 * time.Millisecond
	optionalStepTimeout = 5 * time.Second
)

type tile struct {
	Letter string `json:"letter"`
	State  string `json:"state"`
}

// rowScript returns a JS expression that serializes the tiles of a 0-based
// row to JSON: [{"letter":"c","state":"absent"}, ...], or null.
func rowScript(row int) string {
	return fmt.Sprintf(`(() => {
		const row = document.querySelector('[aria-label="Row %d"]');
		if (!row) return JSON.stringify(null);
		const tiles = Array.from(row.querySelectorAll('[data-testid="tile"]'));
		return JSON.stringify(tiles.map(t => ({
			letter: (t.textContent || '').trim(),
			state: t.getAttribute('data-state') || ''
		})));
	})()`, row+1)
}

// parseRow turns the rowScript output into a result. Tiles that are still
// "tbd" or empty mean the game has not scored the row.
func parseRow(raw string) (wordle.GuessResult, error) {
	var tiles []tile
	if err := json.Unmarshal([]byte(raw), &tiles); err != nil {
		return wordle.GuessResult{}, fmt.Errorf("decode row tiles: %w", err)
	}
	if tiles == nil {
		return wordle.GuessResult{}, fmt.Errorf("row not found on the page")
	}
	if len(tiles) != wordle.WordLength {
		return wordle.GuessResult{}, fmt.Errorf("row has %d tiles, want %d", len(tiles), wordle.WordLength)
	}

	var sb strings.Builder
	colors := make([]wordle.LetterColor, 0, wordle.WordLength)
	for _, t := range tiles {
		if t.Letter == "" {
			return wordle.GuessResult{}, ErrWordRejected
		}
		color, err := wordle.ParseColor(t.State)
		if err != nil {
			return wordle.GuessResult{}, ErrWordRejected
		}
		sb.WriteString(t.Letter)
		colors = append(colors, color)
	}
	return wordle.NewGuessResult(sb.String(), colors)
}

// waitForRow polls read until the row is fully revealed or settle elapses.
// An unrevealed row at the deadline is a rejection.
func waitForRow(ctx context.Context, settle time.Duration, read func() (string, error)) (wordle.GuessResult, error) {
	deadline := time.Now().Add(settle)
	for {
		raw, err := read()
		if err != nil {
			return wordle.GuessResult{}, fmt.Errorf("read row: %w", err)
		}
		res, err := parseRow(raw)
		if err == nil || !errors.Is(err, ErrWordRejected) || !time.Now().Before(deadline) {
			return res, err
		}
		if err := sleep(ctx, revealPollInterval); err != nil {
			return wordle.GuessResult{}, err
		}
	}
}
