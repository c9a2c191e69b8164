// Package browser drives the Wordle board: typing guesses, reading the
// colored tiles of a row and clearing a rejected row.
package browser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nbenliogludev/go-wordle-agent/internal/wordle"
)

// ErrWordRejected is returned by ReadRowFeedback when the game did not accept
// the typed word (not in its word list). The row must be cleared.
var ErrWordRejected = errors.New("word rejected by the game")

const (
	DriverPlaywright = "playwright"
	DriverChromedp   = "chromedp"
	DriverOffline    = "offline"
)

const DefaultURL = "https://www.nytimes.com/games/wordle/index.html"

// Board is the game surface the agent plays on.
type Board interface {
	// Open loads the game and dismisses whatever stands between us and the grid.
	Open(ctx context.Context) error
	// SubmitGuess types the letters and presses Enter.
	SubmitGuess(ctx context.Context, letters string) error
	// ReadRowFeedback reads the tiles of a 0-based row, or ErrWordRejected.
	ReadRowFeedback(ctx context.Context, row int) (wordle.GuessResult, error)
	// ClearRow erases a typed but rejected guess.
	ClearRow(ctx context.Context) error
	Close() error
}

type Options struct {
	URL      string
	Headless bool
	Width    int
	Height   int
	// KeyDelay is the pause between keystrokes.
	KeyDelay time.Duration
	// SettleDelay bounds how long to wait for a row to be revealed.
	SettleDelay time.Duration
	// UserDataDir holds the persistent browser profile (playwright only).
	UserDataDir string
	// Answer and Words configure the offline board.
	Answer string
	Words  []string
}

func (o Options) withDefaults() Options {
	if o.URL == "" {
		o.URL = DefaultURL
	}
	if o.Width <= 0 {
		o.Width = 1024
	}
	if o.Height <= 0 {
		o.Height = 768
	}
	if o.KeyDelay < 0 {
		o.KeyDelay = 0
	}
	if o.SettleDelay <= 0 {
		o.SettleDelay = 5 * time.Second
	}
	return o
}

// New starts the board for the given driver.
func New(driver string, opts Options) (Board, error) {
	switch strings.ToLower(driver) {
	case "", DriverPlaywright:
		return NewManager(opts)
	case DriverChromedp:
		return NewChromeManager(opts)
	case DriverOffline:
		return NewOfflineBoard(opts.Answer, opts.Words...)
	default:
		return nil, fmt.Errorf("unknown browser driver %q", driver)
	}
}

func checkLetters(letters string) (string, error) {
	if !wordle.IsWord(letters) {
		return "", fmt.Errorf("refusing to type %q: not a %d-letter word", letters, wordle.WordLength)
	}
	return strings.ToLower(letters), nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
