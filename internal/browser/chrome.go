package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"
	"github.com/rs/zerolog/log"

	"github.com/nbenliogludev/go-wordle-agent/internal/wordle"
)

const (
	navigateTimeout = 60 * time.Second
	actionTimeout   = 10 * time.Second
)

// ChromeManager is the chromedp-backed board. It talks CDP to a local
// Chrome directly, without the playwright driver.
type ChromeManager struct {
	Ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc
	opts        Options
}

func NewChromeManager(opts Options) (*ChromeManager, error) {
	opts = opts.withDefaults()

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.WindowSize(opts.Width, opts.Height),
	)
	if opts.UserDataDir != "" {
		allocOpts = append(allocOpts, chromedp.UserDataDir(opts.UserDataDir))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	ctx, cancel := chromedp.NewContext(allocCtx)

	m := &ChromeManager{Ctx: ctx, cancel: cancel, allocCancel: allocCancel, opts: opts}

	// The first Run starts the browser.
	if err := chromedp.Run(ctx,
		emulation.SetDeviceMetricsOverride(int64(opts.Width), int64(opts.Height), 1, false),
	); err != nil {
		_ = m.Close()
		return nil, fmt.Errorf("start chrome: %w", err)
	}
	return m, nil
}

// WithTimeout derives a browser context bounded by d.
func (m *ChromeManager) WithTimeout(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.Ctx, d)
}

func (m *ChromeManager) run(ctx context.Context, d time.Duration, actions ...chromedp.Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tctx, cancel := m.WithTimeout(d)
	defer cancel()
	return chromedp.Run(tctx, actions...)
}

func (m *ChromeManager) Open(ctx context.Context) error {
	log.Info().Str("url", m.opts.URL).Msg("opening game")
	if err := m.run(ctx, navigateTimeout,
		chromedp.Navigate(m.opts.URL),
		chromedp.WaitReady("body", chromedp.ByQuery),
	); err != nil {
		return fmt.Errorf("could not navigate to %s: %w", m.opts.URL, err)
	}

	for _, sel := range []string{playButtonSelector, closeModalSelector} {
		if err := m.run(ctx, optionalStepTimeout, chromedp.Click(sel, chromedp.ByQuery, chromedp.NodeVisible)); err != nil {
			log.Debug().Str("selector", sel).Err(err).Msg("optional click skipped")
		}
	}

	if err := m.run(ctx, actionTimeout, chromedp.ScrollIntoView(boardSelector, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("scroll to board: %w", err)
	}
	return nil
}

func (m *ChromeManager) press(ctx context.Context, key string) error {
	if err := m.run(ctx, actionTimeout, chromedp.KeyEvent(key)); err != nil {
		return fmt.Errorf("press %q: %w", key, err)
	}
	return sleep(ctx, m.opts.KeyDelay)
}

func (m *ChromeManager) SubmitGuess(ctx context.Context, letters string) error {
	word, err := checkLetters(letters)
	if err != nil {
		return err
	}
	for _, r := range word {
		if err := m.press(ctx, string(r)); err != nil {
			return err
		}
	}
	return m.run(ctx, actionTimeout, chromedp.KeyEvent(kb.Enter))
}

func (m *ChromeManager) ReadRowFeedback(ctx context.Context, row int) (wordle.GuessResult, error) {
	return waitForRow(ctx, m.opts.SettleDelay, func() (string, error) {
		var raw string
		if err := m.run(ctx, actionTimeout, chromedp.Evaluate(rowScript(row), &raw)); err != nil {
			return "", err
		}
		return raw, nil
	})
}

func (m *ChromeManager) ClearRow(ctx context.Context) error {
	for i := 0; i < wordle.WordLength; i++ {
		if err := m.press(ctx, kb.Backspace); err != nil {
			return err
		}
	}
	return nil
}

func (m *ChromeManager) Close() error {
	if m.cancel != nil {
		m.cancel()
	}
	if m.allocCancel != nil {
		m.allocCancel()
	}
	return nil
}
