package browser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog/log"

	"github.com/nbenliogludev/go-wordle-agent/internal/wordle"
)

// Manager is the playwright-backed board.
type Manager struct {
	pw      *playwright.Playwright
	Context playwright.BrowserContext
	Page    playwright.Page
	opts    Options
}

func NewManager(opts Options) (*Manager, error) {
	opts = opts.withDefaults()

	if err := playwright.Install(&playwright.RunOptions{Browsers: []string{"chromium"}}); err != nil {
		return nil, fmt.Errorf("install pw failed: %w", err)
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start pw failed: %w", err)
	}

	userDataDir := opts.UserDataDir
	if userDataDir == "" {
		wd, _ := os.Getwd()
		userDataDir = filepath.Join(wd, ".playwright_data")
	}

	browserCtx, err := pw.Chromium.LaunchPersistentContext(userDataDir, playwright.BrowserTypeLaunchPersistentContextOptions{
		Headless: playwright.Bool(opts.Headless),
		Viewport: &playwright.Size{Width: opts.Width, Height: opts.Height},
		Args: []string{
			"--disable-blink-features=AutomationControlled",
		},
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("launch chromium: %w", err)
	}

	var page playwright.Page
	if pages := browserCtx.Pages(); len(pages) > 0 {
		page = pages[0]
	} else {
		page, err = browserCtx.NewPage()
		if err != nil {
			_ = browserCtx.Close()
			_ = pw.Stop()
			return nil, fmt.Errorf("failed to create page: %w", err)
		}
	}

	page.SetDefaultTimeout(30000)
	page.SetDefaultNavigationTimeout(60000)

	return &Manager{
		pw:      pw,
		Context: browserCtx,
		Page:    page,
		opts:    opts,
	}, nil
}

func (m *Manager) Open(ctx context.Context) error {
	log.Info().Str("url", m.opts.URL).Msg("opening game")
	if _, err := m.Page.Goto(m.opts.URL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(60000),
	}); err != nil {
		return fmt.Errorf("could not navigate to %s: %w", m.opts.URL, err)
	}

	// The welcome screen and the how-to-play modal are not always shown.
	m.clickIfPresent(playButtonSelector)
	m.clickIfPresent(closeModalSelector)

	if err := m.Page.Locator(boardSelector).First().ScrollIntoViewIfNeeded(); err != nil {
		return fmt.Errorf("scroll to board: %w", err)
	}
	return ctx.Err()
}

func (m *Manager) clickIfPresent(selector string) {
	err := m.Page.Locator(selector).First().Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(float64(optionalStepTimeout.Milliseconds())),
	})
	if err != nil {
		log.Debug().Str("selector", selector).Err(err).Msg("optional click skipped")
	}
}

func (m *Manager) SubmitGuess(ctx context.Context, letters string) error {
	word, err := checkLetters(letters)
	if err != nil {
		return err
	}
	for _, r := range word {
		if err := m.Page.Keyboard().Press(string(r)); err != nil {
			return fmt.Errorf("press %q: %w", r, err)
		}
		if err := sleep(ctx, m.opts.KeyDelay); err != nil {
			return err
		}
	}
	if err := m.Page.Keyboard().Press("Enter"); err != nil {
		return fmt.Errorf("press Enter: %w", err)
	}
	return nil
}

func (m *Manager) ReadRowFeedback(ctx context.Context, row int) (wordle.GuessResult, error) {
	return waitForRow(ctx, m.opts.SettleDelay, func() (string, error) {
		v, err := m.Page.Evaluate(rowScript(row))
		if err != nil {
			return "", fmt.Errorf("js evaluation failed: %w", err)
		}
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("expected string from js, got %T", v)
		}
		return s, nil
	})
}

func (m *Manager) ClearRow(ctx context.Context) error {
	for i := 0; i < wordle.WordLength; i++ {
		if err := m.Page.Keyboard().Press("Backspace"); err != nil {
			return fmt.Errorf("press Backspace: %w", err)
		}
		if err := sleep(ctx, m.opts.KeyDelay); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) Close() error {
	var firstErr error
	if m.Context != nil {
		firstErr = m.Context.Close()
	}
	if m.pw != nil {
		if err := m.pw.Stop(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
