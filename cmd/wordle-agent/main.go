package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nbenliogludev/go-wordle-agent/internal/agent"
	"github.com/nbenliogludev/go-wordle-agent/internal/browser"
	"github.com/nbenliogludev/go-wordle-agent/internal/config"
	"github.com/nbenliogludev/go-wordle-agent/internal/llm"
	"github.com/nbenliogludev/go-wordle-agent/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "wordle-agent: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	backend, err := cfg.LLMBackend()
	if err != nil {
		return err
	}
	oracle, err := llm.NewOpenAIClient(backend, nil)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}

	log.Info().
		Str("provider", string(backend.Provider)).
		Str("model", backend.Model).
		Str("driver", cfg.Driver).
		Msg("starting Wordle agent")

	board, err := browser.New(cfg.Driver, cfg.BoardOptions())
	if err != nil {
		return fmt.Errorf("failed to start browser: %w", err)
	}
	defer func() {
		if cerr := board.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("closing board")
		}
	}()
	if ob, ok := board.(*browser.OfflineBoard); ok {
		log.Debug().Str("answer", ob.Answer()).Msg("offline game")
	}

	// Ctrl+C is handled by the runner between rounds.
	ctx := context.Background()

	started := time.Now()
	runner := agent.NewRunner(agent.NewAgent(board, oracle), agent.Settings{
		MaxAttempts:   cfg.MaxAttempts,
		MaxRejections: cfg.MaxRejections,
	})
	res, runErr := runner.Run(ctx)

	if res != nil && cfg.HistoryEnabled() && !errors.Is(runErr, agent.ErrInterrupted) {
		saveGame(cfg, backend, started, res)
	}
	return runErr
}

func saveGame(cfg config.Config, backend llm.Backend, started time.Time, res *agent.Result) {
	st, err := store.Open(cfg.HistoryDB)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.HistoryDB).Msg("game history unavailable")
		return
	}
	defer func() { _ = st.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	id, err := st.SaveGame(ctx, store.Game{
		StartedAt: started,
		EndedAt:   time.Now(),
		Provider:  string(backend.Provider),
		Model:     backend.Model,
		Driver:    cfg.Driver,
		Won:       res.Won,
		Reason:    res.Reason,
		Rounds:    res.History,
		Invalid:   res.Invalid,
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to save game")
		return
	}

	stats, err := st.Stats(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read stats")
		return
	}
	log.Info().
		Int64("game", id).
		Int("played", stats.Played).
		Int("won", stats.Won).
		Str("win_rate", fmt.Sprintf("%.0f%%", stats.WinRate()*100)).
		Msg("game saved")
}
