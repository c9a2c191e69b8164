// Package store persists finished games in SQLite.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nbenliogludev/go-wordle-agent/internal/wordle"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Game is one finished game as stored.
type Game struct {
	StartedAt time.Time
	EndedAt   time.Time
	Provider  string
	Model     string
	Driver    string
	Won       bool
	Reason    string
	Rounds    wordle.RoundHistory
	Invalid   []string
}

// Stats aggregates all stored games.
type Stats struct {
	Played int
	Won    int
	// Distribution maps the winning attempt number to its count.
	Distribution map[int]int
}

// WinRate is the share of games won, 0 when nothing was played.
func (s Stats) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Won) / float64(s.Played)
}

// Store wraps SQLite access for game history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			provider TEXT NOT NULL,
			model TEXT NOT NULL,
			driver TEXT NOT NULL,
			won INTEGER NOT NULL,
			attempts INTEGER NOT NULL,
			reason TEXT NOT NULL,
			invalid_words TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS guesses (
			game_id INTEGER NOT NULL,
			attempt INTEGER NOT NULL,
			word TEXT NOT NULL,
			pattern TEXT NOT NULL,
			PRIMARY KEY (game_id, attempt)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_games_ended_at ON games(ended_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveGame stores a game and its rounds, returning the new game id.
func (s *Store) SaveGame(ctx context.Context, g Game) (id int64, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO games (started_at, ended_at, provider, model, driver, won, attempts, reason, invalid_words)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.StartedAt.UTC().Format(time.RFC3339Nano),
		g.EndedAt.UTC().Format(time.RFC3339Nano),
		g.Provider,
		g.Model,
		g.Driver,
		g.Won,
		len(g.Rounds),
		g.Reason,
		strings.Join(g.Invalid, ","),
	)
	if err != nil {
		return 0, err
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for i, r := range g.Rounds {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO guesses (game_id, attempt, word, pattern) VALUES (?, ?, ?, ?)`,
			id, i+1, r.Guess, encodePattern(r.Colors),
		); err != nil {
			return 0, err
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// Stats aggregates every stored game.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	st := Stats{Distribution: map[int]int{}}
	rows, err := s.db.QueryContext(ctx,
		`SELECT won, attempts, COUNT(*) FROM games GROUP BY won, attempts`)
	if err != nil {
		return st, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var won bool
		var attempts, n int
		if err := rows.Scan(&won, &attempts, &n); err != nil {
			return st, err
		}
		st.Played += n
		if won {
			st.Won += n
			st.Distribution[attempts] += n
		}
	}
	return st, rows.Err()
}

// encodePattern writes one letter per tile: G green, Y yellow, X gray.
func encodePattern(colors [wordle.WordLength]wordle.LetterColor) string {
	var b strings.Builder
	for _, c := range colors {
		switch c {
		case wordle.Green:
			b.WriteByte('G')
		case wordle.Yellow:
			b.WriteByte('Y')
		default:
			b.WriteByte('X')
		}
	}
	return b.String()
}
