package agent

import (
	"fmt"
	"strings"

	"github.com/nbenliogludev/go-wordle-agent/internal/wordle"
)

// GameMemory is the driver-owned state of one game: the scored rounds, the
// words the game refused, and a trace of everything that happened.
type GameMemory struct {
	history wordle.RoundHistory
	invalid *wordle.InvalidWordSet

	fullLines []string
}

func NewGameMemory() *GameMemory {
	return &GameMemory{invalid: wordle.NewInvalidWordSet()}
}

// Add records a scored round.
func (m *GameMemory) Add(attempt int, res wordle.GuessResult) {
	m.history = append(m.history, res)
	m.fullLines = append(m.fullLines, fmt.Sprintf("attempt=%d guess=%s row=%s", attempt, res.Guess, res.Row()))
}

// Reject records a word the game did not accept.
func (m *GameMemory) Reject(attempt int, word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if !m.invalid.Add(word) {
		return
	}
	m.fullLines = append(m.fullLines, fmt.Sprintf("attempt=%d guess=%s rejected", attempt, word))
}

// ShouldBlock reports whether word must not be typed again, with a trace note.
func (m *GameMemory) ShouldBlock(word string) (bool, string) {
	word = strings.ToLower(strings.TrimSpace(word))

	if m.history.Guessed(word) {
		return true, fmt.Sprintf("NOTE: %s was already guessed, not submitted again.", strings.ToUpper(word))
	}
	if m.invalid.Contains(word) {
		return true, fmt.Sprintf("NOTE: %s was already rejected by the game, not submitted again.", strings.ToUpper(word))
	}
	return false, ""
}

func (m *GameMemory) AddSystemNote(note string) {
	note = strings.TrimSpace(note)
	if note == "" {
		return
	}
	m.fullLines = append(m.fullLines, note)
}

// History returns a copy of the scored rounds.
func (m *GameMemory) History() wordle.RoundHistory {
	if len(m.history) == 0 {
		return nil
	}
	out := make(wordle.RoundHistory, len(m.history))
	copy(out, m.history)
	return out
}

func (m *GameMemory) Invalid() *wordle.InvalidWordSet {
	return m.invalid
}

func (m *GameMemory) FullHistory() []string {
	if len(m.fullLines) == 0 {
		return nil
	}
	out := make([]string, len(m.fullLines))
	copy(out, m.fullLines)
	return out
}
