// Package wordle holds the game data model: per-letter feedback, the round
// history of accepted guesses, rejected words, and the constraint set derived
// from them.
package wordle

import (
	"fmt"
	"strings"
)

// WordLength is the number of letters in every guess.
const WordLength = 5

// LetterColor is the feedback color of a single tile.
type LetterColor string

const (
	Green  LetterColor = "green"  // correct letter, correct position
	Yellow LetterColor = "yellow" // correct letter, wrong position
	Gray   LetterColor = "gray"   // letter absent (see duplicate-letter rule)
)

// ParseColor accepts both color names and the tile states used by the NYT
// board ("correct", "present", "absent").
func ParseColor(s string) (LetterColor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "green", "correct":
		return Green, nil
	case "yellow", "present":
		return Yellow, nil
	case "gray", "grey", "absent":
		return Gray, nil
	default:
		return "", fmt.Errorf("unknown letter color %q", s)
	}
}

// Emoji renders the color the way the game shares results.
func (c LetterColor) Emoji() string {
	switch c {
	case Green:
		return "🟩"
	case Yellow:
		return "🟨"
	default:
		return "⬜"
	}
}

// GuessResult is one accepted attempt: the guessed word and its feedback,
// position-aligned.
type GuessResult struct {
	Guess  string
	Colors [WordLength]LetterColor
}

// NewGuessResult validates the guess and colors and returns an immutable
// result. The guess is stored lowercase.
func NewGuessResult(guess string, colors []LetterColor) (GuessResult, error) {
	word := strings.ToLower(strings.TrimSpace(guess))
	if !IsWord(word) {
		return GuessResult{}, fmt.Errorf("guess %q is not a %d-letter word", guess, WordLength)
	}
	if len(colors) != WordLength {
		return GuessResult{}, fmt.Errorf("guess %q: got %d colors, want %d", guess, len(colors), WordLength)
	}
	res := GuessResult{Guess: word}
	for i, c := range colors {
		switch c {
		case Green, Yellow, Gray:
		default:
			return GuessResult{}, fmt.Errorf("guess %q: invalid color %q at position %d", guess, c, i+1)
		}
		res.Colors[i] = c
	}
	return res, nil
}

// Letter returns the uppercase letter at position i.
func (r GuessResult) Letter(i int) byte {
	return upper(r.Guess[i])
}

// Solved reports whether every tile is green.
func (r GuessResult) Solved() bool {
	for _, c := range r.Colors {
		if c != Green {
			return false
		}
	}
	return true
}

// Row renders the result as emoji/letter pairs, e.g. "⬜ C 🟩 R ⬜ A".
func (r GuessResult) Row() string {
	parts := make([]string, 0, WordLength)
	for i := 0; i < WordLength; i++ {
		parts = append(parts, r.Colors[i].Emoji()+" "+string(r.Letter(i)))
	}
	return strings.Join(parts, " ")
}

// RoundHistory is the chronological list of accepted guesses of one game.
type RoundHistory []GuessResult

// Attempt is the 1-based number of the next attempt.
func (h RoundHistory) Attempt() int {
	return len(h) + 1
}

// Guessed reports whether word was already accepted in this game.
func (h RoundHistory) Guessed(word string) bool {
	word = strings.ToLower(word)
	for _, r := range h {
		if r.Guess == word {
			return true
		}
	}
	return false
}

// Solved reports whether the last accepted guess was all green.
func (h RoundHistory) Solved() bool {
	return len(h) > 0 && h[len(h)-1].Solved()
}

// InvalidWordSet records words the game refused as not in its dictionary.
// Insertion order is kept so prompts are deterministic.
type InvalidWordSet struct {
	words []string
	seen  map[string]struct{}
}

// NewInvalidWordSet returns a set seeded with words.
func NewInvalidWordSet(words ...string) *InvalidWordSet {
	s := &InvalidWordSet{seen: make(map[string]struct{})}
	for _, w := range words {
		s.Add(w)
	}
	return s
}

// Add records word and reports whether it was new.
func (s *InvalidWordSet) Add(word string) bool {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return false
	}
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[word]; ok {
		return false
	}
	s.seen[word] = struct{}{}
	s.words = append(s.words, word)
	return true
}

// Contains reports whether word was rejected before (case-insensitive).
func (s *InvalidWordSet) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.seen[strings.ToLower(strings.TrimSpace(word))]
	return ok
}

// Words returns a copy of the rejected words in rejection order.
func (s *InvalidWordSet) Words() []string {
	if s == nil || len(s.words) == 0 {
		return nil
	}
	out := make([]string, len(s.words))
	copy(out, s.words)
	return out
}

// Len returns the number of rejected words.
func (s *InvalidWordSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

// IsWord reports whether s is exactly WordLength ASCII letters.
func IsWord(s string) bool {
	if len(s) != WordLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
