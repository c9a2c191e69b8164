package browser

import (
	"bufio"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/nbenliogludev/go-wordle-agent/internal/wordle"
)

//go:embed words.txt
var embeddedWords string

const maxRows = 6

// OfflineBoard plays against a local answer instead of a web page. Words
// outside its list are rejected the way the real game rejects them.
type OfflineBoard struct {
	answer  string
	allowed map[string]struct{}

	rows     []wordle.GuessResult
	typed    string
	rejected bool
}

// NewOfflineBoard builds a board for answer, or a random embedded word when
// answer is empty. words replaces the embedded list when given.
func NewOfflineBoard(answer string, words ...string) (*OfflineBoard, error) {
	list := words
	if len(list) == 0 {
		list = EmbeddedWords()
	}

	allowed := make(map[string]struct{}, len(list)+1)
	for _, w := range list {
		w = strings.ToLower(strings.TrimSpace(w))
		if wordle.IsWord(w) {
			allowed[w] = struct{}{}
		}
	}
	if len(allowed) == 0 {
		return nil, errors.New("offline board: word list is empty")
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer == "" {
		answer = pick(allowed)
	}
	if !wordle.IsWord(answer) {
		return nil, fmt.Errorf("offline board: answer %q is not a %d-letter word", answer, wordle.WordLength)
	}
	allowed[answer] = struct{}{}

	return &OfflineBoard{answer: answer, allowed: allowed}, nil
}

// EmbeddedWords returns the built-in word list.
func EmbeddedWords() []string {
	var out []string
	sc := bufio.NewScanner(strings.NewReader(embeddedWords))
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out
}

func pick(set map[string]struct{}) string {
	n := rand.Intn(len(set))
	for w := range set {
		if n == 0 {
			return w
		}
		n--
	}
	return ""
}

// Answer returns the hidden word.
func (b *OfflineBoard) Answer() string { return b.answer }

func (b *OfflineBoard) Open(ctx context.Context) error { return ctx.Err() }

func (b *OfflineBoard) SubmitGuess(ctx context.Context, letters string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	word, err := checkLetters(letters)
	if err != nil {
		return err
	}
	if b.typed != "" {
		return errors.New("offline board: row already holds a typed word")
	}
	if len(b.rows) >= maxRows {
		return errors.New("offline board: no rows left")
	}

	b.typed = word
	if _, ok := b.allowed[word]; !ok {
		b.rejected = true
		return nil
	}

	colors := wordle.Score(b.answer, word)
	res, err := wordle.NewGuessResult(word, colors[:])
	if err != nil {
		return err
	}
	b.rows = append(b.rows, res)
	b.typed = ""
	return nil
}

func (b *OfflineBoard) ReadRowFeedback(ctx context.Context, row int) (wordle.GuessResult, error) {
	if err := ctx.Err(); err != nil {
		return wordle.GuessResult{}, err
	}
	if row >= 0 && row < len(b.rows) {
		return b.rows[row], nil
	}
	if row == len(b.rows) && b.rejected {
		return wordle.GuessResult{}, ErrWordRejected
	}
	return wordle.GuessResult{}, fmt.Errorf("offline board: row %d has not been played", row+1)
}

func (b *OfflineBoard) ClearRow(ctx context.Context) error {
	b.typed = ""
	b.rejected = false
	return ctx.Err()
}

func (b *OfflineBoard) Close() error { return nil }
