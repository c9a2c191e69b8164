package llm

import (
	"context"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/nbenliogludev/go-wordle-agent/internal/wordle"
)

var (
	thinkBlock    = regexp.MustCompile(`(?is)<think>.*?</think>`)
	unclosedThink = regexp.MustCompile(`(?is)<think>.*$`)
	wordToken     = regexp.MustCompile(`\b[a-zA-Z]{5}\b`)
)

// fillerWords are 5-letter words that show up in chatty replies around the
// actual answer.
var fillerWords = map[string]struct{}{
	"think": {}, "guess": {}, "maybe": {}, "would": {}, "could": {}, "final": {},
	"which": {}, "there": {}, "their": {}, "these": {}, "those": {}, "since": {},
	"given": {}, "based": {}, "about": {}, "after": {}, "where": {}, "other": {},
	"first": {}, "words": {}, "valid": {}, "using": {}, "known": {},
}

// GenerateGuess derives the constraints from history, asks the oracle for the
// next word and returns it lowercased. It never retries.
func GenerateGuess(ctx context.Context, oracle GuessOracle, history wordle.RoundHistory, invalid *wordle.InvalidWordSet, repeated ...string) (string, error) {
	messages := BuildConversation(history, invalid, repeated...)
	logConversation(history.Attempt(), messages)

	raw, err := oracle.Complete(ctx, messages)
	if err != nil {
		return "", err
	}

	guess, err := ExtractGuess(raw)
	if err != nil {
		return "", err
	}
	log.Info().Int("attempt", history.Attempt()).Str("guess", guess).Msg("extracted guess")
	return guess, nil
}

// StripReasoning removes <think>...</think> blocks, and an unterminated
// trailing one, from a reply.
func StripReasoning(raw string) string {
	s := thinkBlock.ReplaceAllString(raw, "")
	s = unclosedThink.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// ExtractGuess pulls the answer word out of a reply. Candidates are the
// standalone 5-letter tokens left after stripping reasoning. An all-caps
// token wins, then the first token that is not conversational filler, then
// the first token.
func ExtractGuess(raw string) (string, error) {
	text := StripReasoning(raw)
	tokens := wordToken.FindAllString(text, -1)
	if len(tokens) == 0 {
		return "", &NoGuessExtractedError{Text: text}
	}

	for _, tok := range tokens {
		if tok == strings.ToUpper(tok) {
			return strings.ToLower(tok), nil
		}
	}
	for _, tok := range tokens {
		if _, filler := fillerWords[strings.ToLower(tok)]; !filler {
			return strings.ToLower(tok), nil
		}
	}
	return strings.ToLower(tokens[0]), nil
}

func logConversation(attempt int, messages []Message) {
	if !log.Debug().Enabled() {
		return
	}
	var sb strings.Builder
	for _, m := range messages {
		sb.WriteString("[" + strings.ToUpper(string(m.Role)) + "]:\n" + m.Content + "\n---\n")
	}
	log.Debug().Int("attempt", attempt).Msg("prompt\n" + sb.String())
}
