package llm

import (
	"fmt"
	"strings"

	"github.com/nbenliogludev/go-wordle-agent/internal/planner"
	"github.com/nbenliogludev/go-wordle-agent/internal/wordle"
)

const systemPrompt = `You are a Wordle solver. Respond with only a single 5-letter word.`

const openingPrompt = `First Wordle guess. Common 5-letter word only. It must not be a proper noun or a plural.`

const legend = `Green squares (🟩) mean the letter is correct and in the right position.
Yellow squares (🟨) mean the letter is in the word but in the wrong position.
White/gray squares (⬜) mean the letter is not in the word.`

const askForWord = `Give one 5-letter word:`

// BuildConversation replays the game as a chat: the opening request, every
// accepted guess as the assistant's own answer, the constraint summary after
// each round as the next user turn, and finally the request for the next
// guess with the strategy for this attempt and the rejected words. repeated
// lists words proposed again for this attempt and not submitted.
func BuildConversation(history wordle.RoundHistory, invalid *wordle.InvalidWordSet, repeated ...string) []Message {
	messages := []Message{{Role: RoleSystem, Content: systemPrompt}}

	for i, r := range history {
		if i == 0 {
			messages = append(messages, Message{Role: RoleUser, Content: openingPrompt})
		} else {
			messages = append(messages, Message{Role: RoleUser, Content: RoundSummary(history[:i]) + "\n" + askForWord})
		}
		messages = append(messages, Message{Role: RoleAssistant, Content: r.Guess})
	}

	messages = append(messages, Message{Role: RoleUser, Content: NextGuessPrompt(history, invalid, repeated...)})
	return messages
}

// NextGuessPrompt is the final user turn of the conversation.
func NextGuessPrompt(history wordle.RoundHistory, invalid *wordle.InvalidWordSet, repeated ...string) string {
	step := planner.Plan(history.Attempt())

	var sb strings.Builder
	if len(history) == 0 {
		sb.WriteString(openingPrompt + "\n")
	} else {
		sb.WriteString(RoundSummary(history))
	}

	if words := invalid.Words(); len(words) > 0 {
		sb.WriteString("NOT these words (invalid): " + strings.ToUpper(strings.Join(words, ", ")) + "\n")
	}
	if guessed := guessedWords(history); len(guessed) > 0 {
		sb.WriteString("Already guessed, do not repeat: " + strings.Join(guessed, ", ") + "\n")
	}
	if len(repeated) > 0 {
		sb.WriteString("You proposed " + strings.ToUpper(strings.Join(repeated, ", ")) +
			" again and it was not submitted. Choose a different word.\n")
	}

	sb.WriteString("\nGuessing strategy (important):\n" + step.Hint + "\n")
	if len(history) > 0 {
		sb.WriteString("\n" + legend + "\n")
	}
	sb.WriteString("\n" + askForWord)
	return sb.String()
}

// RoundSummary renders the board so far followed by the derived constraints.
func RoundSummary(history wordle.RoundHistory) string {
	var sb strings.Builder
	sb.WriteString("Previous guesses:\n")
	for _, r := range history {
		sb.WriteString(r.Row() + "\n")
	}
	sb.WriteString("\n" + DescribeConstraints(wordle.Track(history)))
	return sb.String()
}

// DescribeConstraints states every known fact, one line each. Lines with
// nothing to say are left out.
func DescribeConstraints(cs wordle.ConstraintSet) string {
	var sb strings.Builder
	sb.WriteString("Wordle constraints:\n")
	sb.WriteString("Word: " + cs.Pattern() + "\n")

	if !cs.MustContain.Empty() {
		sb.WriteString("Must have: " + cs.MustContain.String() + "\n")
	}

	var restrictions []string
	for pos, set := range cs.PositionExclusions {
		if !set.Empty() {
			restrictions = append(restrictions, fmt.Sprintf("pos%d≠%s", pos+1, set))
		}
	}
	if len(restrictions) > 0 {
		sb.WriteString("Not at: " + strings.Join(restrictions, ", ") + "\n")
	}

	if !cs.Excluded.Empty() {
		sb.WriteString("Exclude: " + cs.Excluded.String() + "\n")
	}
	return sb.String()
}

func guessedWords(history wordle.RoundHistory) []string {
	if len(history) == 0 {
		return nil
	}
	out := make([]string, 0, len(history))
	for _, r := range history {
		out = append(out, strings.ToUpper(r.Guess))
	}
	return out
}
