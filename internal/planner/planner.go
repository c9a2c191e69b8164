// Package planner picks the guessing strategy for an attempt.
package planner

const (
	PhaseExplore = "explore"
	PhaseBalance = "balance"
	PhaseExploit = "exploit"
)

// Phase boundaries: attempts up to exploreUntil explore, up to balanceUntil
// balance, everything after exploits.
const (
	exploreUntil = 2
	balanceUntil = 4
)

type Step struct {
	Attempt int
	Phase   string
	Hint    string
}

const exploreHint = "We're early in the game. Prefer a word that tries as many new, common letters as possible " +
	"over one that only reuses known letters."

const balanceHint = "We're in the middle of the game. Use what we know about letter positions, but still try to " +
	"discover new letters for the positions we're unsure about."

const exploitHint = "We're near the end of the game. MAKE YOUR BEST POSSIBLE GUESS: only pick a word that satisfies " +
	"ALL known constraints, uses every known letter position and every letter known to be in the word. " +
	"Prefer common words over obscure ones."

// PhaseFor maps a 1-based attempt number to a phase. Non-positive attempts are
// treated as the first one.
func PhaseFor(attempt int) string {
	switch {
	case attempt <= exploreUntil:
		return PhaseExplore
	case attempt <= balanceUntil:
		return PhaseBalance
	default:
		return PhaseExploit
	}
}

// Plan returns the strategy step for the given attempt.
func Plan(attempt int) Step {
	if attempt < 1 {
		attempt = 1
	}
	phase := PhaseFor(attempt)
	return Step{Attempt: attempt, Phase: phase, Hint: Hint(phase)}
}

// Hint returns the instruction given to the oracle for a phase. Unknown
// phases get the exploit hint, the safest choice when attempts are scarce.
func Hint(phase string) string {
	switch phase {
	case PhaseExplore:
		return exploreHint
	case PhaseBalance:
		return balanceHint
	default:
		return exploitHint
	}
}
