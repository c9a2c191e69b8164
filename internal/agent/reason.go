package agent

const (
	reasonWon               = "word guessed"
	reasonOutOfAttempts     = "out of attempts"
	reasonInterrupted       = "interrupted by user (Ctrl+C)"
	reasonOracleError       = "oracle error"
	reasonBoardError        = "board error"
	reasonTooManyRejections = "too many rejected words"
)

func humanizeReason(reason string) string {
	switch reason {
	case reasonWon:
		return "Word guessed correctly!"
	case reasonOutOfAttempts:
		return "all attempts used, word not found"
	case reasonInterrupted:
		return "execution was interrupted by user (Ctrl+C)"
	case reasonOracleError:
		return "language model request failed"
	case reasonBoardError:
		return "game board error"
	case reasonTooManyRejections:
		return "the game rejected too many words in a row"
	default:
		return reason
	}
}
