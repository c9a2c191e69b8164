package llm

import "context"

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role
	Content string
}

// GuessOracle turns a conversation into the backend's raw reply text. Any
// text generator, remote or local, can stand behind it.
type GuessOracle interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}
