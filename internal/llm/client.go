package llm

import "context"

const RoleUser = "user"

// Client is the minimal chat-completion contract used by the services.
type Client interface {
	ChatCompletion(ctx context.Context, req Request) (string, error)
}

// Request carries the parameters of a single chat-completion call.
type Request struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64
	Stop        []string
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
