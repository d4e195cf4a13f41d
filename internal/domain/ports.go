package domain

import "context"

// ChatTurn is the minimal role+content pair shared with the completion
// service. No message metadata crosses this boundary.
type ChatTurn struct {
	Role    Role
	Content string
}

// CompletionClient defines how the core application talks to the external
// text-generation service.
type CompletionClient interface {
	// GenerateReply produces a conversational reply to prompt, given the
	// recent history. History is capped by the caller.
	GenerateReply(ctx context.Context, prompt string, history []ChatTurn) (string, error)

	// Summarize produces a reflection over a finished entry body.
	Summarize(ctx context.Context, entryText string) (string, error)
}

// KeyValue defines durable persistence by a single key. Implementations
// must return ErrKeyNotFound from Get when the key is absent, and treat
// Remove of an absent key as a no-op.
type KeyValue interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Remove(key string) error
}
