package llm

import (
	"context"
	"errors"
)

// Message is one chat-completion message.
type Message struct {
	Role    string
	Content string
}

// Client abstracts chat-completion providers.
type Client interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

var (
	// ErrNotConfigured is returned by the placeholder client.
	ErrNotConfigured = errors.New("llm client not configured")

	// ErrRateLimited signals the provider rejected the call with a rate limit.
	ErrRateLimited = errors.New("llm rate limit exceeded")
)

// Placeholder is a stub implementation until provider wiring is added.
type Placeholder struct{}

// Complete returns ErrNotConfigured.
func (Placeholder) Complete(ctx context.Context, messages []Message) (string, error) {
	_ = ctx
	_ = messages
	return "", ErrNotConfigured
}
