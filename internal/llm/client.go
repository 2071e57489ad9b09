package llm

import (
	"context"
	"errors"
)

var (
	ErrNotConfigured = errors.New("llm client not configured")
	ErrRequestFailed = errors.New("request failed")
	ErrEmptyResponse = errors.New("empty response")
)

// Client is the chat-completion surface. The query routing path never
// calls it; it is constructed at startup so the deployment can verify its
// configuration, matching how the backend has always been wired.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Model() string
}
