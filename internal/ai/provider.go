package ai

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when the language backend cannot serve the
// request. Callers recover by composing a reply without it.
var ErrUnavailable = errors.New("ai: backend unavailable")

// Provider is the narrow language-backend capability: one system prompt,
// one user message, one reply.
type Provider interface {
	Chat(ctx context.Context, system, userText string) (string, error)
}
