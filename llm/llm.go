package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/use-agent/listingscout/config"
)

// ErrNotConfigured is returned by New when the selected provider has no
// API key.
var ErrNotConfigured = errors.New("llm: provider not configured")

// Request is one chat completion: a system role and a single user prompt.
type Request struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Completer returns the raw text of a model reply.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// New builds the Completer for the configured provider.
func New(cfg config.LLMConfig) (Completer, error) {
	if !cfg.Configured() {
		return nil, ErrNotConfigured
	}
	switch cfg.Provider {
	case "openai", "":
		return NewOpenAI(cfg), nil
	case "anthropic":
		return NewAnthropic(cfg), nil
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", cfg.Provider)
	}
}

// Disabled stands in when no provider is configured. Every call fails with
// ErrNotConfigured.
type Disabled struct{}

// Complete implements [Completer].
func (Disabled) Complete(context.Context, Request) (string, error) {
	return "", ErrNotConfigured
}
