// Package llm provides chat-completion clients used to delegate
// section location to a language model.
package llm

import (
	"context"
	"fmt"
)

// Provider completes a prompt with a language model.
type Provider interface {
	// Complete sends the prompt and returns the model's text response.
	Complete(ctx context.Context, prompt string) (string, error)

	// Name returns the provider name for output and run history.
	Name() string
}

// Config holds the parameters needed to create a Provider.
type Config struct {
	// Provider is the provider name ("anthropic" or "ollama").
	Provider string
	// Model is the model identifier. Empty selects the provider default.
	Model string
	// AnthropicAPIKey authenticates Anthropic requests.
	AnthropicAPIKey string
	// OllamaURL is the Ollama API base URL. Empty selects the default.
	OllamaURL string
}

// New creates a Provider based on the configuration. Returns an error
// for unsupported or empty provider values.
func New(cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "anthropic":
		opts := []AnthropicOption{WithAPIKey(cfg.AnthropicAPIKey)}
		if cfg.Model != "" {
			opts = append(opts, WithAnthropicModel(cfg.Model))
		}
		return NewAnthropicClient(opts...), nil
	case "ollama":
		var opts []OllamaOption
		if cfg.Model != "" {
			opts = append(opts, WithOllamaModel(cfg.Model))
		}
		if cfg.OllamaURL != "" {
			opts = append(opts, WithBaseURL(cfg.OllamaURL))
		}
		return NewOllamaClient(opts...), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %q", cfg.Provider)
	}
}
