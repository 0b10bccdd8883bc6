package infrastructure

import (
	"context"
	"fmt"
)

// Generator is the boundary to a remote text-generation service. The
// returned text is treated as opaque.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// AIConfig holds configuration for AI clients.
type AIConfig struct {
	Provider    string  `json:"provider"` // "gemini" or "openai"
	APIKey      string  `json:"api_key"`
	Model       string  `json:"model"`
	Temperature float32 `json:"temperature,omitempty"`
	MaxTokens   int     `json:"max_tokens,omitempty"`
	BaseURL     string  `json:"base_url,omitempty"`
}

// NewGenerator creates the Generator for config.Provider.
func NewGenerator(ctx context.Context, config AIConfig) (Generator, error) {
	switch config.Provider {
	case "gemini", "":
		return NewGeminiClient(ctx, config)
	case "openai":
		return NewOpenAIClient(config)
	default:
		return nil, fmt.Errorf("unknown AI provider %q", config.Provider)
	}
}
