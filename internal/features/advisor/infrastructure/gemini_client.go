package infrastructure

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// geminiClient generates text with the Gemini API.
type geminiClient struct {
	client *genai.Client
	model  string
	config *genai.GenerateContentConfig
}

// NewGeminiClient creates a Gemini-backed Generator. config.APIKey is required.
func NewGeminiClient(ctx context.Context, config AIConfig) (Generator, error) {
	if config.APIKey == "" {
		return nil, errors.New("gemini API key is required")
	}
	if config.Model == "" {
		config.Model = "gemini-2.0-flash"
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: config.BaseURL}
	}
	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	var genConfig *genai.GenerateContentConfig
	if config.Temperature > 0 || config.MaxTokens > 0 {
		genConfig = &genai.GenerateContentConfig{}
		if config.Temperature > 0 {
			genConfig.Temperature = genai.Ptr(config.Temperature)
		}
		if config.MaxTokens > 0 {
			genConfig.MaxOutputTokens = int32(config.MaxTokens)
		}
	}

	return &geminiClient{client: client, model: config.Model, config: genConfig}, nil
}

// Generate sends prompt as a single user turn and returns the response text.
func (c *geminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), c.config)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", errors.New("gemini returned an empty response")
	}
	return text, nil
}
