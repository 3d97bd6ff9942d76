package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.0-flash"

// GenaiGenerator is a Generator backed by the Gemini API.
type GenaiGenerator struct {
	client *genai.Client
	model  string
}

// NewGenaiGenerator creates a Gemini-backed generator. Model may be empty
// to use the default.
func NewGenaiGenerator(ctx context.Context, apiKey, model string) (*GenaiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	return &GenaiGenerator{client: client, model: model}, nil
}

// Generate runs one completion for the prompt.
func (g *GenaiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("model returned an empty response")
	}
	return text, nil
}
