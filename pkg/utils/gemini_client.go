package utils

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiGenerationClient implements GenerationClientInterface using Google's
// Gemini models.
type GeminiGenerationClient struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerationClient(apiKey, model string) (*GeminiGenerationClient, error) {
	if model == "" {
		model = "gemini-2.0-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerationClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiGenerationClient) GenerateItineraryJSON(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.2)
	m.SetTopP(0.5)
	m.SetMaxOutputTokens(6000)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content generated")
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

func (c *GeminiGenerationClient) Close() error {
	return c.client.Close()
}
