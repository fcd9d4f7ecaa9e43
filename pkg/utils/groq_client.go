package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// GroqGenerationClient talks to Groq's OpenAI-compatible chat completions
// endpoint through the go-openai client with a swapped base URL.
type GroqGenerationClient struct {
	client *openai.Client
	model  string
}

func NewGroqGenerationClient(apiKey, model, baseURL string) *GroqGenerationClient {
	if model == "" {
		model = "llama-3.3-70b-versatile"
	}
	if baseURL == "" {
		baseURL = groqBaseURL
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = strings.TrimRight(baseURL, "/")

	return &GroqGenerationClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (c *GroqGenerationClient) GenerateItineraryJSON(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		// Low temperature favors schema-conformant output.
		Temperature: 0.2,
		MaxTokens:   6000,
	})
	if err != nil {
		return "", fmt.Errorf("groq: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("groq: response missing choices")
	}

	return resp.Choices[0].Message.Content, nil
}
