package utils

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiTextClient implements TextGenClientInterface using Google's Gemini models
type GeminiTextClient struct {
	client *genai.Client
	model  string
}

// NewGeminiTextClient creates a new Gemini client
func NewGeminiTextClient(apiKey, model string) (TextGenClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiTextClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiTextClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	m := c.client.GenerativeModel(c.model)

	// Low temperature keeps the structured output stable between runs.
	m.SetTemperature(0.2)
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetMaxOutputTokens(8192)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		// The SDK error carries the HTTP status and body for diagnostics.
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini response is missing candidates")
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

// Close closes the Gemini client
func (c *GeminiTextClient) Close() error {
	return c.client.Close()
}
