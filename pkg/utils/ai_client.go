package utils

import (
	"context"
	"fmt"
	"strings"
)

// TextGenClientInterface is the text-generation capability consumed by the
// itinerary pipeline. Implementations return the raw model text; extracting
// and parsing the JSON payload is the caller's job.
type TextGenClientInterface interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	Close() error
}

// NewTextGenClient Factory function to create either an OpenAI or Gemini
// backed client based on config
func NewTextGenClient(provider, apiKey, model string) (TextGenClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAITextClient(apiKey, model), nil
	case "gemini":
		return NewGeminiTextClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
