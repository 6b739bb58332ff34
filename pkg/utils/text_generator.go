package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/option"
)

// NoOutputText is returned when the model answers successfully but with no
// generated text.
const NoOutputText = "No output. Please try again."

// TextGenerator sends a prompt to a hosted model and returns its raw text.
type TextGenerator interface {
	Provider() string
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// GenerationConfig holds configuration for text generation clients
type GenerationConfig struct {
	Provider  string
	APIKey    string
	Model     string
	Endpoint  string
	MaxLength int
	Timeout   time.Duration
}

// NewTextGenerator Factory function to create a Hugging Face, Gemini or OpenAI client based on config
func NewTextGenerator(cfg GenerationConfig) (TextGenerator, error) {
	switch strings.ToLower(cfg.Provider) {
	case "huggingface", "hf", "":
		return NewHuggingFaceClient(cfg.Endpoint, cfg.APIKey, cfg.MaxLength, cfg.Timeout), nil
	case "gemini":
		var opts []option.ClientOption
		if cfg.Endpoint != "" {
			opts = append(opts, option.WithEndpoint(cfg.Endpoint))
		}
		client, err := NewGeminiTextClient(cfg.APIKey, cfg.Model, cfg.MaxLength, opts...)
		if err != nil {
			return nil, err
		}
		return client, nil
	case "openai":
		return NewOpenAITextClient(cfg.APIKey, cfg.Model, cfg.Endpoint, cfg.MaxLength), nil
	default:
		return nil, fmt.Errorf("unsupported generation provider: %s. Use 'huggingface', 'gemini' or 'openai'", cfg.Provider)
	}
}

// BuildItineraryPrompt is the instruction sent to every provider.
func BuildItineraryPrompt(destination string, days int) string {
	return fmt.Sprintf(`Create a detailed %d-day itinerary for %s. Include:
- Morning, afternoon, and evening plans for each day
- Food recommendations and local restaurants
- Where to stay and accommodation suggestions
- Local travel routes and transportation tips
- Hidden gems and must-visit attractions
- Budget tips and money-saving advice
- Local culture and customs to know
Please format the itinerary clearly with sections for each day.`, days, destination)
}
