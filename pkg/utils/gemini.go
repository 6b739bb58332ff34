package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const geminiProvider = "Gemini API"

// GeminiTextClient implements TextGenerator using Google's Gemini models
type GeminiTextClient struct {
	client    *genai.Client
	model     string
	maxTokens int
}

// NewGeminiTextClient creates a new Gemini client. Extra options such as
// option.WithEndpoint are applied after the API key.
func NewGeminiTextClient(apiKey, model string, maxTokens int, opts ...option.ClientOption) (*GeminiTextClient, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}
	if maxTokens <= 0 {
		maxTokens = 2048
	}

	clientOpts := append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	client, err := genai.NewClient(context.Background(), clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiTextClient{
		client:    client,
		model:     model,
		maxTokens: maxTokens,
	}, nil
}

func (c *GeminiTextClient) Provider() string { return geminiProvider }

func (c *GeminiTextClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.7)
	m.SetTopP(0.9)
	m.SetMaxOutputTokens(int32(c.maxTokens))

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code > 0 {
			return "", &UpstreamError{Provider: geminiProvider, StatusCode: apiErr.Code, Details: geminiDetails(apiErr)}
		}
		return "", fmt.Errorf("%w: gemini: %v", ErrGenerationFailed, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return NoOutputText, nil
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if strings.TrimSpace(b.String()) == "" {
		return NoOutputText, nil
	}
	return b.String(), nil
}

func geminiDetails(e *googleapi.Error) interface{} {
	if e.Message != "" {
		return e.Message
	}
	return strings.TrimSpace(e.Body)
}

// Close closes the Gemini client
func (c *GeminiTextClient) Close() error {
	return c.client.Close()
}
