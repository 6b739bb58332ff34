package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultHuggingFaceModelURL = "https://api-inference.huggingface.co/models/rahmanazhar/Travereel-Model-V1"
	DefaultHuggingFaceMaxLen   = 1000
	huggingFaceProvider        = "Hugging Face API"
)

// HuggingFaceClient calls a hosted Inference API text-generation model.
type HuggingFaceClient struct {
	endpoint  string
	token     string
	maxLength int
	http      *http.Client
}

func NewHuggingFaceClient(endpoint, token string, maxLength int, timeout time.Duration) *HuggingFaceClient {
	if endpoint == "" {
		endpoint = DefaultHuggingFaceModelURL
	}
	if maxLength <= 0 {
		maxLength = DefaultHuggingFaceMaxLen
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &HuggingFaceClient{
		endpoint:  endpoint,
		token:     token,
		maxLength: maxLength,
		http:      &http.Client{Timeout: timeout},
	}
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MaxLength int `json:"max_length"`
}

type hfGeneration struct {
	GeneratedText string `json:"generated_text"`
}

func (c *HuggingFaceClient) Provider() string { return huggingFaceProvider }

func (c *HuggingFaceClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(hfRequest{
		Inputs:     prompt,
		Parameters: hfParameters{MaxLength: c.maxLength},
	})
	if err != nil {
		return "", fmt.Errorf("%w: marshaling request: %v", ErrGenerationFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: creating request: %v", ErrGenerationFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", ErrGenerationFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var details interface{}
		if err := json.Unmarshal(raw, &details); err != nil {
			details = strings.TrimSpace(string(raw))
		}
		return "", &UpstreamError{
			Provider:   huggingFaceProvider,
			StatusCode: resp.StatusCode,
			Details:    details,
		}
	}

	var generations []hfGeneration
	if err := json.Unmarshal(raw, &generations); err != nil || len(generations) == 0 {
		return NoOutputText, nil
	}
	if strings.TrimSpace(generations[0].GeneratedText) == "" {
		return NoOutputText, nil
	}
	return generations[0].GeneratedText, nil
}
