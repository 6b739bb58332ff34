package utils

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func newGeminiTestClient(t *testing.T, handler http.HandlerFunc) *GeminiTextClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewGeminiTextClient("gm-test", "gemini-test", 256,
		option.WithEndpoint(srv.URL),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestGeminiTextClient_GenerateText(t *testing.T) {
	var prompt string
	client := newGeminiTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "models/gemini-test:generateContent"), r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		if assert.NoError(t, json.Unmarshal(body, &req)) && len(req.Contents) > 0 && len(req.Contents[0].Parts) > 0 {
			prompt = req.Contents[0].Parts[0].Text
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"index":0,"finishReason":"STOP",
			"content":{"role":"model","parts":[{"text":"Day 1: "},{"text":"Alfama"}]}}]}`))
	})

	text, err := client.GenerateText(context.Background(), "plan Lisbon")

	require.NoError(t, err)
	assert.Equal(t, "Day 1: Alfama", text)
	assert.Equal(t, "plan Lisbon", prompt)
	assert.Equal(t, "Gemini API", client.Provider())
}

func TestGeminiTextClient_APIErrorBecomesUpstreamError(t *testing.T) {
	client := newGeminiTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`))
	})

	_, err := client.GenerateText(context.Background(), "plan Lisbon")

	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream), "got %v", err)
	assert.Equal(t, "Gemini API", upstream.Provider)
	assert.Equal(t, http.StatusForbidden, upstream.StatusCode)
	assert.Equal(t, "API key not valid", upstream.Details)
}

func TestNewTextGenerator_Gemini(t *testing.T) {
	gen, err := NewTextGenerator(GenerationConfig{Provider: "Gemini", APIKey: "gm-test", Endpoint: "http://127.0.0.1:1"})
	require.NoError(t, err)
	assert.Equal(t, "Gemini API", gen.Provider())

	closer, ok := gen.(io.Closer)
	require.True(t, ok)
	assert.NoError(t, closer.Close())
}
