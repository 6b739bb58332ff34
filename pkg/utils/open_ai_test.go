package utils

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAITextClient_GenerateText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"gpt-4o-mini",
			"choices":[{"index":0,"message":{"role":"assistant","content":"Day 1: tram 28"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	client := NewOpenAITextClient("sk-test", "", srv.URL, 256)
	text, err := client.GenerateText(context.Background(), "plan Lisbon")

	require.NoError(t, err)
	assert.Equal(t, "Day 1: tram 28", text)
}

func TestOpenAITextClient_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"m","choices":[]}`))
	}))
	defer srv.Close()

	text, err := NewOpenAITextClient("sk-test", "m", srv.URL, 0).GenerateText(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, NoOutputText, text)
}

func TestOpenAITextClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited","type":"requests","code":"rate_limit"}}`))
	}))
	defer srv.Close()

	_, err := NewOpenAITextClient("sk-test", "m", srv.URL, 0).GenerateText(context.Background(), "p")

	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusTooManyRequests, upstream.StatusCode)
	assert.Equal(t, "rate limited", upstream.Details)
}
