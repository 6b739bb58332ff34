package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveError(t *testing.T, err error) (*httptest.ResponseRecorder, APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("trace_id", "trace-1")
	HandleServiceError(c, err)

	var body APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestHandleServiceError(t *testing.T) {
	cases := []struct {
		err     error
		code    int
		message string
	}{
		{ErrItineraryNotFound, http.StatusNotFound, "Not found"},
		{fmt.Errorf("%w: title is required", ErrInvalidInput), http.StatusBadRequest, "invalid input: title is required"},
		{ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
		{ErrEmailAlreadyExists, http.StatusConflict, "Email already registered"},
		{ErrUnknownStep, http.StatusBadRequest, "Unknown wizard step"},
		{fmt.Errorf("%w: boom", ErrDatabaseError), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range cases {
		w, body := serveError(t, tc.err)
		assert.Equal(t, tc.code, w.Code, tc.err.Error())
		assert.Equal(t, tc.message, body.Message)
		assert.Equal(t, "error", body.Status)
		assert.Equal(t, "trace-1", body.TraceID)
	}
}

func TestHandleServiceError_Upstream(t *testing.T) {
	err := fmt.Errorf("generate: %w", &UpstreamError{
		Provider:   "Hugging Face API",
		StatusCode: http.StatusServiceUnavailable,
		Details:    "loading",
	})

	w, body := serveError(t, err)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "Failed to generate itinerary from Hugging Face API", body.Message)
	assert.Equal(t, map[string]interface{}{"details": "loading"}, body.Data)
}

func TestRespondSuccessWithoutTraceMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondSuccess(c, gin.H{"ok": true}, "fine")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"success"`)
}
