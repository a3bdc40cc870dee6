package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/beigestudio/linkedin-lead-lab-report/internal/common/errors"
	"github.com/beigestudio/linkedin-lead-lab-report/internal/common/logger"
)

func testConfig(baseURL string) Config {
	return Config{
		BaseURL:     baseURL,
		APIKey:      "test-key",
		Model:       "gpt-4o-mini",
		MaxTokens:   1800,
		Temperature: 0.3,
		Timeout:     5 * time.Second,
	}
}

func completionBody(content string) string {
	return `{"choices": [{"message": {"role": "assistant", "content": ` + mustJSON(content) + `}}]}`
}

func mustJSON(s string) string {
	raw, _ := json.Marshal(s)
	return string(raw)
}

func TestComplete_Success(t *testing.T) {
	var captured chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionBody(`{"profileAnalysis": "ok"}`)))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), logger.NewNoOpLogger())

	out, err := client.Complete(context.Background(), "system persona", "user prompt")

	require.NoError(t, err)
	assert.Equal(t, `{"profileAnalysis": "ok"}`, out)

	assert.Equal(t, "gpt-4o-mini", captured.Model)
	assert.Equal(t, 1800, captured.MaxTokens)
	assert.InDelta(t, 0.3, captured.Temperature, 0.0001)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "system persona", captured.Messages[0].Content)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, "user prompt", captured.Messages[1].Content)
}

func TestComplete_StatusClassification(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantCode  cerrors.ErrorCode
		retryable bool
	}{
		{
			name:      "429 throttling",
			status:    http.StatusTooManyRequests,
			body:      `{"error": {"message": "Rate limit reached", "type": "requests"}}`,
			wantCode:  cerrors.ErrCodeRateLimited,
			retryable: true,
		},
		{
			name:      "429 exhausted credits",
			status:    http.StatusTooManyRequests,
			body:      `{"error": {"message": "You exceeded your current quota", "type": "insufficient_quota"}}`,
			wantCode:  cerrors.ErrCodeQuotaExceeded,
			retryable: false,
		},
		{
			name:      "401 bad credentials",
			status:    http.StatusUnauthorized,
			body:      `{"error": {"message": "Incorrect API key provided"}}`,
			wantCode:  cerrors.ErrCodeAuthConfigInvalid,
			retryable: false,
		},
		{
			name:      "403 forbidden",
			status:    http.StatusForbidden,
			body:      `{"error": {"message": "Project not authorized"}}`,
			wantCode:  cerrors.ErrCodeAuthConfigInvalid,
			retryable: false,
		},
		{
			name:      "500 provider failure",
			status:    http.StatusInternalServerError,
			body:      `{"error": {"message": "The server had an error"}}`,
			wantCode:  cerrors.ErrCodeProviderError,
			retryable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(testConfig(server.URL), logger.NewNoOpLogger())

			out, err := client.Complete(context.Background(), "system", "prompt")

			assert.Empty(t, out)
			var stdErr *cerrors.StandardError
			require.ErrorAs(t, err, &stdErr)
			assert.Equal(t, tt.wantCode, stdErr.Code)
			assert.Equal(t, tt.retryable, stdErr.Retryable)
		})
	}
}

func TestComplete_TimeoutHonorsDeadline(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	cfg := testConfig(server.URL)
	cfg.Timeout = 100 * time.Millisecond
	client := NewClient(cfg, logger.NewNoOpLogger())

	start := time.Now()
	_, err := client.Complete(context.Background(), "system", "prompt")
	elapsed := time.Since(start)

	var stdErr *cerrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, cerrors.ErrCodeLLMTimeout, stdErr.Code)
	assert.True(t, stdErr.Retryable)
	assert.Less(t, elapsed, 2*time.Second, "timeout must fire near the configured deadline")
}

func TestComplete_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), logger.NewNoOpLogger())

	_, err := client.Complete(context.Background(), "system", "prompt")

	var stdErr *cerrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, cerrors.ErrCodeProviderError, stdErr.Code)
}

func TestComplete_MalformedResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), logger.NewNoOpLogger())

	_, err := client.Complete(context.Background(), "system", "prompt")

	var stdErr *cerrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, cerrors.ErrCodeProviderError, stdErr.Code)
}

func TestNewClient_DefaultTimeout(t *testing.T) {
	client := NewClient(Config{Model: "gpt-4o-mini"}, logger.NewNoOpLogger())
	assert.Equal(t, 30*time.Second, client.config.Timeout)
}
