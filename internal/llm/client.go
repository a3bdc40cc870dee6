// internal/llm/client.go
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	cerrors "github.com/beigestudio/linkedin-lead-lab-report/internal/common/errors"
	"github.com/beigestudio/linkedin-lead-lab-report/internal/common/logger"
)

// Config holds the generative-model provider settings.
type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// Client talks to an OpenAI-compatible chat-completions endpoint. One call
// per audit; no internal retries, classification only. Retry policy belongs
// to the caller.
type Client struct {
	config Config
	client *http.Client
	logger logger.Logger
}

func NewClient(config Config, log logger.Logger) *Client {
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	return &Client{
		config: config,
		// No transport-level timeout; the context deadline is the only ceiling.
		client: &http.Client{},
		logger: log.WithFields(map[string]interface{}{
			"component": "llm-client",
			"model":     config.Model,
		}),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// Complete sends one generation request and returns the raw completion text.
// Failures come back as *errors.StandardError classified by provider signal:
// 401/403 credentials, 429 throttling or exhausted quota, context deadline
// as timeout, anything else as a generic provider error.
func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	body, err := json.Marshal(chatRequest{
		Model: c.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   c.config.MaxTokens,
		Temperature: c.config.Temperature,
	})
	if err != nil {
		return "", cerrors.NewProviderError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", cerrors.NewProviderError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return "", cerrors.NewLLMTimeoutError()
		}
		return "", cerrors.NewProviderError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", c.classifyStatus(resp)
	}

	var completion chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", cerrors.NewProviderError(fmt.Errorf("decode response: %w", err))
	}
	if len(completion.Choices) == 0 {
		return "", cerrors.NewProviderError(errors.New("response contained no choices"))
	}

	c.logger.Info("completion received", map[string]interface{}{
		"durationMs": time.Since(start).Milliseconds(),
	})

	return completion.Choices[0].Message.Content, nil
}

func (c *Client) classifyStatus(resp *http.Response) *cerrors.StandardError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	detail := strings.TrimSpace(string(raw))

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return cerrors.NewAuthConfigInvalidError(detail)
	case http.StatusTooManyRequests:
		// The provider reports exhausted credits with the same status as
		// throttling; the error type in the body disambiguates.
		if strings.Contains(detail, "insufficient_quota") {
			return cerrors.NewQuotaExceededError(detail)
		}
		return cerrors.NewRateLimitedError(detail)
	default:
		return cerrors.NewProviderError(fmt.Errorf("status %d: %s", resp.StatusCode, detail))
	}
}
