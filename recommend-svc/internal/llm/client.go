package llm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"menurank/config"
	"menurank/logging"
	"menurank/recommend-svc/internal/metrics"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"
)

var (
	ErrDisabled          = errors.New("language model is not configured")
	ErrEmptyResponse     = errors.New("language model returned no content")
	ErrMalformedResponse = errors.New("language model returned malformed JSON")
)

const breakerName = "llm-chat"

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []message      `json:"messages"`
	Temperature    float64        `json:"temperature"`
	MaxTokens      int            `json:"max_tokens,omitempty"`
	ResponseFormat responseFormat `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Client talks to an OpenAI-compatible chat completions endpoint and decodes
// JSON answers. Transport failures feed a circuit breaker so a dead upstream
// is skipped quickly instead of stalling every request for the full timeout.
type Client struct {
	cfg  config.LLMConfig
	http *http.Client
	cb   *gobreaker.CircuitBreaker[string]
}

func NewClient(cfg config.LLMConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	metrics.LLMBreakerState.WithLabelValues(breakerName).Set(0)
	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("llm circuit breaker state change")
			metrics.LLMBreakerState.WithLabelValues(name).Set(breakerStateValue(to))
		},
	})

	return &Client{cfg: cfg, http: httpClient, cb: cb}
}

func (c *Client) Enabled() bool {
	return c.cfg.Enabled()
}

// CompleteJSON sends one system+user exchange and decodes the answer into out.
func (c *Client) CompleteJSON(ctx context.Context, operation, system, prompt string, maxTokens int, out any) error {
	if !c.Enabled() {
		return ErrDisabled
	}

	content, err := c.cb.Execute(func() (string, error) {
		return c.complete(ctx, system, prompt, maxTokens)
	})
	if err != nil {
		metrics.LLMRequests.WithLabelValues(operation, "error").Inc()
		return err
	}

	cleaned, ok := cleanJSONContent(content)
	if !ok {
		metrics.LLMRequests.WithLabelValues(operation, "malformed").Inc()
		return ErrMalformedResponse
	}
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		metrics.LLMRequests.WithLabelValues(operation, "malformed").Inc()
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	metrics.LLMRequests.WithLabelValues(operation, "ok").Inc()
	return nil
}

func (c *Client) complete(ctx context.Context, system, prompt string, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	if maxTokens <= 0 {
		maxTokens = c.cfg.MaxTokens
	}
	body, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []message{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		Temperature:    c.cfg.Temperature,
		MaxTokens:      maxTokens,
		ResponseFormat: responseFormat{Type: "json_object"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call language model: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("language model error (status %d): %s", resp.StatusCode, truncate(string(raw), 200))
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse response envelope: %w", err)
	}
	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", ErrEmptyResponse
	}
	return parsed.Choices[0].Message.Content, nil
}

// cleanJSONContent strips markdown fences and any chatter around the outermost JSON object.
func cleanJSONContent(content string) (string, bool) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end < start {
		return "", false
	}
	return content[start : end+1], true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func breakerStateValue(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
