// Package advice proxies lineup questions to an OpenAI-compatible chat completions API.
package advice

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

	"github.com/Bazz30/NRL/internal/metrics"
)

// ErrNotConfigured is returned when no API key is set.
var ErrNotConfigured = errors.New("lineup advice not configured")

const (
	defaultBaseURL     = "https://api.openai.com/v1"
	defaultModel       = "gpt-4"
	defaultTemperature = 0.7
	defaultTimeout     = 60 * time.Second
	maxErrorBody       = 512
)

// Config controls how the client reaches the completions API.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64 // outside [0,2] falls back to 0.7
	Timeout     time.Duration
	HTTPClient  *http.Client
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client requests lineup advice.
type Client struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	httpClient  httpDoer
	recorder    *metrics.Recorder
}

// NewClient builds a Client. recorder may be nil.
func NewClient(cfg Config, recorder *metrics.Recorder) *Client {
	c := &Client{
		apiKey:      strings.TrimSpace(cfg.APIKey),
		baseURL:     strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/"),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		recorder:    recorder,
	}
	if c.baseURL == "" {
		c.baseURL = defaultBaseURL
	}
	if c.model == "" {
		c.model = defaultModel
	}
	if c.temperature < 0 || c.temperature > 2 {
		c.temperature = defaultTemperature
	}
	if cfg.HTTPClient != nil {
		c.httpClient = cfg.HTTPClient
	} else {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		c.httpClient = &http.Client{Timeout: timeout}
	}
	return c
}

// Enabled reports whether the client has credentials.
func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// LineupAdvice sends teamData with the lineup prompt and returns the model's reply.
func (c *Client) LineupAdvice(ctx context.Context, teamData json.RawMessage) (reply string, err error) {
	if !c.Enabled() {
		return "", ErrNotConfigured
	}
	start := time.Now()
	defer func() { c.recorder.RecordAdviceRequest(time.Since(start), err) }()

	prompt, err := BuildPrompt(teamData)
	if err != nil {
		return "", err
	}
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: c.temperature,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("advice request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", fmt.Errorf("advice: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var payload chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("advice: decode response: %w", err)
	}
	if len(payload.Choices) == 0 {
		return "", errors.New("advice: empty response")
	}
	return payload.Choices[0].Message.Content, nil
}
