// Package oracle talks to the external language-model completion service.
package oracle

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
)

// ErrNotConfigured is returned when no API credential is available; the
// request fails before any network call is attempted.
var ErrNotConfigured = errors.New("oracle API key not configured")

// APIError reports a non-2xx status from the completion endpoint. The raw
// body is kept for logging only and must not reach end users.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("oracle API returned status %d", e.Status)
}

// Config carries the connection settings for the completion endpoint.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// DefaultConfig returns settings for the public endpoint with a timeout
// suited to short classification and scoring calls.
func DefaultConfig(apiKey, model string) Config {
	return Config{
		APIKey:  apiKey,
		BaseURL: "https://api.openai.com/v1",
		Model:   model,
		Timeout: 30 * time.Second,
	}
}

// Client is a typed HTTP client for the responses API.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// New builds a Client from config, filling in defaults for empty fields.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Request describes one completion call.
type Request struct {
	System          string
	User            string
	Temperature     *float64
	MaxOutputTokens int
	ReasoningEffort string
	Format          *TextFormat
}

// TextFormat asks the oracle for structured output conforming to a JSON
// schema. Strict requests exact conformance with no extra properties.
type TextFormat struct {
	Name   string
	Strict bool
	Schema map[string]any
}

type wireContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type wireMessage struct {
	Role    string        `json:"role"`
	Content []wireContent `json:"content"`
}

type wireFormat struct {
	Type   string         `json:"type"`
	Name   string         `json:"name"`
	Strict bool           `json:"strict"`
	Schema map[string]any `json:"schema"`
}

type wireText struct {
	Format wireFormat `json:"format"`
}

type wireReasoning struct {
	Effort string `json:"effort"`
}

type wireRequest struct {
	Model           string         `json:"model"`
	Input           []wireMessage  `json:"input"`
	Text            *wireText      `json:"text,omitempty"`
	Temperature     *float64       `json:"temperature,omitempty"`
	MaxOutputTokens int            `json:"max_output_tokens,omitempty"`
	Reasoning       *wireReasoning `json:"reasoning,omitempty"`
}

type wireResponse struct {
	Output []struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"output"`
}

// Complete sends the request and returns the oracle's output text.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	body := wireRequest{
		Model: c.model,
		Input: []wireMessage{
			{Role: "system", Content: []wireContent{{Type: "input_text", Text: req.System}}},
			{Role: "user", Content: []wireContent{{Type: "input_text", Text: req.User}}},
		},
		Temperature:     req.Temperature,
		MaxOutputTokens: req.MaxOutputTokens,
	}
	if req.Format != nil {
		body.Text = &wireText{Format: wireFormat{
			Type:   "json_schema",
			Name:   req.Format.Name,
			Strict: req.Format.Strict,
			Schema: req.Format.Schema,
		}}
	}
	if req.ReasoningEffort != "" {
		body.Reasoning = &wireReasoning{Effort: req.ReasoningEffort}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal oracle request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/responses", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build oracle request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("oracle request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read oracle response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &APIError{Status: resp.StatusCode, Body: string(raw)}
	}

	var parsed wireResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decode oracle response: %w", err)
	}
	for _, out := range parsed.Output {
		for _, content := range out.Content {
			if content.Type == "output_text" {
				return content.Text, nil
			}
		}
	}
	return "", errors.New("oracle response contained no output text")
}
