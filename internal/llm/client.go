// Package llm dispatches analysis requests to the OpenRouter chat-completions
// API and recovers structured JSON from the model's free-form replies.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultBaseURL = "https://openrouter.ai/api/v1"

// Config carries the provider options recognized by the dispatcher.
type Config struct {
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	BaseURL     string // defaults to the OpenRouter endpoint
	Referer     string // HTTP-Referer header, app attribution
	Title       string // X-Title header, app attribution
}

type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient builds a dispatcher for the given provider configuration.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 90 * time.Second},
	}
}

// Message is one chat-completion message. Content is either a plain string or
// a list of text/image parts.
type Message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type textPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type imagePart struct {
	Type     string   `json:"type"`
	ImageURL imageURL `json:"image_url"`
}

type imageURL struct {
	URL string `json:"url"`
}

// TextMessage builds a user message carrying only a prompt.
func TextMessage(prompt string) Message {
	return Message{Role: "user", Content: prompt}
}

// ImageMessage builds a user message carrying the prompt and an inline image.
func ImageMessage(prompt, mediaType, imageData string) Message {
	return Message{
		Role: "user",
		Content: []any{
			textPart{Type: "text", Text: prompt},
			imagePart{
				Type:     "image_url",
				ImageURL: imageURL{URL: fmt.Sprintf("data:%s;base64,%s", mediaType, imageData)},
			},
		},
	}
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

// Usage is the provider's token accounting, logged for observability.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ProviderError is an error reported by the provider itself. Its message is
// surfaced verbatim to the caller and never retried.
type ProviderError struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return "API 错误"
	}
	return e.Message
}

type chatResponse struct {
	Error   *ProviderError `json:"error"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage *Usage `json:"usage"`
}

// Complete sends one chat-completion request and returns the first choice's
// text content. Failures are terminal; retry policy belongs to the user.
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	reqBody, err := json.Marshal(chatRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("llm: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewBuffer(reqBody))
	if err != nil {
		return "", fmt.Errorf("llm: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	if c.cfg.Referer != "" {
		req.Header.Set("HTTP-Referer", c.cfg.Referer)
	}
	if c.cfg.Title != "" {
		req.Header.Set("X-Title", c.cfg.Title)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("llm: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("llm: read response: %w", err)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("llm: provider returned status %s", resp.Status)
		}
		return "", fmt.Errorf("llm: decode response: %w", err)
	}

	// The provider reports its own failures in the body, not the status code.
	if chatResp.Error != nil {
		return "", chatResp.Error
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("llm: provider returned no choices")
	}

	if chatResp.Usage != nil {
		log.Info().
			Str("model", c.cfg.Model).
			Int("prompt_tokens", chatResp.Usage.PromptTokens).
			Int("completion_tokens", chatResp.Usage.CompletionTokens).
			Int("total_tokens", chatResp.Usage.TotalTokens).
			Msg("token usage")
	}

	return chatResp.Choices[0].Message.Content, nil
}
