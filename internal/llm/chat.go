package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"interviewq/internal/config"
)

// ChatClient talks to an OpenAI-compatible /v1/chat/completions endpoint.
// The configured URL is used as is.
type ChatClient struct {
	apiURL       string
	defaultModel string
	httpClient   *http.Client
	logger       *slog.Logger
}

func NewChatClient(cfg config.LLMConfig, httpClient *http.Client, logger *slog.Logger) *ChatClient {
	return &ChatClient{
		apiURL:       cfg.APIURL,
		defaultModel: cfg.ModelName,
		httpClient:   httpClient,
		logger:       logger,
	}
}

// ChatCompletion performs exactly one request and returns the content of the
// first choice. There are no retries.
func (c *ChatClient) ChatCompletion(ctx context.Context, req Request) (string, error) {
	if req.Model == "" {
		req.Model = c.defaultModel
	}
	if req.Model == "" {
		return "", ErrInvalidModel
	}

	buf, err := json.Marshal(chatRequest{
		Model:       req.Model,
		Messages:    req.Messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		Stop:        req.Stop,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(buf))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &StatusError{StatusCode: resp.StatusCode, BodySnippet: bodySnippet(body)}
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", ErrNoChoices
	}
	content := parsed.Choices[0].Message.Content
	if content == nil {
		return "", ErrMissingContent
	}

	if c.logger != nil {
		c.logger.Debug("chat completion received",
			slog.String("model", req.Model),
			slog.Int("content_bytes", len(*content)))
	}
	return *content, nil
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	Stop        []string  `json:"stop,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}
