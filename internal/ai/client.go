// Package ai wraps the upstream chat-completion gateway behind a small
// client tailored to palm analysis. One multimodal request per analysis:
// system instruction, role-specific user text, and the palm image as an
// inline image part. No retries, no streaming, no batching.
package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/palmveda/palm-backend/internal/config"
	"github.com/palmveda/palm-backend/internal/prompt"
)

// Upstream failure conditions, mapped by the HTTP layer to the response
// contract (429, 402, 503, 500).
var (
	// ErrNotConfigured indicates the gateway API key is absent. Reported at
	// first use; startup does not require the key.
	ErrNotConfigured = errors.New("ai service not configured")

	// ErrRateLimited indicates the upstream gateway returned 429.
	ErrRateLimited = errors.New("ai rate limit exceeded")

	// ErrQuotaExhausted indicates the upstream gateway returned 402
	// (credits or billing exhausted).
	ErrQuotaExhausted = errors.New("ai service credits exhausted")

	// ErrNoResponse indicates a successful call that carried no content.
	ErrNoResponse = errors.New("no response from ai")
)

// UpstreamError carries a non-success gateway response that is neither rate
// limiting nor quota exhaustion. Message preserves the upstream text when
// the gateway provided one.
type UpstreamError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("ai gateway error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("ai gateway error (status %d)", e.StatusCode)
}

// Analyzer is the contract the analysis service depends on. *Client is the
// production implementation; tests substitute stubs.
type Analyzer interface {
	// AnalyzePalm sends one analysis request and returns the raw model text.
	AnalyzePalm(ctx context.Context, imageDataURL, role, roleDescription string) (string, error)
}

// Client calls an OpenAI-compatible chat-completion gateway.
type Client struct {
	api       *openai.Client
	model     string
	maxTokens int
}

// NewClient builds a Client from configuration. A custom BaseURL points the
// client at any OpenAI-compatible gateway. A Client built without an API key
// is valid but every call returns ErrNotConfigured.
func NewClient(cfg config.AIConfig) *Client {
	c := &Client{model: cfg.Model, maxTokens: cfg.MaxTokens}
	if cfg.APIKey == "" {
		return c
	}
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	if cfg.Timeout > 0 {
		oc.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	c.api = openai.NewClientWithConfig(oc)
	return c
}

// AnalyzePalm performs the single blocking analysis round trip. The image
// travels as an inline data-URL image part next to the user instruction.
func (c *Client) AnalyzePalm(ctx context.Context, imageDataURL, role, roleDescription string) (string, error) {
	if c.api == nil {
		return "", ErrNotConfigured
	}

	req := openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.System()},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: prompt.User(role, roleDescription)},
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: imageDataURL},
					},
				},
			},
		},
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", mapUpstreamError(err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrNoResponse
	}
	return resp.Choices[0].Message.Content, nil
}

// mapUpstreamError folds gateway failures into the package's error taxonomy.
// 429 and 402 have dedicated conditions; everything else keeps the upstream
// status and message.
func mapUpstreamError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusTooManyRequests:
			return ErrRateLimited
		case http.StatusPaymentRequired:
			return ErrQuotaExhausted
		default:
			return &UpstreamError{StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message}
		}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		switch reqErr.HTTPStatusCode {
		case http.StatusTooManyRequests:
			return ErrRateLimited
		case http.StatusPaymentRequired:
			return ErrQuotaExhausted
		default:
			return &UpstreamError{StatusCode: reqErr.HTTPStatusCode, Message: reqErr.Error()}
		}
	}
	return err
}
