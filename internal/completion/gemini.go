// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package completion

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

const (
	// DefaultModel is the model used when none is configured.
	DefaultModel = "gemini-2.5-flash"

	// DefaultTimeout bounds a single completion request.
	DefaultTimeout = 30 * time.Second

	jsonMIMEType = "application/json"
)

// Config configures the Gemini-backed [Client].
type Config struct {
	// APIKey may be empty; the client then answers every call with ErrNotConfigured.
	APIKey string

	// Model defaults to [DefaultModel].
	Model string

	// BaseURL overrides the Gemini API endpoint (proxies, tests).
	BaseURL string

	// Timeout defaults to [DefaultTimeout].
	Timeout time.Duration

	// HTTPClient overrides the transport used by the SDK.
	HTTPClient *http.Client
}

// Client implements [Completer] on top of the Gemini API.
type Client struct {
	models  *genai.Models
	model   string
	timeout time.Duration
	logger  *slog.Logger
}

// NewClient builds a client. With an empty API key no SDK client is created
// and the returned client never touches the network.
func NewClient(ctx context.Context, cfg Config, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := &Client{
		model:   model,
		timeout: timeout,
		logger:  logger.With(slog.String("component", "completion")),
	}

	if cfg.APIKey == "" {
		client.logger.Warn("completion_not_configured", slog.String("hint", "set API_KEY to enable enrichment"))
		return client, nil
	}

	sdk, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  cfg.HTTPClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("completion: create gemini client: %w", err)
	}
	client.models = sdk.Models

	client.logger.Info("completion_configured",
		slog.String("model", model),
		slog.Duration("timeout", timeout),
	)

	return client, nil
}

// Configured reports whether a credential was supplied.
func (c *Client) Configured() bool {
	return c.models != nil
}

// Model returns the model identifier sent with every request.
func (c *Client) Model() string {
	return c.model
}

// Complete sends prompt to the service and returns the reply text unmodified.
func (c *Client) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var generation *genai.GenerateContentConfig
	if opts.JSON {
		generation = &genai.GenerateContentConfig{ResponseMIMEType: jsonMIMEType}
	}

	response, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), generation)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	text := response.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}
