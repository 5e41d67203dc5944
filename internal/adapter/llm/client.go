// Package llm implements the generation port on top of a pluggable
// generative-language backend.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/time/rate"

	"growth-agent/internal/core/domain"
	"growth-agent/internal/core/port"
	"growth-agent/internal/core/prompt"
)

// Backend is a single text-in, text-out call to a language model provider.
type Backend interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// BackendFunc adapts a function to Backend.
type BackendFunc func(ctx context.Context, prompt string) (string, error)

func (f BackendFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

var errEmptyCompletion = errors.New("empty completion")

// Client implements port.Generator. It performs exactly one backend call per
// operation and never retries.
type Client struct {
	backend Backend
	prompts *prompt.Builder
	limiter *rate.Limiter
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithRateLimit throttles outbound calls to rps per second with the given
// burst. A non-positive rps disables throttling.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithLogger sets the logger used for backend failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient returns a Client calling backend. Plan prompts are rendered by
// prompts.
func NewClient(backend Backend, prompts *prompt.Builder, opts ...Option) *Client {
	c := &Client{
		backend: backend,
		prompts: prompts,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ port.Generator = (*Client)(nil)

// Generate submits p and returns the trimmed generated text.
func (c *Client) Generate(ctx context.Context, p string) (string, error) {
	text, err := c.call(ctx, p)
	if err != nil {
		c.logger.Warn("generation failed", slog.Any("error", err))
		return "", err
	}
	return text, nil
}

// GeneratePlan requests a weekly plan for biz and tries to decode the answer
// as a JSON object.
func (c *Client) GeneratePlan(ctx context.Context, biz domain.BusinessContext) (domain.PlanPayload, error) {
	text, err := c.call(ctx, c.prompts.BuildPlan(biz))
	if err != nil {
		c.logger.Warn("plan generation failed", slog.Any("error", err))
		return domain.PlanPayload{}, err
	}
	if plan, ok := decodePlan(text); ok {
		return domain.PlanPayload{Structured: plan}, nil
	}
	c.logger.Debug("plan response is not a JSON object", slog.Int("length", len(text)))
	return domain.PlanPayload{Raw: text}, nil
}

// call runs one backend request. Errors and panics from the backend are
// returned wrapped in port.ErrGeneration.
func (c *Client) call(ctx context.Context, p string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: backend panic: %v", port.ErrGeneration, r)
		}
	}()

	if c.backend == nil {
		return "", fmt.Errorf("%w: no backend configured", port.ErrGeneration)
	}
	if c.limiter != nil {
		if err = c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("%w: %w", port.ErrGeneration, err)
		}
	}
	text, err = c.backend.Complete(ctx, p)
	if err != nil {
		return "", fmt.Errorf("%w: %w", port.ErrGeneration, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: %w", port.ErrGeneration, errEmptyCompletion)
	}
	return text, nil
}

// decodePlan parses text as a JSON object, tolerating a surrounding
// markdown code fence.
func decodePlan(text string) (map[string]any, bool) {
	text = stripFence(text)
	var plan map[string]any
	if err := json.Unmarshal([]byte(text), &plan); err != nil || plan == nil {
		return nil, false
	}
	return plan, true
}

func stripFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") || !strings.HasSuffix(text, "```") || len(text) < 6 {
		return text
	}
	body := strings.TrimSuffix(strings.TrimPrefix(text, "```"), "```")
	if nl := strings.IndexByte(body, '\n'); nl >= 0 && !strings.ContainsAny(body[:nl], "{[") {
		body = body[nl+1:]
	}
	return strings.TrimSpace(body)
}
