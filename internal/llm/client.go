package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/projectforge/forge/internal/infrastructure/resilience"
)

// ErrEmptyCompletion indicates the provider returned no usable content.
var ErrEmptyCompletion = errors.New("llm: empty completion")

// Client is the text-completion capability. Implementations must bound
// their own latency and return errors rather than panic.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Config holds provider connection settings.
type Config struct {
	BaseURL   string
	APIKey    string
	Model     string
	MaxTokens int
	Timeout   time.Duration

	// RequestsPerMinute throttles outbound calls; 0 disables throttling.
	RequestsPerMinute int
}

// HTTPClient talks to an OpenAI-compatible chat-completions endpoint with
// retrying transport, client-side rate limiting, and a circuit breaker.
type HTTPClient struct {
	resty   *resty.Client
	breaker *resilience.Breaker
	limiter *rate.Limiter
	cfg     Config
	log     *zap.Logger
}

// NewHTTPClient creates a production-ready completion client.
func NewHTTPClient(cfg Config, log *zap.Logger) *HTTPClient {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 120 * time.Second
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.RetryWaitMin = 1 * time.Second
	retryClient.RetryWaitMax = 20 * time.Second
	retryClient.Logger = nil

	rc := resty.NewWithClient(retryClient.StandardClient()).
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")
	if cfg.APIKey != "" {
		rc.SetAuthToken(cfg.APIKey)
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60.0), cfg.RequestsPerMinute)
	}

	breaker := resilience.New("llm", resilience.Settings{
		MaxRequests: 2,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts resilience.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &HTTPClient{
		resty:   rc,
		breaker: breaker,
		limiter: limiter,
		cfg:     cfg,
		log:     log,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Complete sends the prompt and returns the raw completion text.
func (c *HTTPClient) Complete(ctx context.Context, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("llm: rate limit wait: %w", err)
	}

	start := time.Now()
	result, err := c.breaker.Execute(func() (interface{}, error) {
		var out completionResponse
		resp, err := c.resty.R().
			SetContext(ctx).
			SetBody(completionRequest{
				Model:     c.cfg.Model,
				Messages:  []chatMessage{{Role: "user", Content: prompt}},
				MaxTokens: c.cfg.MaxTokens,
			}).
			SetResult(&out).
			Post("/v1/chat/completions")
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, fmt.Errorf("llm: provider returned %s", resp.Status())
		}
		if out.Error != nil {
			return nil, fmt.Errorf("llm: provider error: %s", out.Error.Message)
		}
		if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
			return nil, ErrEmptyCompletion
		}
		return out.Choices[0].Message.Content, nil
	})
	if err != nil {
		c.log.Warn("completion failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return "", err
	}

	text := result.(string)
	c.log.Debug("completion finished",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("chars", len(text)),
	)
	return text, nil
}
