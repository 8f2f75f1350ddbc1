// Package httpclient wraps net/http for calls to third-party APIs. Every call
// runs through a circuit breaker, an optional token-bucket limiter, header
// injection, a client span and a bounded retry loop, in that order.
//
//	c := httpclient.New(&cfg.EmailVerification.Client, "neutrino", metrics, logger,
//		httpclient.WithHeader("api-key", cfg.EmailVerification.APIKey),
//	)
//	req, err := c.NewJSONRequest(ctx, http.MethodPost, "/email-validate", body)
//	resp, err := c.Do(ctx, req)
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/taskplace-api/internal/platform/config"
	"github.com/jsamuelsen11/taskplace-api/internal/platform/telemetry"
)

// ErrUnavailable marks calls the circuit breaker refused to make. The
// gobreaker sentinel is wrapped alongside it.
var ErrUnavailable = errors.New("downstream unavailable")

// Option customizes a Client.
type Option func(*Client)

// WithHeader sends name: value on every request that does not set name
// itself. An empty value is ignored, so unset credentials never go out blank.
func WithHeader(name, value string) Option {
	return func(c *Client) {
		if value != "" {
			c.headers.Set(name, value)
		}
	}
}

// WithTransport replaces the round tripper, mainly for tests.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.http.Transport = rt
	}
}

// Client talks to a single downstream service.
type Client struct {
	name    string
	baseURL string
	http    *http.Client
	headers http.Header
	breaker *gobreaker.CircuitBreaker[*http.Response]
	limiter *rate.Limiter // nil when unlimited
	policy  retryPolicy
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New returns a Client for the service called name. metrics and logger may
// be nil.
func New(cfg *config.ClientConfig, name string, metrics *telemetry.Metrics, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &Client{
		name:    name,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		headers: make(http.Header),
		policy:  newRetryPolicy(cfg.Retry),
		metrics: metrics,
		logger:  logger.With(slog.String("peer_service", name)),
	}
	c.breaker = gobreaker.NewCircuitBreaker[*http.Response](c.breakerSettings(cfg.CircuitBreaker))

	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), max(rl.BurstSize, 1))
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) breakerSettings(cfg config.CircuitBreakerConfig) gobreaker.Settings {
	return gobreaker.Settings{
		Name:        c.name,
		MaxRequests: clampUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= clampUint32(cfg.MaxFailures)
		},
		OnStateChange: func(_ string, from, to gobreaker.State) {
			c.logger.Warn("circuit breaker state change",
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}
}

// Do sends req and returns the downstream response.
//
// The caller closes the body of any non-nil response. When every attempt
// ended on a retryable status, the last response comes back together with a
// non-nil error. Transport failures and breaker refusals return a nil
// response; refusals match ErrUnavailable.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("%s: rate limiter: %w", c.name, err)
			}
		}
		c.decorate(ctx, req)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		resp, err := c.send(spanCtx, req.WithContext(spanCtx))
		endSpan(span, resp, err)
		return resp, err
	})

	c.record(ctx, req.Method, time.Since(start), resp, err)

	if refused(err) {
		return nil, fmt.Errorf("%s: %w: %w", c.name, ErrUnavailable, err)
	}
	return resp, err
}

// Name is the downstream service name used in spans, metrics and logs.
func (c *Client) Name() string {
	return c.name
}

// State returns the breaker state: "closed", "half-open" or "open".
func (c *Client) State() string {
	return c.breaker.State().String()
}

// HealthCheck reports an error unless the breaker is closed. It never calls
// the downstream service.
func (c *Client) HealthCheck(context.Context) error {
	if state := c.breaker.State(); state != gobreaker.StateClosed {
		return fmt.Errorf("%s: circuit breaker %s", c.name, state)
	}
	return nil
}

func refused(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(v)
}
