package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/jsamuelsen11/taskplace-api/internal/platform/config"
	"github.com/jsamuelsen11/taskplace-api/internal/platform/logging"
)

// jitter spreads each delay uniformly over ±25%.
const jitter = 0.25

type retryPolicy struct {
	attempts   int
	initial    time.Duration
	ceiling    time.Duration
	multiplier float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		attempts:   max(cfg.MaxAttempts, 1),
		initial:    cfg.InitialInterval,
		ceiling:    cfg.MaxInterval,
		multiplier: cfg.Multiplier,
	}
}

// delay is the wait before retry n (n >= 1): the initial interval grown by
// multiplier^(n-1), capped at the ceiling, then jittered.
func (p retryPolicy) delay(n int) time.Duration {
	d := math.Min(float64(p.initial)*math.Pow(p.multiplier, float64(n-1)), float64(p.ceiling))
	d *= 1 + jitter*(2*rand.Float64()-1)
	return time.Duration(max(d, 0))
}

// send performs up to policy.attempts round trips. The body is read once and
// replayed for each attempt. Retryable statuses are drained and discarded
// except on the final attempt, whose response is returned with an error.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	body, err := snapshotBody(req)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for n := range c.policy.attempts {
		if n > 0 {
			if err := c.wait(ctx, req, n, lastErr); err != nil {
				return nil, err
			}
		}
		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
		}

		resp, err := c.http.Do(req)
		switch {
		case err != nil:
			if !transient(err) {
				return nil, err
			}
			lastErr = err
		case retryableStatus(resp.StatusCode):
			lastErr = fmt.Errorf("%s: HTTP %d", c.name, resp.StatusCode)
			if n == c.policy.attempts-1 {
				return resp, lastErr
			}
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		default:
			return resp, nil
		}
	}
	return nil, lastErr
}

func (c *Client) wait(ctx context.Context, req *http.Request, n int, cause error) error {
	d := c.policy.delay(n)

	logging.FromContext(ctx).WarnContext(ctx, "retrying outbound request",
		slog.String("peer_service", c.name),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("attempt", n+1),
		slog.Int("max_attempts", c.policy.attempts),
		slog.Duration("backoff", d),
		slog.Any("error", cause),
	)

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func snapshotBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer func() { _ = req.Body.Close() }()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

// transient reports whether a transport error is worth another attempt.
// Cancellation and expired deadlines are final.
func transient(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// retryableStatus covers 429 and all 5xx.
func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
