package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores the inbound request ID; Do forwards it as
// X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID stores the inbound correlation ID; Do forwards it as
// X-Correlation-ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// NewJSONRequest builds a request for path under the base URL. A non-nil
// payload is encoded as the JSON body.
func (c *Client) NewJSONRequest(ctx context.Context, method, path string, payload any) (*http.Request, error) {
	body := io.Reader(http.NoBody)
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%s: encoding request body: %w", c.name, err)
		}
		body = bytes.NewReader(raw)
	}

	target := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("%s: building request: %w", c.name, err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// decorate adds the static headers the request lacks and the IDs carried
// in ctx.
func (c *Client) decorate(ctx context.Context, req *http.Request) {
	for name, values := range c.headers {
		if _, ok := req.Header[name]; !ok {
			req.Header[name] = values
		}
	}

	forward := map[string]any{
		"X-Request-ID":     ctx.Value(requestIDKey{}),
		"X-Correlation-ID": ctx.Value(correlationIDKey{}),
	}
	for name, v := range forward {
		if id, _ := v.(string); id != "" {
			req.Header.Set(name, id)
		}
	}
}
