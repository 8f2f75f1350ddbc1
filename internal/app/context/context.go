// Package appctx memoizes reads for the lifetime of one request.
//
// The AppContext middleware attaches a RequestContext to every request.
// Services route repeated lookups through it, so the authenticated caller's
// user record, for example, is read from the store once per request:
//
//	user, err := appctx.GetOrFetch(appctx.FromContext(ctx), "principal:"+id, loadUser)
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// ErrTypeMismatch means a key was requested as a different type than the
// one first stored under it.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

// RequestContext is a context.Context carrying a per-request memo. Results
// and errors are both remembered. Concurrent lookups of one key share a
// single fetch.
type RequestContext struct {
	context.Context

	inflight singleflight.Group

	mu   sync.RWMutex
	memo map[string]outcome
}

type outcome struct {
	value any
	err   error
}

// New returns an empty RequestContext over ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{Context: ctx, memo: make(map[string]outcome)}
}

type ctxKey struct{}

// WithRequestContext returns ctx carrying rc.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, rc)
}

// FromContext returns the RequestContext in ctx, or a fresh one bound to ctx
// when there is none, as in tests and background work.
func FromContext(ctx context.Context) *RequestContext {
	if rc, _ := ctx.Value(ctxKey{}).(*RequestContext); rc != nil {
		return rc
	}
	return New(ctx)
}

// GetOrFetch returns what is remembered under key, running fetch with the
// request's context the first time key is asked for.
func GetOrFetch[T any](rc *RequestContext, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	o, ok := rc.recall(key)
	if !ok {
		shared, _, _ := rc.inflight.Do(key, func() (any, error) {
			if o, ok := rc.recall(key); ok {
				return o, nil
			}
			v, err := fetch(rc.Context)
			o := outcome{value: v, err: err}

			rc.mu.Lock()
			rc.memo[key] = o
			rc.mu.Unlock()
			return o, nil
		})
		o = shared.(outcome)
	}

	if o.err != nil || o.value == nil {
		return zero, o.err
	}
	v, ok := o.value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q holds %T, not %T", ErrTypeMismatch, key, o.value, zero)
	}
	return v, nil
}

func (rc *RequestContext) recall(key string) (outcome, bool) {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	o, ok := rc.memo[key]
	return o, ok
}
