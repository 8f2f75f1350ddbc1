// Package health keeps the components behind the readiness endpoint, such
// as the collection store and the email verification client.
package health

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/taskplace-api/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// DefaultCheckTimeout bounds each component check.
const DefaultCheckTimeout = 2 * time.Second

// Registry runs registered checks in parallel. It is safe for concurrent
// use.
type Registry struct {
	timeout time.Duration

	mu       sync.RWMutex
	checkers map[string]ports.HealthChecker
}

// New returns an empty Registry using DefaultCheckTimeout.
func New() *Registry {
	return NewWithTimeout(DefaultCheckTimeout)
}

// NewWithTimeout returns an empty Registry that abandons a check after
// timeout. Zero or less means no limit.
func NewWithTimeout(timeout time.Duration) *Registry {
	return &Registry{timeout: timeout, checkers: make(map[string]ports.HealthChecker)}
}

// Register adds checker under its Name, replacing any checker already
// registered with that name.
func (r *Registry) Register(checker ports.HealthChecker) {
	name := checker.Name()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[name] = checker
}

// CheckAll returns every component's result by name; nil is healthy.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make(map[string]ports.HealthChecker, len(r.checkers))
	for name, c := range r.checkers {
		checkers[name] = c
	}
	r.mu.RUnlock()

	var (
		mu      sync.Mutex
		results = make(map[string]error, len(checkers))
		g       errgroup.Group
	)
	for name, c := range checkers {
		g.Go(func() error {
			err := r.check(ctx, c)

			mu.Lock()
			results[name] = err
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (r *Registry) check(ctx context.Context, c ports.HealthChecker) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	return c.HealthCheck(ctx)
}
