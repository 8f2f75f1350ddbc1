package ports

import "context"

// HealthChecker is implemented by components that can report their own
// health, such as the JSON store or the email verification client.
type HealthChecker interface {
	// Name identifies the component in readiness output ("store").
	Name() string

	// HealthCheck returns nil when healthy. Implementations should respect
	// context cancellation and deadlines.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry manages registration and execution of health checkers.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every registered check and returns results keyed by
	// checker name. Nil values indicate healthy components.
	CheckAll(ctx context.Context) map[string]error
}
