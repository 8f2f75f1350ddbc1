package ports

import (
	"context"

	"github.com/jsamuelsen11/taskplace-api/internal/domain"
)

// ResourceService is the generic CRUD port for owned resources (tasks,
// places). Every method acts on behalf of the principal stored in ctx.
type ResourceService interface {
	// List returns the records the principal owns, or all records for an admin.
	List(ctx context.Context) ([]domain.Record, error)

	// Get returns one record. Returns domain.ErrNotFound or domain.ErrForbidden.
	Get(ctx context.Context, id string) (domain.Record, error)

	// Create validates body and stores a new record owned by the principal.
	// Returns a *domain.ValidationError on invalid input.
	Create(ctx context.Context, body map[string]any) (domain.Record, error)

	// Update applies the fields present in body to an existing record.
	Update(ctx context.Context, id string, body map[string]any) (domain.Record, error)

	// Delete removes a record.
	Delete(ctx context.Context, id string) error
}

// UserService covers registration and user lookup.
type UserService interface {
	// Register validates, verifies and stores a new user. The returned record
	// never contains the password.
	Register(ctx context.Context, body map[string]any) (domain.Record, error)

	// List returns all users without passwords. Admin only.
	List(ctx context.Context) ([]domain.Record, error)

	// Get returns one user without password. Self or admin only.
	Get(ctx context.Context, id string) (domain.Record, error)
}

// Session is the result of a successful login.
type Session struct {
	User  domain.Record `json:"user"`
	Token string        `json:"token"`
}

// AuthService issues and checks access tokens.
type AuthService interface {
	// Login verifies credentials. Returns domain.ErrUnauthorized on mismatch.
	Login(ctx context.Context, email, password string) (*Session, error)

	// Authenticate verifies a token and returns its principal.
	Authenticate(ctx context.Context, token string) (domain.Principal, error)
}
