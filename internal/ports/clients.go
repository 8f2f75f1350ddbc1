package ports

import (
	"context"

	"github.com/jsamuelsen11/taskplace-api/internal/domain"
)

// EmailVerifier runs the additional third-party check on a new user's email.
// Implementations fail open: any transport or decode problem is reported as
// a pass, so only a definite rejection returns false.
type EmailVerifier interface {
	Verify(ctx context.Context, email string) bool
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(ctx context.Context, plaintext string) (string, error)

	// Compare reports whether plaintext matches hash. A mismatch is
	// (false, nil); err is reserved for malformed hashes.
	Compare(ctx context.Context, hash, plaintext string) (bool, error)
}

// TokenIssuer signs and verifies access tokens.
type TokenIssuer interface {
	Issue(p domain.Principal) (string, error)

	// Verify returns the principal of a valid, unexpired token.
	Verify(token string) (domain.Principal, error)
}
