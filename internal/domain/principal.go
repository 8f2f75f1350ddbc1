package domain

import "context"

// Principal is the identity carried by a verified access token.
type Principal struct {
	ID     string
	Access string
}

// IsAdmin reports whether the principal bypasses ownership checks.
func (p Principal) IsAdmin() bool {
	return p.Access == AccessAdmin
}

// CanAccess reports whether the principal may read or change rec: it must
// own the record or be an admin.
func (p Principal) CanAccess(rec Record) bool {
	return p.IsAdmin() || (p.ID != "" && rec.Owner() == p.ID)
}

type principalKey struct{}

// WithPrincipal stores the authenticated principal in ctx.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the principal stored by WithPrincipal.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
