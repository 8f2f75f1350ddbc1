package app

import (
	"context"
	"fmt"

	appctx "github.com/jsamuelsen11/taskplace-api/internal/app/context"
	"github.com/jsamuelsen11/taskplace-api/internal/domain"
	"github.com/jsamuelsen11/taskplace-api/internal/ports"
)

// Client-facing authentication messages.
const (
	MsgNoToken      = "No authorization token provided."
	MsgInvalidToken = "Invalid or expired authorization token."
)

func principalKey(id string) string {
	return "principal:" + id
}

// loadUser returns the stored user record for id, memoized for the rest of
// the request. A user that no longer exists yields a nil record.
func loadUser(ctx context.Context, store ports.Store, id string) (domain.Record, error) {
	rc := appctx.FromContext(ctx)
	return appctx.GetOrFetch(rc, principalKey(id), func(ctx context.Context) (domain.Record, error) {
		users, err := store.ReadAll(ctx, ports.CollectionUsers)
		if err != nil {
			return nil, fmt.Errorf("loading user %s: %w", id, err)
		}
		if i := domain.IndexOf(users, id); i >= 0 {
			return users[i], nil
		}
		return nil, nil
	})
}

// currentPrincipal returns the caller placed in ctx by the auth middleware.
func currentPrincipal(ctx context.Context) (domain.Principal, error) {
	p, ok := domain.PrincipalFromContext(ctx)
	if !ok || p.ID == "" {
		return domain.Principal{}, domain.NewClientError(domain.ErrUnauthorized, MsgNoToken)
	}
	return p, nil
}
