package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/taskplace-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskplace-api/internal/domain"
	"github.com/jsamuelsen11/taskplace-api/internal/platform/logging"
	"github.com/jsamuelsen11/taskplace-api/internal/ports"
)

const bearerPrefix = "Bearer "

// Authenticate rejects requests without a valid access token and stores the
// resolved principal with domain.WithPrincipal. The Authorization header
// holds the raw token; a "Bearer " prefix is accepted and stripped.
//
// Register it after AppContext so the user lookup done during
// authentication is memoized for the handler.
func Authenticate(auth ports.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			p, err := auth.Authenticate(ctx, tokenFromHeader(r.Header.Get("Authorization")))
			if err != nil {
				dto.WriteErrorResponse(w, r, err)
				return
			}

			ctx = domain.WithPrincipal(ctx, p)
			ctx = logging.Enrich(ctx, slog.String("user_id", p.ID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func tokenFromHeader(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > len(bearerPrefix) && strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return strings.TrimSpace(header[len(bearerPrefix):])
	}
	return header
}
