package middleware

import (
	"net/http"

	appctx "github.com/jsamuelsen11/taskplace-api/internal/app/context"
)

// AppContext attaches a fresh appctx.RequestContext to each request. It runs
// ahead of Authenticate, whose user lookup is memoized there.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			next.ServeHTTP(w, r.WithContext(appctx.WithRequestContext(ctx, appctx.New(ctx))))
		})
	}
}
