// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/taskplace-api/internal/adapters/http/handlers"
)

// Routes bundles the handlers mounted by NewRouter.
type Routes struct {
	Users  *handlers.UserHandler
	Auth   *handlers.AuthHandler
	Tasks  *handlers.ResourceHandler
	Places *handlers.ResourceHandler
	Health *handlers.HealthHandler

	// Authenticate guards every /api/v1 route except registration and
	// login.
	Authenticate func(http.Handler) http.Handler

	// StaticDir, when set, is served at "/" for the browser client.
	StaticDir string
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(routes Routes, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health/live", routes.Health.Liveness)
	r.Get("/health/ready", routes.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		// Public.
		r.Post("/users", routes.Users.Register)
		r.Post("/auth", routes.Auth.Login)

		r.Group(func(r chi.Router) {
			if routes.Authenticate != nil {
				r.Use(routes.Authenticate)
			}

			r.Get("/users", routes.Users.List)
			r.Get("/users/{id}", routes.Users.Get)

			mountResource(r, "/tasks", routes.Tasks)
			mountResource(r, "/places", routes.Places)
		})
	})

	if routes.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(routes.StaticDir)))
	}

	return r
}

func mountResource(r chi.Router, prefix string, h *handlers.ResourceHandler) {
	r.Get(prefix, h.List)
	r.Post(prefix, h.Create)
	r.Get(prefix+"/{id}", h.Get)
	r.Patch(prefix+"/{id}", h.Update)
	r.Delete(prefix+"/{id}", h.Delete)
}
