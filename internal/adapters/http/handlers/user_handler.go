package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/taskplace-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskplace-api/internal/ports"
)

// UserHandler handles registration and user lookup.
type UserHandler struct {
	users ports.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Register handles POST /api/v1/users. It is the only user route that does
// not require a token.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeObject(w, r)
	if !ok {
		return
	}

	user, err := h.users.Register(r.Context(), body)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, user)
}

// List handles GET /api/v1/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, users)
}

// Get handles GET /api/v1/users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Get(r.Context(), idParam(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, user)
}
