package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/taskplace-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskplace-api/internal/ports"
)

// AuthHandler handles login.
type AuthHandler struct {
	auth ports.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(auth ports.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles POST /api/v1/auth and answers 201 with the user and a
// signed token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeObject(w, r)
	if !ok {
		return
	}
	req := dto.NewLoginRequest(body)

	session, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, dto.SessionResponse{User: session.User, Token: session.Token})
}
