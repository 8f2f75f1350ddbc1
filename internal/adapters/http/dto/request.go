package dto

// LoginRequest is the body of POST /api/v1/auth.
type LoginRequest struct {
	Email    string
	Password string
}

// NewLoginRequest reads credentials from a decoded body. Values that are not
// strings are treated as empty, which never matches a stored user.
func NewLoginRequest(body map[string]any) LoginRequest {
	email, _ := body["email"].(string)
	password, _ := body["password"].(string)
	return LoginRequest{Email: email, Password: password}
}
