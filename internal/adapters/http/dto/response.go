package dto

import "github.com/jsamuelsen11/taskplace-api/internal/domain"

// Health statuses.
const (
	StatusOK       = "ok"
	StatusReady    = "ready"
	StatusNotReady = "not_ready"
)

// HealthResponse is the body of the health endpoints.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// SessionResponse is the body returned by a successful login.
type SessionResponse struct {
	User  domain.Record `json:"user"`
	Token string        `json:"token"`
}

// NewReadinessResponse summarizes per-component check results. Any failing
// component makes the whole service not ready.
func NewReadinessResponse(results map[string]error) (HealthResponse, bool) {
	resp := HealthResponse{Status: StatusReady, Checks: make(map[string]string, len(results))}
	ready := true
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			ready = false
			continue
		}
		resp.Checks[name] = StatusOK
	}
	if !ready {
		resp.Status = StatusNotReady
	}
	return resp, ready
}
