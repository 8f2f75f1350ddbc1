// Package neutrino is the outbound adapter for the Neutrino API email
// validation endpoint, used as the additional check on new registrations.
package neutrino

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/taskplace-api/internal/platform/httpclient"
	"github.com/jsamuelsen11/taskplace-api/internal/ports"
)

var (
	_ ports.EmailVerifier = (*Verifier)(nil)
	_ ports.HealthChecker = (*Verifier)(nil)
)

// ServiceName identifies the provider in spans, metrics and readiness output.
const ServiceName = "neutrino"

const validatePath = "/email-validate"

type validateRequest struct {
	Email string `json:"email"`
}

// validateResponse keeps only the verdict. Valid is a pointer so a body
// without it is treated as undecodable rather than as a rejection.
type validateResponse struct {
	Valid *bool `json:"valid"`
}

// Verifier calls the provider through an instrumented httpclient.Client. A
// Verifier with no client is disabled and passes every address.
type Verifier struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewVerifier returns a Verifier. Pass a nil client when verification is
// not configured.
func NewVerifier(client *httpclient.Client, logger *slog.Logger) *Verifier {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Verifier{client: client, logger: logger}
}

// Enabled reports whether calls are made at all.
func (v *Verifier) Enabled() bool {
	return v.client != nil
}

// Verify reports whether email passed the provider's check. It fails open:
// only a successful response with valid=false returns false.
func (v *Verifier) Verify(ctx context.Context, email string) bool {
	if !v.Enabled() {
		return true
	}

	valid, err := v.Check(ctx, email)
	if err != nil {
		v.logger.WarnContext(ctx, "email verification unavailable, allowing address",
			slog.String("operation", "neutrino.Verify"),
			slog.Any("error", err),
		)
		return true
	}
	return valid
}

// Check calls the provider and returns its verdict without the fail-open
// policy applied.
func (v *Verifier) Check(ctx context.Context, email string) (bool, error) {
	if !v.Enabled() {
		return false, errors.New("neutrino: verifier disabled")
	}

	req, err := v.client.NewJSONRequest(ctx, http.MethodPost, validatePath, validateRequest{Email: email})
	if err != nil {
		return false, err
	}

	resp, err := v.client.Do(ctx, req)
	if resp != nil {
		defer func() {
			if cerr := resp.Body.Close(); cerr != nil {
				v.logger.WarnContext(ctx, "failed to close response body", slog.Any("error", cerr))
			}
		}()
	}
	if err != nil {
		if resp != nil {
			return false, translateStatus(resp)
		}
		return false, fmt.Errorf("POST %s: %w", validatePath, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return false, translateStatus(resp)
	}

	var body validateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, fmt.Errorf("decoding %s response: %w", validatePath, err)
	}
	if body.Valid == nil {
		return false, fmt.Errorf("decoding %s response: missing valid field", validatePath)
	}
	return *body.Valid, nil
}

// Name returns ServiceName.
func (v *Verifier) Name() string {
	return ServiceName
}

// HealthCheck mirrors the client's circuit breaker. A disabled verifier is
// always healthy.
func (v *Verifier) HealthCheck(ctx context.Context) error {
	if !v.Enabled() {
		return nil
	}
	return v.client.HealthCheck(ctx)
}
