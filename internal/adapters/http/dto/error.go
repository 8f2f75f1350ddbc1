// Package dto provides the HTTP request/response shapes of the inbound
// adapter, including the {error, type, data} error envelope.
package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/taskplace-api/internal/domain"
	"github.com/jsamuelsen11/taskplace-api/internal/domain/validation"
	"github.com/jsamuelsen11/taskplace-api/internal/platform/logging"
)

// Error types carried in ErrorResponse.Type.
const (
	TypeServerError     = "server_error"
	TypeClientError     = "client_error"
	TypeValidationError = "validation_error"
)

// ServerErrorMessage is the only detail a caller ever sees for a 5xx.
const ServerErrorMessage = "A server error has occurred."

// ErrorResponse is the body of every non-2xx API response. Data is omitted
// for server errors, an empty object for client errors and the ordered list
// of field failures for validation errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Type  string `json:"type"`
	Data  any    `json:"data,omitempty"`
}

// NewErrorResponse maps err to a status code and response body. Errors that
// are not client or validation errors become a generic server error.
func NewErrorResponse(err error) (int, ErrorResponse) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		fields := verr.Errors
		if fields == nil {
			fields = []validation.FieldError{}
		}
		return http.StatusBadRequest, ErrorResponse{
			Error: domain.InvalidFieldsMessage,
			Type:  TypeValidationError,
			Data:  fields,
		}
	}

	var cerr *domain.ClientError
	if errors.As(err, &cerr) {
		if status := clientStatus(cerr.Kind); status != 0 {
			return status, ErrorResponse{
				Error: cerr.Message,
				Type:  TypeClientError,
				Data:  struct{}{},
			}
		}
	}

	return http.StatusInternalServerError, ErrorResponse{
		Error: ServerErrorMessage,
		Type:  TypeServerError,
	}
}

// WriteErrorResponse writes the error envelope for err. Server errors are
// logged with their full cause; the caller only gets the generic message.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := NewErrorResponse(err)

	if status >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// clientStatus maps the sentinel kind of a ClientError to its status code,
// or 0 when the kind is not caller-facing.
func clientStatus(kind error) int {
	switch {
	case errors.Is(kind, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(kind, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(kind, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(kind, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(kind, domain.ErrUnprocessable):
		return http.StatusUnprocessableEntity
	case errors.Is(kind, domain.ErrValidation):
		return http.StatusBadRequest
	default:
		return 0
	}
}
