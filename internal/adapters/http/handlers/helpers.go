// Package handlers implements the HTTP handlers of the API. Handlers decode
// the request, call one service port and encode its result; every failure is
// written through dto.WriteErrorResponse.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/taskplace-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskplace-api/internal/domain"
	"github.com/jsamuelsen11/taskplace-api/internal/platform/logging"
)

// MsgMalformedBody is returned when the request body is not a JSON object.
const MsgMalformedBody = "Request body must be a JSON object."

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.Any("error", err),
		)
	}
}

// decodeObject decodes the request body as a JSON object. An empty body is
// an empty object. On failure it writes a 400 response and returns false.
func decodeObject(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)

	var body map[string]any
	err := json.NewDecoder(r.Body).Decode(&body)
	switch {
	case errors.Is(err, io.EOF):
		return map[string]any{}, true
	case err != nil:
		dto.WriteErrorResponse(w, r, domain.NewClientError(domain.ErrValidation, MsgMalformedBody))
		return nil, false
	case body == nil:
		// literal null
		return map[string]any{}, true
	}
	return body, true
}

func idParam(r *http.Request) string {
	return chi.URLParam(r, "id")
}
