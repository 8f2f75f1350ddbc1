package neutrino

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen11/taskplace-api/internal/domain"
)

const maxErrorBodySize = 64 << 10

// apiError is the provider's error envelope.
type apiError struct {
	Code    int    `json:"api-error"`
	Message string `json:"api-error-msg"`
}

// translateStatus maps a non-2xx provider response to a domain error. The
// provider's own message is kept for logs when the body carries one.
func translateStatus(resp *http.Response) error {
	detail := http.StatusText(resp.StatusCode)
	if ae, ok := parseAPIError(resp); ok {
		detail = fmt.Sprintf("api-error %d: %s", ae.Code, ae.Message)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("credentials rejected (%s): %w", detail, domain.ErrUnauthorized)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)
	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
}

func parseAPIError(resp *http.Response) (apiError, bool) {
	if resp.Body == nil {
		return apiError{}, false
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil || len(raw) == 0 {
		return apiError{}, false
	}
	var ae apiError
	if err := json.Unmarshal(raw, &ae); err != nil || ae.Code == 0 {
		return apiError{}, false
	}
	return ae, true
}
