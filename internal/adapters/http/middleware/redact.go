package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/taskplace-api/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders renders headers as slog attributes sorted by name. Values of
// logging.SensitiveHeaders (Authorization, the verification provider's
// credentials and the like) become "[REDACTED]"; repeated values are joined
// with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	names := slices.Sorted(maps.Keys(headers))

	attrs := make([]slog.Attr, len(names))
	for i, name := range names {
		v := strings.Join(headers[name], ",")
		if logging.SensitiveHeaders[strings.ToLower(name)] {
			v = redacted
		}
		attrs[i] = slog.String(name, v)
	}
	return attrs
}
