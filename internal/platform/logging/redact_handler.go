package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders is the set of lowercase HTTP header names carrying
// credentials: the inbound Authorization header and friends, plus the
// user-id/api-key pair sent to the email verification provider. The HTTP
// middleware's RedactHeaders reads it too.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
	"api-key":       true,
	"user-id":       true,
}

// Attribute keys whose values are always masked, whatever their content.
var (
	sensitiveFields   = []string{"password", "secret", "token", "token_secret", "email"}
	sensitivePrefixes = []string{"secret_", "api_key", "password_"}
)

// Values masked wherever they appear: bearer credentials, bare JWTs (three
// segments of ten or more characters so version strings survive) and inline
// api key assignments.
var sensitivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
}

// newRedactAttr returns the masq ReplaceAttr installed on every handler
// built by New.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0,
		len(SensitiveHeaders)+len(sensitiveFields)+len(sensitivePrefixes)+len(sensitivePatterns))

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range sensitivePatterns {
		opts = append(opts, masq.WithRegex(re))
	}

	return masq.New(opts...)
}
