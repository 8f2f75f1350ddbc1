// Package middleware holds the inbound HTTP pipeline. The server installs it
// in this order:
//
//	Recovery → RequestID → CorrelationID → AppContext → OpenTelemetry → Logging → Timeout
//
// Authenticate is not part of the global chain; the router attaches it to the
// protected /api/v1 group so health, registration and login stay public.
package middleware
