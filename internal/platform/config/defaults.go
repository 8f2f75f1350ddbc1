package config

const (
	defaultServerPort = 8080

	defaultBcryptCost = 12

	defaultRetryMaxAttempts = 2
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 5.0
	defaultRateLimitBurst = 5
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":             "0.0.0.0",
		"server.port":             defaultServerPort,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "10s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "15s",

		"log.level":  "info",
		"log.format": "json",

		"store.data_dir": "data",

		"auth.token_secret": "",
		"auth.token_ttl":    "1h",
		"auth.bcrypt_cost":  defaultBcryptCost,

		"email_verification.enabled":                                false,
		"email_verification.user_id":                                "",
		"email_verification.api_key":                                "",
		"email_verification.client.base_url":                        "https://neutrinoapi.com",
		"email_verification.client.timeout":                         "5s",
		"email_verification.client.retry.max_attempts":              defaultRetryMaxAttempts,
		"email_verification.client.retry.initial_interval":          "100ms",
		"email_verification.client.retry.max_interval":              "1s",
		"email_verification.client.retry.multiplier":                defaultRetryMultiplier,
		"email_verification.client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"email_verification.client.circuit_breaker.timeout":         "30s",
		"email_verification.client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"email_verification.client.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"email_verification.client.rate_limit.burst_size":           defaultRateLimitBurst,

		"static.dir": "",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "taskplace-api",
	}
}
