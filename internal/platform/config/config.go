// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server            ServerConfig            `koanf:"server"`
	Log               LogConfig               `koanf:"log"`
	Store             StoreConfig             `koanf:"store"`
	Auth              AuthConfig              `koanf:"auth"`
	EmailVerification EmailVerificationConfig `koanf:"email_verification"`
	Static            StaticConfig            `koanf:"static"`
	Telemetry         TelemetryConfig         `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`

	// ShutdownTimeout bounds the drain of in-flight requests on exit. Zero
	// selects a 15s default.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// StoreConfig locates the JSON collection files.
type StoreConfig struct {
	DataDir string `koanf:"data_dir"`
}

// AuthConfig holds token signing and password hashing settings.
type AuthConfig struct {
	TokenSecret string        `koanf:"token_secret"`
	TokenTTL    time.Duration `koanf:"token_ttl"`
	BcryptCost  int           `koanf:"bcrypt_cost"`
}

// EmailVerificationConfig holds the third-party email check settings. The
// check is skipped (treated as passed) unless enabled with both credentials.
type EmailVerificationConfig struct {
	Enabled bool         `koanf:"enabled"`
	UserID  string       `koanf:"user_id"`
	APIKey  string       `koanf:"api_key"`
	Client  ClientConfig `koanf:"client"`
}

// Active reports whether verification calls should be made.
func (e EmailVerificationConfig) Active() bool {
	return e.Enabled && e.UserID != "" && e.APIKey != ""
}

// StaticConfig points at the browser client assets. Empty Dir disables
// static serving.
type StaticConfig struct {
	Dir string `koanf:"dir"`
}

// ClientConfig holds outbound HTTP client settings.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds token-bucket settings. Zero RequestsPerSecond
// disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
