package config

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/crypto/bcrypt"
)

// minTokenSecretBytes is the HS256 key size floor.
const minTokenSecretBytes = 32

// problems collects every violation so one run reports them all.
type problems []error

func (p *problems) require(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func (p *problems) oneOf(key, got string, allowed ...string) {
	p.require(slices.Contains(allowed, got), "%s must be one of %v, got %q", key, allowed, got)
}

func (p problems) err() error {
	return errors.Join(p...)
}

// Validate reports every invalid setting in c, joined into one error.
func (c *Config) Validate() error {
	var p problems

	s := c.Server
	p.require(s.Port >= 1 && s.Port <= 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	p.require(s.ReadTimeout > 0, "server.read_timeout must be positive")
	p.require(s.WriteTimeout > 0, "server.write_timeout must be positive")

	p.oneOf("log.level", c.Log.Level, "debug", "info", "warn", "error")
	p.oneOf("log.format", c.Log.Format, "json", "text")

	p.require(c.Store.DataDir != "", "store.data_dir must not be empty")

	a := c.Auth
	p.require(len(a.TokenSecret) >= minTokenSecretBytes, "auth.token_secret must be at least %d bytes", minTokenSecretBytes)
	p.require(a.TokenTTL > 0, "auth.token_ttl must be positive")
	p.require(a.BcryptCost >= bcrypt.MinCost && a.BcryptCost <= bcrypt.MaxCost,
		"auth.bcrypt_cost must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, a.BcryptCost)

	if c.EmailVerification.Enabled {
		p.client("email_verification.client", c.EmailVerification.Client)
	}

	if t := c.Telemetry; t.Enabled {
		p.oneOf("telemetry.exporter", t.Exporter, "stdout", "otlp")
		p.require(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint must not be empty when exporter is otlp")
		p.require(t.ServiceName != "", "telemetry.service_name must not be empty")
	}

	return p.err()
}

func (p *problems) client(prefix string, cl ClientConfig) {
	p.require(cl.BaseURL != "", "%s.base_url must not be empty", prefix)
	p.require(cl.Timeout > 0, "%s.timeout must be positive", prefix)
	p.require(cl.Retry.MaxAttempts >= 1, "%s.retry.max_attempts must be at least 1, got %d", prefix, cl.Retry.MaxAttempts)
	p.require(cl.Retry.Multiplier > 0, "%s.retry.multiplier must be positive, got %g", prefix, cl.Retry.Multiplier)
	p.require(cl.CircuitBreaker.MaxFailures >= 1,
		"%s.circuit_breaker.max_failures must be at least 1, got %d", prefix, cl.CircuitBreaker.MaxFailures)

	rl := cl.RateLimit
	p.require(rl.RequestsPerSecond >= 0, "%s.rate_limit.requests_per_second must not be negative", prefix)
	p.require(rl.RequestsPerSecond == 0 || rl.BurstSize >= 1,
		"%s.rate_limit.burst_size must be at least 1 when rate limiting is on", prefix)
}
