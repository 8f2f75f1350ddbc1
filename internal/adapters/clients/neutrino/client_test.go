package neutrino_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/taskplace-api/internal/adapters/clients/neutrino"
	"github.com/jsamuelsen11/taskplace-api/internal/domain"
	"github.com/jsamuelsen11/taskplace-api/internal/platform/config"
	"github.com/jsamuelsen11/taskplace-api/internal/platform/httpclient"
)

func newVerifier(t *testing.T, handler http.HandlerFunc) *neutrino.Verifier {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.ClientConfig{
		BaseURL: srv.URL,
		Timeout: time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: time.Millisecond,
			MaxInterval:     time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
	client := httpclient.New(cfg, neutrino.ServiceName, nil, discardLogger(),
		httpclient.WithHeader("user-id", "acct"),
		httpclient.WithHeader("api-key", "key"),
	)
	return neutrino.NewVerifier(client, discardLogger())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestVerify_SendsEmailAndCredentials(t *testing.T) {
	t.Parallel()

	var (
		gotPath, gotUser, gotKey string
		gotBody                  map[string]string
	)
	v := newVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser = r.Header.Get("user-id")
		gotKey = r.Header.Get("api-key")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"valid":true}`))
	})

	if !v.Verify(context.Background(), "a@b.com") {
		t.Fatal("Verify() = false, want true")
	}
	if gotPath != "/email-validate" {
		t.Errorf("path = %q, want /email-validate", gotPath)
	}
	if gotUser != "acct" || gotKey != "key" {
		t.Errorf("credentials = (%q, %q), want (acct, key)", gotUser, gotKey)
	}
	if gotBody["email"] != "a@b.com" {
		t.Errorf("body email = %q, want a@b.com", gotBody["email"])
	}
}

func TestVerify_Verdicts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
		want   bool
	}{
		{name: "valid", status: http.StatusOK, body: `{"valid":true}`, want: true},
		{name: "rejected", status: http.StatusOK, body: `{"valid":false}`, want: false},
		{name: "missing verdict fails open", status: http.StatusOK, body: `{}`, want: true},
		{name: "garbage body fails open", status: http.StatusOK, body: `<html>`, want: true},
		{name: "bad credentials fail open", status: http.StatusForbidden, body: `{"api-error":2,"api-error-msg":"bad key"}`, want: true},
		{name: "server error fails open", status: http.StatusBadGateway, body: ``, want: true},
		{name: "client error fails open", status: http.StatusBadRequest, body: `{"valid":false}`, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := newVerifier(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			if got := v.Verify(context.Background(), "a@b.com"); got != tt.want {
				t.Errorf("Verify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheck_ErrorKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "401 is unauthorized", status: http.StatusUnauthorized, wantErr: domain.ErrUnauthorized},
		{name: "429 is unavailable", status: http.StatusTooManyRequests, wantErr: domain.ErrUnavailable},
		{name: "503 is unavailable", status: http.StatusServiceUnavailable, wantErr: domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := newVerifier(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := v.Check(context.Background(), "a@b.com")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Check() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestVerify_Disabled(t *testing.T) {
	t.Parallel()

	v := neutrino.NewVerifier(nil, nil)

	if v.Enabled() {
		t.Error("Enabled() = true for verifier without client")
	}
	if !v.Verify(context.Background(), "anything") {
		t.Error("Verify() = false, want true when disabled")
	}
	if err := v.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil when disabled", err)
	}
	if _, err := v.Check(context.Background(), "anything"); err == nil {
		t.Error("Check() error = nil, want error when disabled")
	}
}

func TestVerify_OpenBreakerFailsOpen(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	cfg := &config.ClientConfig{
		BaseURL:        srv.URL,
		Timeout:        time.Second,
		Retry:          config.RetryConfig{MaxAttempts: 1, Multiplier: 1},
		CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 1, Timeout: time.Minute, HalfOpenLimit: 1},
	}
	v := neutrino.NewVerifier(httpclient.New(cfg, neutrino.ServiceName, nil, discardLogger()), discardLogger())

	_ = v.Verify(context.Background(), "a@b.com")
	if !v.Verify(context.Background(), "a@b.com") {
		t.Fatal("Verify() = false with open breaker, want true")
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("provider calls = %d, want 1 (second call short-circuited)", got)
	}
	if err := v.HealthCheck(context.Background()); err == nil {
		t.Error("HealthCheck() = nil, want error with open breaker")
	}
	if v.Name() != "neutrino" {
		t.Errorf("Name() = %q, want neutrino", v.Name())
	}
}
