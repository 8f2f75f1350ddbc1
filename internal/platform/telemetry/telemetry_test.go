package telemetry_test

import (
	"context"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/taskplace-api/internal/platform/config"
	"github.com/jsamuelsen11/taskplace-api/internal/platform/telemetry"
)

// Setup tests are not parallel: they replace the global providers.

func TestSetup_Disabled(t *testing.T) {
	p, err := telemetry.Setup(context.Background(), config.TelemetryConfig{Enabled: false, Exporter: "bogus"})
	if err != nil {
		t.Fatalf("Setup(disabled) error = %v", err)
	}
	if p.Tracer != nil || p.Meter != nil || p.Metrics != nil {
		t.Errorf("Setup(disabled) = %+v, want empty providers", p)
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown of empty providers = %v", err)
	}
}

func TestSetup_Exporters(t *testing.T) {
	tests := []struct {
		name     string
		exporter string
		endpoint string
	}{
		{name: "stdout", exporter: telemetry.ExporterStdout},
		{name: "otlp plain http", exporter: telemetry.ExporterOTLP, endpoint: "http://localhost:4318"},
		{name: "otlp https", exporter: telemetry.ExporterOTLP, endpoint: "https://collector.example.com"},
		{name: "otlp bare host", exporter: telemetry.ExporterOTLP, endpoint: "localhost:4318"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			p, err := telemetry.Setup(ctx, config.TelemetryConfig{
				Enabled:     true,
				Exporter:    tt.exporter,
				Endpoint:    tt.endpoint,
				ServiceName: "taskplace-api-test",
			})
			if err != nil {
				t.Fatalf("Setup error = %v", err)
			}
			// No collector runs in unit tests, so an OTLP flush may fail.
			t.Cleanup(func() { _ = p.Shutdown(ctx) })

			if p.Tracer == nil || p.Meter == nil || p.Metrics == nil {
				t.Fatalf("Setup = %+v, want every provider set", p)
			}
			if otel.GetTracerProvider() != p.Tracer {
				t.Error("global tracer provider not replaced")
			}
			fields := otel.GetTextMapPropagator().Fields()
			if !strings.Contains(strings.Join(fields, ","), "traceparent") {
				t.Errorf("propagator fields = %v, want traceparent", fields)
			}
		})
	}
}

func TestSetup_Errors(t *testing.T) {
	tests := []struct {
		name     string
		exporter string
		endpoint string
		want     string
	}{
		{name: "unknown exporter", exporter: "zipkin", want: "unsupported exporter"},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP, want: "requires an endpoint"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := telemetry.Setup(context.Background(), config.TelemetryConfig{
				Enabled:     true,
				Exporter:    tt.exporter,
				Endpoint:    tt.endpoint,
				ServiceName: "taskplace-api-test",
			})
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Setup error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestNewMetrics_RegistersInstruments(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	m, err := telemetry.NewMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)), "taskplace-api-test")
	if err != nil {
		t.Fatalf("NewMetrics error = %v", err)
	}

	m.ServerRequestTotal.Add(ctx, 1)
	m.ClientRequestTotal.Add(ctx, 1)
	m.StoreOperationTotal.Add(ctx, 1)
	m.ValidationFailureTotal.Add(ctx, 1)
	m.ServerRequestDuration.Record(ctx, 0.01)
	m.ClientRequestDuration.Record(ctx, 0.01)
	m.StoreOperationDuration.Record(ctx, 0.01)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect: %v", err)
	}

	got := make(map[string]bool)
	for _, sm := range rm.ScopeMetrics {
		for _, metric := range sm.Metrics {
			got[metric.Name] = true
		}
	}
	for _, name := range []string{
		"http.server.request.duration",
		"http.server.request.total",
		"http.client.request.duration",
		"http.client.request.total",
		"store.operation.duration",
		"store.operation.total",
		"validation.failure.total",
	} {
		if !got[name] {
			t.Errorf("instrument %q not collected", name)
		}
	}
}

func TestNewMetrics_NoopProvider(t *testing.T) {
	t.Parallel()

	m, err := telemetry.NewMetrics(noop.NewMeterProvider(), "taskplace-api-test")
	if err != nil {
		t.Fatalf("NewMetrics(noop) error = %v", err)
	}
	m.StoreOperationTotal.Add(context.Background(), 1)
}
