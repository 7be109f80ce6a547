// Package telemetry provides OpenTelemetry instrumentation for Honeycomb.
package telemetry

import (
	"context"
	"errors"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "snek"
	serviceVersion = "0.1.0"

	defaultEndpoint = "https://api.honeycomb.io"
	defaultDataset  = "snek"
)

// ErrDisabled is returned by Setup when no API key is configured.
var ErrDisabled = errors.New("telemetry disabled: no API key")

// Config selects where traces are sent.
type Config struct {
	Endpoint string
	APIKey   string
	Dataset  string
}

// ConfigFromEnv reads SNEK_HONEYCOMB_API_KEY, SNEK_HONEYCOMB_DATASET and
// SNEK_OTLP_ENDPOINT, falling back to Honeycomb defaults.
func ConfigFromEnv() Config {
	cfg := Config{
		Endpoint: os.Getenv("SNEK_OTLP_ENDPOINT"),
		APIKey:   os.Getenv("SNEK_HONEYCOMB_API_KEY"),
		Dataset:  os.Getenv("SNEK_HONEYCOMB_DATASET"),
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	if cfg.Dataset == "" {
		cfg.Dataset = defaultDataset
	}
	return cfg
}

// Headers returns the OTLP request headers Honeycomb expects.
func (c Config) Headers() map[string]string {
	return map[string]string{
		"x-honeycomb-team":    c.APIKey,
		"x-honeycomb-dataset": c.Dataset,
	}
}

// Setup initializes OpenTelemetry with an OTLP HTTP exporter and registers it
// as the global tracer provider.
//
// Returns a shutdown function that should be called on application exit.
func Setup(ctx context.Context, cfg Config) (shutdown func(context.Context) error, err error) {
	if cfg.APIKey == "" {
		return nil, ErrDisabled
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(cfg.Endpoint),
		otlptracehttp.WithHeaders(cfg.Headers()),
	)
	if err != nil {
		return nil, err
	}

	// Own resource rather than merging with Default() to avoid schema URL conflicts
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("host.name", getHostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.name", "go"),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// NoopTracer returns a no-op tracer for use when telemetry is disabled.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(serviceName + "/noop")
}

func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
