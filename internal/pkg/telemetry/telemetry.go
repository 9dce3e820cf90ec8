// Package telemetry provides helpers to initialize OpenTelemetry tracing with an
// OTLP exporter over gRPC. It creates a Resource for the service, registers the
// global TracerProvider, and exposes a ShutdownFunc to flush pending spans.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

// initTracerProvider sets up an OTLP gRPC TracerProvider using a
// batched exporter and the given Resource. It also registers the
// provider as the global TracerProvider.
func initTracerProvider(ctx context.Context, res *sdkresource.Resource) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	return tp, nil
}

// newResource constructs an OpenTelemetry Resource by merging the default
// system resource with a ServiceName attribute for the given service.
func newResource(serviceName string) (*sdkresource.Resource, error) {
	return sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

// ShutdownFunc defines a callback to flush and stop the telemetry pipeline.
// Call this function at application shutdown to ensure all spans are sent.
type ShutdownFunc func(ctx context.Context) error

// Init configures OpenTelemetry tracing using OTLP over gRPC. The exporter reads
// its endpoint and credentials from the standard OTEL_EXPORTER_OTLP_* variables.
//
// The returned ShutdownFunc flushes buffered spans and stops the provider.
func Init(ctx context.Context, serviceName string) (ShutdownFunc, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, err
	}

	tp, err := initTracerProvider(ctx, res)
	if err != nil {
		return nil, err
	}

	return tp.Shutdown, nil
}

// Noop returns a ShutdownFunc that does nothing, used when telemetry is disabled.
func Noop() ShutdownFunc {
	return func(context.Context) error { return nil }
}
