package otel

import (
	"context"
	"errors"
	"os"

	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.38.0"
)

const instrumentationName = "github.com/MMansij/New-Int"

var (
	EnableDebug     = false
	EnableTelemetry = false
)

func init() {
	EnableDebug = os.Getenv("DEBUG") != ""
	EnableTelemetry = os.Getenv("TELEMETRY") != ""
}

type Observable interface {
	otelSetup()
}

// Setup installs OTLP backed tracer, meter and logger providers and returns
// a function flushing them. It does nothing unless TELEMETRY is set.
func Setup(ctx context.Context, serviceName string) (func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	if !EnableTelemetry {
		return noop, nil
	}

	resource, err := sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewSchemaless(semconv.ServiceNameKey.String(serviceName)),
	)

	if err != nil {
		return noop, err
	}

	var shutdowns []shutdownFunc

	for _, setup := range []func(context.Context, *sdkresource.Resource) (shutdownFunc, error){
		setupTracer,
		setupMeter,
		setupLogger,
	} {
		shutdown, err := setup(ctx, resource)

		if err != nil {
			err = errors.Join(err, shutdownAll(ctx, shutdowns))
			return noop, err
		}

		shutdowns = append(shutdowns, shutdown)
	}

	return func(ctx context.Context) error {
		return shutdownAll(ctx, shutdowns)
	}, nil
}

func shutdownAll(ctx context.Context, shutdowns []shutdownFunc) error {
	var errs []error

	for _, shutdown := range shutdowns {
		errs = append(errs, shutdown(ctx))
	}

	return errors.Join(errs...)
}
