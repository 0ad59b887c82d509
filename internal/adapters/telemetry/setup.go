package telemetry

import (
	"context"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/rulecache/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options configures Setup.
type Options struct {
	// Logger receives a debug line per finished span. Nil disables it.
	Logger ports.Logger
	// Export writes finished spans as JSON to this writer. Nil disables it.
	Export io.Writer
}

// Setup installs a global tracer provider built from opts and returns a
// function flushing and shutting it down.
func Setup(opts Options) (func(context.Context) error, error) {
	var providerOpts []sdktrace.TracerProviderOption

	if opts.Logger != nil {
		providerOpts = append(providerOpts, sdktrace.WithSpanProcessor(NewLogBridge(opts.Logger)))
	}

	if opts.Export != nil {
		exporter, err := stdouttrace.New(
			stdouttrace.WithWriter(opts.Export),
			stdouttrace.WithPrettyPrint(),
		)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to create trace exporter")
		}
		providerOpts = append(providerOpts, sdktrace.WithSyncer(exporter))
	}

	tp := sdktrace.NewTracerProvider(providerOpts...)
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}
