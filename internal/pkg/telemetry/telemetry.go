// Package telemetry initializes the OpenTelemetry tracer and meter providers.
//
//	providers, err := telemetry.Init(ctx, "school", telemetry.ExporterStdout)
//	defer providers.Shutdown(ctx)
package telemetry

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

const (
	// ExporterStdout writes spans and metrics to stdout.
	ExporterStdout = "stdout"
	// ExporterNone records spans and metrics without exporting them.
	ExporterNone = "none"
)

// Providers holds the SDK providers registered as the otel globals.
type Providers struct {
	Tracer *sdktrace.TracerProvider
	Meter  *sdkmetric.MeterProvider
}

// Init creates both providers and registers them globally.
func Init(ctx context.Context, serviceName, exporter string) (*Providers, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(serviceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	traceOpts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}
	meterOpts := []sdkmetric.Option{sdkmetric.WithResource(res)}

	switch exporter {
	case ExporterStdout:
		spanExporter, spanErr := stdouttrace.New()
		if spanErr != nil {
			return nil, fmt.Errorf("creating span exporter: %w", spanErr)
		}
		metricExporter, metricErr := stdoutmetric.New()
		if metricErr != nil {
			return nil, fmt.Errorf("creating metric exporter: %w", metricErr)
		}
		traceOpts = append(traceOpts, sdktrace.WithBatcher(spanExporter))
		meterOpts = append(meterOpts, sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)))
	case ExporterNone, "":
	default:
		return nil, fmt.Errorf("unknown telemetry exporter %q", exporter)
	}

	p := &Providers{
		Tracer: sdktrace.NewTracerProvider(traceOpts...),
		Meter:  sdkmetric.NewMeterProvider(meterOpts...),
	}

	otel.SetTracerProvider(p.Tracer)
	otel.SetMeterProvider(p.Meter)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return p, nil
}

// Shutdown flushes and stops both providers.
func (p *Providers) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return errors.Join(p.Tracer.Shutdown(ctx), p.Meter.Shutdown(ctx))
}
