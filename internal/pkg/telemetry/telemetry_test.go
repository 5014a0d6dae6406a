package telemetry_test

import (
	"testing"

	"school/internal/pkg/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestInit(t *testing.T) {
	for _, exporter := range []string{telemetry.ExporterStdout, telemetry.ExporterNone} {
		t.Run(exporter, func(t *testing.T) {
			ctx := t.Context()

			providers, err := telemetry.Init(ctx, "school-test", exporter)
			require.NoError(t, err)

			assert.Same(t, providers.Tracer, otel.GetTracerProvider())
			require.NoError(t, providers.Shutdown(ctx))
		})
	}
}

func TestInit_UnknownExporter(t *testing.T) {
	_, err := telemetry.Init(t.Context(), "school-test", "jaeger")

	require.ErrorContains(t, err, "jaeger")
}

func TestShutdown_Nil(t *testing.T) {
	var providers *telemetry.Providers

	assert.NoError(t, providers.Shutdown(t.Context()))
}
