// AngelaMos | 2026
// telemetry_test.go

package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/travel-marketplace/internal/config"
)

func TestSampleRateClamp(t *testing.T) {
	assert.Equal(t, defaultSampleRate, sampleRate(0))
	assert.Equal(t, defaultSampleRate, sampleRate(1.5))
	assert.Equal(t, 0.5, sampleRate(0.5))
	assert.Equal(t, 1.0, sampleRate(1))
}

func TestTelemetryDisabledIsNoop(t *testing.T) {
	ctx := context.Background()

	tel, err := NewTelemetry(ctx, config.OtelConfig{}, config.AppConfig{})
	require.NoError(t, err)
	assert.NoError(t, tel.Shutdown(ctx))

	spanCtx, span := StartSpan(ctx, "noop")
	defer span.End()
	assert.Empty(t, TraceIDFromContext(spanCtx))

	var nilTel *Telemetry
	assert.NoError(t, nilTel.Shutdown(ctx))
}
