package zerolog_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/uptrace-go/uptrace"
	"go.opentelemetry.io/otel/trace"

	otelzerolog "github.com/canvassing/pax-rewards/internal/zerolog"
)

func TestLog(t *testing.T) {
	uptrace.ConfigureOpentelemetry()
	otelzerolog.InitLogger(true)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	traceID, err := trace.TraceIDFromHex("17d023447a330049126f26a9996249c0")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("fd1054dfa5132df5")
	require.NoError(t, err)
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger := log.Ctx(ctx)
	require.NotNil(t, logger)
	assert.NotEqual(t, zerolog.Disabled, logger.GetLevel())
	logger.Info().Str("task_id", "task-42").Msg("signature package issued")
	assert.NoError(t, otelzerolog.Shutdown(ctx))
}

func TestConfigure(t *testing.T) {
	require.NoError(t, otelzerolog.Configure("warn", "console"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	require.NoError(t, otelzerolog.Configure("", "json"))
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	assert.Error(t, otelzerolog.Configure("loud", "json"))
	assert.Error(t, otelzerolog.Configure("info", "xml"))
}
