package zerolog

import (
	"context"
	"os"
	"sync"

	"github.com/agoda-com/opentelemetry-go/otelzerolog"
	"github.com/agoda-com/opentelemetry-logs-go/exporters/otlp/otlplogs"
	"github.com/agoda-com/opentelemetry-logs-go/exporters/otlp/otlplogs/otlplogshttp"
	sdklogs "github.com/agoda-com/opentelemetry-logs-go/sdk/logs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

var (
	providerMu     sync.Mutex
	loggerProvider *sdklogs.LoggerProvider
)

// otlpEnabled reports whether an OTLP endpoint is configured through the
// standard OpenTelemetry environment variables.
func otlpEnabled() bool {
	return os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" ||
		os.Getenv("OTEL_EXPORTER_OTLP_LOGS_ENDPOINT") != ""
}

// InitDefaultLogger installs the logger returned by log.Ctx for contexts
// without one. Records are also exported over OTLP when an endpoint is set.
func InitDefaultLogger() {
	loggerVal := log.With().Caller().Logger()
	if otlpEnabled() {
		if provider := ensureProvider(); provider != nil {
			loggerVal = loggerVal.Hook(otelzerolog.NewHook(provider))
		}
	}
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.DefaultContextLogger = &loggerVal
}

func ensureProvider() *sdklogs.LoggerProvider {
	providerMu.Lock()
	defer providerMu.Unlock()
	if loggerProvider != nil {
		return loggerProvider
	}
	exporter, err := otlplogs.NewExporter(context.Background(), otlplogs.WithClient(otlplogshttp.NewClient()))
	if err != nil {
		log.Warn().Err(err).Msg("failed to create otlp log exporter")
		return nil
	}
	loggerProvider = sdklogs.NewLoggerProvider(
		sdklogs.WithBatcher(
			exporter,
			sdklogs.WithMaxExportBatchSize(512),
		),
	)
	return loggerProvider
}

// Shutdown flushes exported log records.
func Shutdown(ctx context.Context) error {
	providerMu.Lock()
	defer providerMu.Unlock()
	if loggerProvider == nil {
		return nil
	}
	err := loggerProvider.Shutdown(ctx)
	loggerProvider = nil
	return err
}
