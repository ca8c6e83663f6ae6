package observability

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(" warning "))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestInstruments_NilSafe(t *testing.T) {
	var instruments *Instruments
	assert.NotNil(t, instruments.Tracer("test"))
	assert.NotNil(t, instruments.Meter("test"))
	_, err := instruments.Collect(context.Background())
	require.Error(t, err)
}

func TestInit_LoggerAndMeters(t *testing.T) {
	ctx := context.Background()
	var logs bytes.Buffer
	instruments, shutdown, err := Init(ctx, Settings{
		ServiceName:  "grubdash-test",
		LogLevel:     slog.LevelWarn,
		LogWriter:    &logs,
		OTLPEndpoint: "127.0.0.1:4318",
		OTLPInsecure: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	instruments.Logger.Info("dropped below level")
	instruments.Logger.Warn("kept")
	assert.NotContains(t, logs.String(), "dropped below level")
	assert.Contains(t, logs.String(), `"service":"grubdash-test"`)
	assert.Contains(t, logs.String(), `"environment":"local"`)

	counter, err := instruments.Meter("test").Int64Counter("test.events")
	require.NoError(t, err)
	counter.Add(ctx, 3)

	rm, err := instruments.Collect(ctx)
	require.NoError(t, err)
	var total int64
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name != "test.events" {
				continue
			}
			for _, point := range m.Data.(metricdata.Sum[int64]).DataPoints {
				total += point.Value
			}
		}
	}
	assert.Equal(t, int64(3), total)
}
