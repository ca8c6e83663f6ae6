package observability

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/adapters/memory"
	"github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/application"
	"github.com/Apurer/go-gin-grubdash-api/internal/shared/ids"
	"github.com/Apurer/go-gin-grubdash-api/internal/shared/payload"
)

func counterTotals(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	totals := map[string]int64{}
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, point := range sum.DataPoints {
				totals[m.Name] += point.Value
			}
		}
	}
	return totals
}

func TestService_RecordsLifecycleMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	meter := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)).Meter("test")
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	core := application.NewService(memory.NewRepository(), application.WithIDGenerator(ids.Sequence("o")))
	svc := New(core, WithLogger(logger), WithMeter(meter))
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, payload.Data{
		"deliverTo": "A", "mobileNumber": "1",
		"dishes": []any{map[string]any{"quantity": float64(1)}},
	})
	require.NoError(t, err)

	_, err = svc.UpdateOrder(ctx, order.ID, payload.Data{
		"deliverTo": "A", "mobileNumber": "1", "status": "pending",
		"dishes": []any{map[string]any{"quantity": float64(1)}},
	})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteOrder(ctx, order.ID))

	err = svc.DeleteOrder(ctx, order.ID)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "status=404")

	totals := counterTotals(t, reader)
	assert.Equal(t, int64(1), totals["orders.service.created"])
	assert.Equal(t, int64(1), totals["orders.service.status_changed"])
	assert.Equal(t, int64(1), totals["orders.service.deleted"])
}
