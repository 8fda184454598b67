package telemetry_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hostel/backend/internal/infrastructure/telemetry"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"
)

func newManualMeter(t *testing.T) (*sdkmetric.ManualReader, *sdkmetric.MeterProvider) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })
	return reader, provider
}

// sumOf returns the int64 sum recorded for a counter, or -1 if absent
func sumOf(t *testing.T, reader *sdkmetric.ManualReader, name string) int64 {
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				var total int64
				for _, dp := range data.DataPoints {
					total += dp.Value
				}
				return total
			case metricdata.Gauge[int64]:
				require.NotEmpty(t, data.DataPoints)
				return data.DataPoints[0].Value
			}
		}
	}
	return -1
}

func TestNewBusinessMetrics_NilMeter(t *testing.T) {
	bm, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{Logger: zap.NewNop()})

	assert.Nil(t, bm)
	assert.ErrorIs(t, err, telemetry.ErrNoMeter)
}

func TestNewBusinessMetrics_NoopMeter(t *testing.T) {
	bm, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{
		Meter: noop.NewMeterProvider().Meter("test"),
	})
	require.NoError(t, err)

	ctx := context.Background()
	bm.RecordBillCreated(ctx)
	bm.RecordBillPaid(ctx, decimal.NewFromInt(10))
	bm.RecordComplaintFiled(ctx)
	bm.RecordComplaintResolved(ctx)
}

func TestBusinessMetrics_RecordBillPaid(t *testing.T) {
	reader, provider := newManualMeter(t)
	bm, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{Meter: provider.Meter("test")})
	require.NoError(t, err)

	ctx := context.Background()
	bm.RecordBillPaid(ctx, decimal.RequireFromString("1500.50"))
	bm.RecordBillPaid(ctx, decimal.RequireFromString("0.25"))

	assert.Equal(t, int64(2), sumOf(t, reader, "hostel_bills_paid_total"))
	assert.Equal(t, int64(150075), sumOf(t, reader, "hostel_bill_payments_amount_total"))
}

func TestBusinessMetrics_ComplaintCounters(t *testing.T) {
	reader, provider := newManualMeter(t)
	bm, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{Meter: provider.Meter("test")})
	require.NoError(t, err)

	ctx := context.Background()
	bm.RecordComplaintFiled(ctx)
	bm.RecordComplaintFiled(ctx)
	bm.RecordComplaintResolved(ctx)

	assert.Equal(t, int64(2), sumOf(t, reader, "hostel_complaints_filed_total"))
	assert.Equal(t, int64(1), sumOf(t, reader, "hostel_complaints_resolved_total"))
}

type stubStatsProvider struct {
	calls atomic.Int32
	stats telemetry.HostelStats
	err   error
}

func (p *stubStatsProvider) HostelStats(ctx context.Context) (telemetry.HostelStats, error) {
	p.calls.Add(1)
	return p.stats, p.err
}

func TestBusinessMetrics_PeriodicCollection(t *testing.T) {
	reader, provider := newManualMeter(t)
	bm, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{Meter: provider.Meter("test")})
	require.NoError(t, err)
	defer bm.Stop()

	stats := &stubStatsProvider{stats: telemetry.HostelStats{Rooms: 4, Tenants: 7, UnpaidBills: 3, PendingComplaints: 1}}
	bm.StartPeriodicCollection(context.Background(), stats, time.Hour)

	require.Eventually(t, func() bool { return sumOf(t, reader, "hostel_bills_unpaid") == 3 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, int64(7), sumOf(t, reader, "hostel_tenants"))

	// a second start is ignored
	bm.StartPeriodicCollection(context.Background(), stats, time.Hour)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(1), stats.calls.Load())
}

func TestBusinessMetrics_CollectionErrorKeepsRunning(t *testing.T) {
	_, provider := newManualMeter(t)
	bm, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{Meter: provider.Meter("test")})
	require.NoError(t, err)

	stats := &stubStatsProvider{err: errors.New("database unavailable")}
	bm.StartPeriodicCollection(context.Background(), stats, 10*time.Millisecond)

	require.Eventually(t, func() bool { return stats.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	bm.Stop()
	bm.Stop()
}
