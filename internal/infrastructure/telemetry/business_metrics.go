package telemetry

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// HostelStats is a point-in-time snapshot of the hostel's workload.
type HostelStats struct {
	Rooms             int64
	Tenants           int64
	UnpaidBills       int64
	PendingComplaints int64
}

// StatsProvider supplies snapshots for the periodic gauges. It keeps the
// telemetry layer independent of the persistence layer.
type StatsProvider interface {
	HostelStats(ctx context.Context) (HostelStats, error)
}

// BusinessMetrics counts billing and complaint activity and samples the
// hostel's open workload.
type BusinessMetrics struct {
	logger *zap.Logger

	billsCreated       Counter
	billsPaid          Counter
	billPaymentsAmount Counter
	complaintsFiled    Counter
	complaintsResolved Counter

	rooms             Gauge
	tenants           Gauge
	unpaidBills       Gauge
	pendingComplaints Gauge

	stopCh      chan struct{}
	stopOnce    sync.Once
	collectOnce sync.Once
}

type BusinessMetricsConfig struct {
	Meter  metric.Meter
	Logger *zap.Logger
}

// NewBusinessMetrics fails with ErrNoMeter when cfg.Meter is nil.
func NewBusinessMetrics(cfg BusinessMetricsConfig) (*BusinessMetrics, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	in := NewInstruments(cfg.Meter)
	bm := &BusinessMetrics{
		logger: logger,

		billsCreated:       in.Counter("hostel_bills_created_total", "{bill}", "Bills issued"),
		billsPaid:          in.Counter("hostel_bills_paid_total", "{bill}", "Bills paid"),
		billPaymentsAmount: in.Counter("hostel_bill_payments_amount_total", "{cent}", "Amount collected in minor currency units"),
		complaintsFiled:    in.Counter("hostel_complaints_filed_total", "{complaint}", "Complaints filed"),
		complaintsResolved: in.Counter("hostel_complaints_resolved_total", "{complaint}", "Complaints resolved"),

		rooms:             in.Gauge("hostel_rooms", "{room}", "Rooms on record"),
		tenants:           in.Gauge("hostel_tenants", "{tenant}", "Registered tenants"),
		unpaidBills:       in.Gauge("hostel_bills_unpaid", "{bill}", "Bills awaiting payment"),
		pendingComplaints: in.Gauge("hostel_complaints_pending", "{complaint}", "Complaints awaiting resolution"),

		stopCh: make(chan struct{}),
	}
	if err := in.Err(); err != nil {
		return nil, err
	}
	return bm, nil
}

// RecordBillCreated counts an issued bill
func (bm *BusinessMetrics) RecordBillCreated(ctx context.Context) {
	bm.billsCreated.Inc(ctx)
}

// RecordBillPaid counts a payment and adds its amount in cents
func (bm *BusinessMetrics) RecordBillPaid(ctx context.Context, amount decimal.Decimal) {
	bm.billsPaid.Inc(ctx)
	bm.billPaymentsAmount.Add(ctx, amount.Shift(2).Round(0).IntPart())
}

// RecordComplaintFiled counts a filed complaint
func (bm *BusinessMetrics) RecordComplaintFiled(ctx context.Context) {
	bm.complaintsFiled.Inc(ctx)
}

// RecordComplaintResolved counts a resolved complaint
func (bm *BusinessMetrics) RecordComplaintResolved(ctx context.Context) {
	bm.complaintsResolved.Inc(ctx)
}

// RecordStats sets the workload gauges from a snapshot
func (bm *BusinessMetrics) RecordStats(ctx context.Context, s HostelStats) {
	bm.rooms.Set(ctx, s.Rooms)
	bm.tenants.Set(ctx, s.Tenants)
	bm.unpaidBills.Set(ctx, s.UnpaidBills)
	bm.pendingComplaints.Set(ctx, s.PendingComplaints)
}

// StartPeriodicCollection samples provider every interval (default five
// minutes) until Stop or ctx is done. Only the first call has an effect.
func (bm *BusinessMetrics) StartPeriodicCollection(ctx context.Context, provider StatsProvider, interval time.Duration) {
	bm.collectOnce.Do(func() {
		if interval <= 0 {
			interval = 5 * time.Minute
		}
		go bm.runPeriodicCollection(ctx, provider, interval)
	})
}

func (bm *BusinessMetrics) runPeriodicCollection(ctx context.Context, provider StatsProvider, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	bm.collect(ctx, provider)
	for {
		select {
		case <-bm.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			bm.collect(ctx, provider)
		}
	}
}

func (bm *BusinessMetrics) collect(ctx context.Context, provider StatsProvider) {
	stats, err := provider.HostelStats(ctx)
	if err != nil {
		bm.logger.Warn("Failed to collect hostel stats", zap.Error(err))
		return
	}
	bm.RecordStats(ctx, stats)
}

// Stop ends periodic collection
func (bm *BusinessMetrics) Stop() {
	bm.stopOnce.Do(func() { close(bm.stopCh) })
}
