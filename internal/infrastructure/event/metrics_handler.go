package event

import (
	"context"

	"github.com/hostel/backend/internal/domain/hostel"
	"github.com/hostel/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// BusinessRecorder receives billing and complaint activity.
// telemetry.BusinessMetrics implements it.
type BusinessRecorder interface {
	RecordBillCreated(ctx context.Context)
	RecordBillPaid(ctx context.Context, amount decimal.Decimal)
	RecordComplaintFiled(ctx context.Context)
	RecordComplaintResolved(ctx context.Context)
}

// MetricsHandler turns committed hostel events into business counters.
type MetricsHandler struct {
	recorder BusinessRecorder
}

// NewMetricsHandler creates a new MetricsHandler
func NewMetricsHandler(recorder BusinessRecorder) *MetricsHandler {
	return &MetricsHandler{recorder: recorder}
}

// Handle records the event
func (h *MetricsHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *hostel.BillCreatedEvent:
		h.recorder.RecordBillCreated(ctx)
	case *hostel.BillPaidEvent:
		h.recorder.RecordBillPaid(ctx, e.Amount)
	case *hostel.ComplaintFiledEvent:
		h.recorder.RecordComplaintFiled(ctx)
	case *hostel.ComplaintResolvedEvent:
		h.recorder.RecordComplaintResolved(ctx)
	}
	return nil
}

// EventTypes returns the events that move a counter
func (h *MetricsHandler) EventTypes() []string {
	return []string{
		hostel.EventTypeBillCreated,
		hostel.EventTypeBillPaid,
		hostel.EventTypeComplaintFiled,
		hostel.EventTypeComplaintResolved,
	}
}

var _ shared.EventHandler = (*MetricsHandler)(nil)
