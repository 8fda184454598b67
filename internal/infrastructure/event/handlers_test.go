package event

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hostel/backend/internal/domain/hostel"
	"github.com/hostel/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordedCall struct {
	name   string
	amount decimal.Decimal
}

type fakeRecorder struct {
	calls []recordedCall
}

func (r *fakeRecorder) RecordBillCreated(ctx context.Context) {
	r.calls = append(r.calls, recordedCall{name: "bill_created"})
}

func (r *fakeRecorder) RecordBillPaid(ctx context.Context, amount decimal.Decimal) {
	r.calls = append(r.calls, recordedCall{name: "bill_paid", amount: amount})
}

func (r *fakeRecorder) RecordComplaintFiled(ctx context.Context) {
	r.calls = append(r.calls, recordedCall{name: "complaint_filed"})
}

func (r *fakeRecorder) RecordComplaintResolved(ctx context.Context) {
	r.calls = append(r.calls, recordedCall{name: "complaint_resolved"})
}

func newPaidBill(t *testing.T) *hostel.Bill {
	t.Helper()
	bill, err := hostel.NewBill(uuid.New(), "March 2026", decimal.RequireFromString("4500.00"))
	require.NoError(t, err)
	require.NoError(t, bill.Pay(time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)))
	return bill
}

func TestMetricsHandler_RecordsBusinessEvents(t *testing.T) {
	rec := &fakeRecorder{}
	h := NewMetricsHandler(rec)
	ctx := context.Background()

	bill := newPaidBill(t)
	complaint, err := hostel.NewComplaint(bill.TenantID, "Leaking tap", "Bathroom tap drips all night")
	require.NoError(t, err)
	require.NoError(t, complaint.Resolve(time.Now()))

	events := []shared.DomainEvent{
		hostel.NewBillCreatedEvent(bill),
		hostel.NewBillPaidEvent(bill),
		hostel.NewComplaintFiledEvent(complaint),
		hostel.NewComplaintResolvedEvent(complaint),
		hostel.NewBillDeletedEvent(bill),
	}
	for _, e := range events {
		require.NoError(t, h.Handle(ctx, e))
	}

	require.Len(t, rec.calls, 4)
	assert.Equal(t, "bill_created", rec.calls[0].name)
	assert.Equal(t, "bill_paid", rec.calls[1].name)
	assert.True(t, rec.calls[1].amount.Equal(decimal.RequireFromString("4500")))
	assert.Equal(t, "complaint_filed", rec.calls[2].name)
	assert.Equal(t, "complaint_resolved", rec.calls[3].name)
}

func TestMetricsHandler_SubscribesThroughBus(t *testing.T) {
	rec := &fakeRecorder{}
	bus := NewInMemoryEventBus(zap.NewNop())
	bus.Subscribe(NewMetricsHandler(rec))

	bill := newPaidBill(t)
	require.NoError(t, bus.Publish(context.Background(),
		hostel.NewRoomDeletedEvent(&hostel.Room{BaseAggregateRoot: shared.NewBaseAggregateRoot(), Number: "A-101"}),
		hostel.NewBillPaidEvent(bill),
	))

	require.Len(t, rec.calls, 1)
	assert.Equal(t, "bill_paid", rec.calls[0].name)
}

func TestActivityLogHandler_LogsEventWithPayload(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := NewActivityLogHandler(NewHostelCodec(), zap.New(core))

	bill := newPaidBill(t)
	ev := hostel.NewBillPaidEvent(bill)
	actor := uuid.New()
	ev.SetActorID(actor)

	require.NoError(t, h.Handle(context.Background(), ev))
	require.Equal(t, 1, logs.Len())

	entry := logs.All()[0]
	assert.Equal(t, hostel.EventTypeBillPaid, entry.Message)
	assert.Equal(t, "activity", entry.LoggerName)
	fields := entry.ContextMap()
	assert.Equal(t, bill.ID.String(), fields["aggregate_id"])
	assert.Equal(t, hostel.AggregateTypeBill, fields["aggregate_type"])
	assert.Equal(t, actor.String(), fields["actor_id"])

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(fields["payload"].(string)), &payload))
	assert.Equal(t, "March 2026", payload["month"])
	assert.Nil(t, h.EventTypes())
}

func TestActivityLogHandler_UnregisteredEventHasNoPayload(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := NewActivityLogHandler(NewCodec(), zap.New(core))

	require.NoError(t, h.Handle(context.Background(), newStubEvent("SomethingElse")))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.NotContains(t, fields, "payload")
	assert.NotContains(t, fields, "actor_id")
}

func TestHostelCodec_BillPaidRoundTrip(t *testing.T) {
	codec := NewHostelCodec()
	assert.Len(t, codec.Types(), 13)
	assert.Contains(t, codec.Types(), hostel.EventTypeComplaintResolved)

	original := hostel.NewBillPaidEvent(newPaidBill(t))
	data, err := codec.Encode(original)
	require.NoError(t, err)

	restored, err := codec.Decode(hostel.EventTypeBillPaid, data)
	require.NoError(t, err)
	paid, ok := restored.(*hostel.BillPaidEvent)
	require.True(t, ok)
	assert.Equal(t, original.AggregateID(), paid.AggregateID())
	assert.True(t, original.Amount.Equal(paid.Amount))
	assert.True(t, original.PaidAt.Equal(paid.PaidAt))
}

func TestCodec_UnknownTypes(t *testing.T) {
	codec := NewCodec()
	Register[stubEvent](codec, "Stub")

	_, err := codec.Encode(newStubEvent("Other"))
	assert.ErrorContains(t, err, "unknown event type")

	_, err = codec.Decode("Other", []byte(`{}`))
	assert.ErrorContains(t, err, "unknown event type")

	_, err = codec.Decode("Stub", []byte(`{not json`))
	assert.ErrorContains(t, err, "failed to decode Stub")

	ev, err := codec.Decode("Stub", []byte(`{"type":"Stub","note":"hello"}`))
	require.NoError(t, err)
	assert.Equal(t, "hello", ev.(*stubEvent).Note)
}
