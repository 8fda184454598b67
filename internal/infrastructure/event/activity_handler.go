package event

import (
	"context"

	"github.com/google/uuid"
	"github.com/hostel/backend/internal/domain/shared"
	"github.com/hostel/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// ActivityLogHandler writes one structured log line per domain event. It
// subscribes to every event type.
type ActivityLogHandler struct {
	codec  *Codec
	logger *zap.Logger
}

// NewActivityLogHandler creates an activity log handler. Events whose type is
// unknown to the codec are still logged, without a payload.
func NewActivityLogHandler(codec *Codec, log *zap.Logger) *ActivityLogHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ActivityLogHandler{
		codec:  codec,
		logger: log.Named("activity"),
	}
}

// Handle logs the event with its payload
func (h *ActivityLogHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	fields := []zap.Field{
		zap.String("event_id", event.EventID().String()),
		zap.String("event_type", event.EventType()),
		zap.String("aggregate_type", event.AggregateType()),
		zap.String("aggregate_id", event.AggregateID().String()),
		zap.Time("occurred_at", event.OccurredAt()),
	}
	if actor := event.ActorID(); actor != uuid.Nil {
		fields = append(fields, zap.String("actor_id", actor.String()))
	}

	if h.codec != nil && h.codec.Knows(event.EventType()) {
		payload, err := h.codec.Encode(event)
		if err != nil {
			return err
		}
		fields = append(fields, zap.ByteString("payload", payload))
	}

	logger.Correlate(ctx, h.logger).Info(event.EventType(), fields...)
	return nil
}

// EventTypes returns nil, subscribing to all events
func (h *ActivityLogHandler) EventTypes() []string {
	return nil
}

var _ shared.EventHandler = (*ActivityLogHandler)(nil)
