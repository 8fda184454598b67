package hostel

import (
	"context"

	"github.com/hostel/backend/internal/domain/identity"
	"github.com/hostel/backend/internal/domain/shared"
	"go.uber.org/zap"
)

type eventSource interface {
	PendingEvents() []shared.DomainEvent
	ClearEvents()
}

// pendingEvents collects events raised inside a transaction so they can be
// published only after it commits.
type pendingEvents struct {
	actor  identity.Identity
	events []shared.DomainEvent
}

func newPendingEvents(actor identity.Identity) *pendingEvents {
	return &pendingEvents{actor: actor}
}

func (p *pendingEvents) collect(sources ...eventSource) {
	for _, src := range sources {
		p.add(src.PendingEvents()...)
		src.ClearEvents()
	}
}

func (p *pendingEvents) add(events ...shared.DomainEvent) {
	for _, e := range events {
		e.SetActorID(p.actor.UserID)
		p.events = append(p.events, e)
	}
}

// publisher wraps an optional event publisher. Publishing errors are logged
// and never fail the operation, which has already committed.
type publisher struct {
	bus    shared.EventPublisher
	logger *zap.Logger
}

func (p publisher) publish(ctx context.Context, pending *pendingEvents) {
	if p.bus == nil || len(pending.events) == 0 {
		return
	}
	if err := p.bus.Publish(ctx, pending.events...); err != nil {
		p.logger.Warn("Failed to publish domain events",
			zap.Int("count", len(pending.events)),
			zap.Error(err))
	}
}
