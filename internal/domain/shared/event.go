package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DomainEvent is a fact raised by an aggregate and published after the
// transaction that produced it commits.
type DomainEvent interface {
	EventID() uuid.UUID
	EventType() string
	OccurredAt() time.Time
	AggregateID() uuid.UUID
	AggregateType() string
	// ActorID is uuid.Nil for system actions.
	ActorID() uuid.UUID
	SetActorID(id uuid.UUID)
}

// BaseDomainEvent is embedded by every concrete event.
type BaseDomainEvent struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	AggID     uuid.UUID `json:"aggregate_id"`
	AggType   string    `json:"aggregate_type"`
	Actor     uuid.UUID `json:"actor_id"`
}

func NewBaseDomainEvent(eventType, aggType string, aggID, actorID uuid.UUID) BaseDomainEvent {
	return BaseDomainEvent{
		ID:        uuid.New(),
		Type:      eventType,
		Timestamp: time.Now(),
		AggID:     aggID,
		AggType:   aggType,
		Actor:     actorID,
	}
}

func (e *BaseDomainEvent) EventID() uuid.UUID      { return e.ID }
func (e *BaseDomainEvent) EventType() string       { return e.Type }
func (e *BaseDomainEvent) OccurredAt() time.Time   { return e.Timestamp }
func (e *BaseDomainEvent) AggregateID() uuid.UUID  { return e.AggID }
func (e *BaseDomainEvent) AggregateType() string   { return e.AggType }
func (e *BaseDomainEvent) ActorID() uuid.UUID      { return e.Actor }
func (e *BaseDomainEvent) SetActorID(id uuid.UUID) { e.Actor = id }

// EventHandler reacts to published events.
type EventHandler interface {
	Handle(ctx context.Context, event DomainEvent) error
	// EventTypes lists the types to receive; empty means all.
	EventTypes() []string
}

// EventPublisher delivers committed events.
type EventPublisher interface {
	Publish(ctx context.Context, events ...DomainEvent) error
}

// EventBus is a publisher handlers can subscribe to.
type EventBus interface {
	EventPublisher
	// Subscribe uses the handler's own EventTypes when none are given.
	Subscribe(handler EventHandler, eventTypes ...string)
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}
