package shared

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity carries the identity and timestamps every stored record has
type BaseEntity struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BaseAggregateRoot is embedded by the aggregates a service loads and saves
// as a unit (users, rooms, tenants, bills, complaints). Version is used for
// optimistic locking; events raised by domain methods stay pending until the
// service collects them after commit.
type BaseAggregateRoot struct {
	BaseEntity
	Version int
	pending []DomainEvent
}

// NewBaseAggregateRoot returns a fresh aggregate at version 1
func NewBaseAggregateRoot() BaseAggregateRoot {
	now := time.Now()
	return BaseAggregateRoot{
		BaseEntity: BaseEntity{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Version:    1,
	}
}

// MarkChanged records a state change made now
func (a *BaseAggregateRoot) MarkChanged() {
	a.MarkChangedAt(time.Now())
}

// MarkChangedAt records a state change made at t
func (a *BaseAggregateRoot) MarkChangedAt(t time.Time) {
	a.UpdatedAt = t
	a.Version++
}

// Raise queues an event for publication
func (a *BaseAggregateRoot) Raise(event DomainEvent) {
	a.pending = append(a.pending, event)
}

// PendingEvents returns the events raised since the last ClearEvents
func (a *BaseAggregateRoot) PendingEvents() []DomainEvent {
	return a.pending
}

// ClearEvents drops the pending events
func (a *BaseAggregateRoot) ClearEvents() {
	a.pending = nil
}
