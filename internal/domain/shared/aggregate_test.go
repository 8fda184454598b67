package shared

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewBaseAggregateRoot(t *testing.T) {
	a := NewBaseAggregateRoot()

	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.Equal(t, 1, a.Version)
	assert.Equal(t, a.CreatedAt, a.UpdatedAt)
	assert.Empty(t, a.PendingEvents())
	assert.NotEqual(t, a.ID, NewBaseAggregateRoot().ID)
}

func TestBaseAggregateRoot_MarkChanged(t *testing.T) {
	a := NewBaseAggregateRoot()
	at := a.CreatedAt.Add(time.Hour)

	a.MarkChangedAt(at)
	assert.Equal(t, 2, a.Version)
	assert.Equal(t, at, a.UpdatedAt)

	a.MarkChanged()
	assert.Equal(t, 3, a.Version)
	assert.True(t, a.UpdatedAt.After(a.CreatedAt))
}

func TestBaseAggregateRoot_Events(t *testing.T) {
	a := NewBaseAggregateRoot()
	first := NewBaseDomainEvent("RoomCreated", "Room", a.ID, uuid.Nil)
	second := NewBaseDomainEvent("RoomUpdated", "Room", a.ID, uuid.Nil)

	a.Raise(&first)
	a.Raise(&second)
	events := a.PendingEvents()
	if assert.Len(t, events, 2) {
		assert.Equal(t, "RoomCreated", events[0].EventType())
		assert.Equal(t, "RoomUpdated", events[1].EventType())
	}

	a.ClearEvents()
	assert.Empty(t, a.PendingEvents())
}
