package hostel

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hostel/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTenant(t *testing.T) {
	userID := uuid.New()
	joined := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)

	tenant, err := NewTenant(userID, joined)

	require.NoError(t, err)
	assert.Equal(t, userID, tenant.UserID)
	assert.Nil(t, tenant.RoomID)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), tenant.JoinDate)
	assert.True(t, tenant.OwnedBy(userID))
	assert.False(t, tenant.OwnedBy(uuid.New()))
	assert.False(t, tenant.OwnedBy(uuid.Nil))

	_, err = NewTenant(uuid.Nil, joined)
	assert.True(t, errors.Is(err, shared.ErrValidation))
}

func TestTenant_AssignRoom(t *testing.T) {
	room, err := NewRoom("101", 2, decimal.NewFromInt(500))
	require.NoError(t, err)

	t.Run("assigns when room has space", func(t *testing.T) {
		tenant, err := NewTenant(uuid.New(), time.Now())
		require.NoError(t, err)
		tenant.ClearEvents()

		require.NoError(t, tenant.AssignRoom(room, 1))

		require.NotNil(t, tenant.RoomID)
		assert.Equal(t, room.ID, *tenant.RoomID)
		events := tenant.PendingEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeTenantRoomAssigned, events[0].EventType())
	})

	t.Run("rejects full room", func(t *testing.T) {
		tenant, err := NewTenant(uuid.New(), time.Now())
		require.NoError(t, err)

		err = tenant.AssignRoom(room, 2)

		assert.True(t, errors.Is(err, shared.ErrConflict))
		assert.Nil(t, tenant.RoomID)
	})

	t.Run("reassigning to the same room is a no-op", func(t *testing.T) {
		tenant, err := NewTenant(uuid.New(), time.Now())
		require.NoError(t, err)
		require.NoError(t, tenant.AssignRoom(room, 0))
		version := tenant.Version

		require.NoError(t, tenant.AssignRoom(room, 2))
		assert.Equal(t, version, tenant.Version)
	})

	t.Run("unassign clears the room", func(t *testing.T) {
		tenant, err := NewTenant(uuid.New(), time.Now())
		require.NoError(t, err)
		require.NoError(t, tenant.AssignRoom(room, 0))

		tenant.Unassign()
		assert.False(t, tenant.HasRoom())
	})
}

func TestTenant_UpdateContact(t *testing.T) {
	tenant, err := NewTenant(uuid.New(), time.Now())
	require.NoError(t, err)

	require.NoError(t, tenant.UpdateContact(" 555-0100 ", " 1 Main St "))
	assert.Equal(t, "555-0100", tenant.Phone)
	assert.Equal(t, "1 Main St", tenant.Address)

	err = tenant.UpdateContact("0123456789012345", "")
	assert.True(t, errors.Is(err, shared.ErrValidation))
	assert.Equal(t, "555-0100", tenant.Phone)
}
