package hostel

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/hostel/backend/internal/domain/shared"
)

// MaxPhoneLength is the longest accepted phone number
const MaxPhoneLength = 15

// Tenant is a resident. Each user account has at most one tenant record,
// and a tenant lives in at most one room.
type Tenant struct {
	shared.BaseAggregateRoot
	UserID   uuid.UUID
	RoomID   *uuid.UUID
	JoinDate time.Time
	Phone    string
	Address  string
}

// NewTenant creates the tenant profile for a user
func NewTenant(userID uuid.UUID, joinDate time.Time) (*Tenant, error) {
	if userID == uuid.Nil {
		return nil, shared.NewValidationError("INVALID_USER_ID", "User ID cannot be empty")
	}
	if joinDate.IsZero() {
		joinDate = time.Now()
	}

	tenant := &Tenant{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		JoinDate:          truncateToDay(joinDate),
	}
	tenant.Raise(NewTenantRegisteredEvent(tenant))

	return tenant, nil
}

// OwnedBy reports whether the tenant belongs to the given user
func (t *Tenant) OwnedBy(userID uuid.UUID) bool {
	return userID != uuid.Nil && t.UserID == userID
}

// HasRoom reports whether the tenant is assigned to a room
func (t *Tenant) HasRoom() bool {
	return t.RoomID != nil
}

// AssignRoom moves the tenant into room. occupancy is the number of
// tenants currently in that room.
func (t *Tenant) AssignRoom(room *Room, occupancy int64) error {
	if t.RoomID != nil && *t.RoomID == room.ID {
		return nil
	}
	if !room.HasSpaceFor(occupancy) {
		return shared.NewConflictError("ROOM_FULL", "Room %s is full", room.Number)
	}

	previous := t.RoomID
	roomID := room.ID
	t.RoomID = &roomID
	t.MarkChanged()
	t.Raise(NewTenantRoomAssignedEvent(t, previous))

	return nil
}

// Unassign removes the tenant from its room
func (t *Tenant) Unassign() {
	if t.RoomID == nil {
		return
	}

	previous := t.RoomID
	t.RoomID = nil
	t.MarkChanged()
	t.Raise(NewTenantRoomAssignedEvent(t, previous))
}

// UpdateContact sets phone and address
func (t *Tenant) UpdateContact(phone, address string) error {
	phone = strings.TrimSpace(phone)
	if utf8.RuneCountInString(phone) > MaxPhoneLength {
		return shared.NewValidationError("INVALID_PHONE", "Phone cannot exceed %d characters", MaxPhoneLength)
	}

	t.Phone = phone
	t.Address = strings.TrimSpace(address)
	t.MarkChanged()

	return nil
}

func truncateToDay(ts time.Time) time.Time {
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, ts.Location())
}
