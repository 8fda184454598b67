package hostel

import (
	"time"

	"github.com/google/uuid"
	"github.com/hostel/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constants
const (
	AggregateTypeRoom      = "Room"
	AggregateTypeTenant    = "Tenant"
	AggregateTypeBill      = "Bill"
	AggregateTypeComplaint = "Complaint"
)

// Hostel domain event types
const (
	EventTypeRoomCreated        = "RoomCreated"
	EventTypeRoomUpdated        = "RoomUpdated"
	EventTypeRoomDeleted        = "RoomDeleted"
	EventTypeTenantRegistered   = "TenantRegistered"
	EventTypeTenantRoomAssigned = "TenantRoomAssigned"
	EventTypeBillCreated        = "BillCreated"
	EventTypeBillPaid           = "BillPaid"
	EventTypeBillDeleted        = "BillDeleted"
	EventTypeComplaintFiled     = "ComplaintFiled"
	EventTypeComplaintResolved  = "ComplaintResolved"
)

// RoomCreatedEvent is published when a room is created
type RoomCreatedEvent struct {
	shared.BaseDomainEvent
	Number   string `json:"number"`
	Capacity int    `json:"capacity"`
}

// NewRoomCreatedEvent creates a new RoomCreatedEvent
func NewRoomCreatedEvent(room *Room) *RoomCreatedEvent {
	return &RoomCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeRoomCreated, AggregateTypeRoom, room.ID, uuid.Nil),
		Number:          room.Number,
		Capacity:        room.Capacity,
	}
}

// RoomUpdatedEvent is published when a room is edited
type RoomUpdatedEvent struct {
	shared.BaseDomainEvent
	Number   string          `json:"number"`
	Capacity int             `json:"capacity"`
	Rent     decimal.Decimal `json:"rent"`
}

// NewRoomUpdatedEvent creates a new RoomUpdatedEvent
func NewRoomUpdatedEvent(room *Room) *RoomUpdatedEvent {
	return &RoomUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeRoomUpdated, AggregateTypeRoom, room.ID, uuid.Nil),
		Number:          room.Number,
		Capacity:        room.Capacity,
		Rent:            room.Rent,
	}
}

// RoomDeletedEvent is published when a room is removed
type RoomDeletedEvent struct {
	shared.BaseDomainEvent
	Number string `json:"number"`
}

// NewRoomDeletedEvent creates a new RoomDeletedEvent
func NewRoomDeletedEvent(room *Room) *RoomDeletedEvent {
	return &RoomDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeRoomDeleted, AggregateTypeRoom, room.ID, uuid.Nil),
		Number:          room.Number,
	}
}

// TenantRegisteredEvent is published when a tenant profile is created
type TenantRegisteredEvent struct {
	shared.BaseDomainEvent
	UserID uuid.UUID `json:"user_id"`
}

// NewTenantRegisteredEvent creates a new TenantRegisteredEvent
func NewTenantRegisteredEvent(tenant *Tenant) *TenantRegisteredEvent {
	return &TenantRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTenantRegistered, AggregateTypeTenant, tenant.ID, tenant.UserID),
		UserID:          tenant.UserID,
	}
}

// TenantRoomAssignedEvent is published when a tenant moves in, out, or between rooms
type TenantRoomAssignedEvent struct {
	shared.BaseDomainEvent
	PreviousRoomID *uuid.UUID `json:"previous_room_id,omitempty"`
	RoomID         *uuid.UUID `json:"room_id,omitempty"`
}

// NewTenantRoomAssignedEvent creates a new TenantRoomAssignedEvent
func NewTenantRoomAssignedEvent(tenant *Tenant, previous *uuid.UUID) *TenantRoomAssignedEvent {
	return &TenantRoomAssignedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTenantRoomAssigned, AggregateTypeTenant, tenant.ID, uuid.Nil),
		PreviousRoomID:  previous,
		RoomID:          tenant.RoomID,
	}
}

// BillCreatedEvent is published when a bill is issued
type BillCreatedEvent struct {
	shared.BaseDomainEvent
	TenantID uuid.UUID       `json:"tenant_id"`
	Month    string          `json:"month"`
	Amount   decimal.Decimal `json:"amount"`
}

// NewBillCreatedEvent creates a new BillCreatedEvent
func NewBillCreatedEvent(bill *Bill) *BillCreatedEvent {
	return &BillCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBillCreated, AggregateTypeBill, bill.ID, uuid.Nil),
		TenantID:        bill.TenantID,
		Month:           bill.Month,
		Amount:          bill.Amount,
	}
}

// BillPaidEvent is published when a bill is settled
type BillPaidEvent struct {
	shared.BaseDomainEvent
	TenantID uuid.UUID       `json:"tenant_id"`
	Month    string          `json:"month"`
	Amount   decimal.Decimal `json:"amount"`
	PaidAt   time.Time       `json:"paid_at"`
}

// NewBillPaidEvent creates a new BillPaidEvent
func NewBillPaidEvent(bill *Bill) *BillPaidEvent {
	paidAt := bill.UpdatedAt
	if bill.PaidAt != nil {
		paidAt = *bill.PaidAt
	}
	return &BillPaidEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBillPaid, AggregateTypeBill, bill.ID, uuid.Nil),
		TenantID:        bill.TenantID,
		Month:           bill.Month,
		Amount:          bill.Amount,
		PaidAt:          paidAt,
	}
}

// BillDeletedEvent is published when a bill is removed
type BillDeletedEvent struct {
	shared.BaseDomainEvent
	TenantID uuid.UUID `json:"tenant_id"`
	Month    string    `json:"month"`
}

// NewBillDeletedEvent creates a new BillDeletedEvent
func NewBillDeletedEvent(bill *Bill) *BillDeletedEvent {
	return &BillDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBillDeleted, AggregateTypeBill, bill.ID, uuid.Nil),
		TenantID:        bill.TenantID,
		Month:           bill.Month,
	}
}

// ComplaintFiledEvent is published when a tenant files a complaint
type ComplaintFiledEvent struct {
	shared.BaseDomainEvent
	TenantID uuid.UUID `json:"tenant_id"`
	Subject  string    `json:"subject"`
}

// NewComplaintFiledEvent creates a new ComplaintFiledEvent
func NewComplaintFiledEvent(c *Complaint) *ComplaintFiledEvent {
	return &ComplaintFiledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeComplaintFiled, AggregateTypeComplaint, c.ID, uuid.Nil),
		TenantID:        c.TenantID,
		Subject:         c.Subject,
	}
}

// ComplaintResolvedEvent is published when a complaint is resolved
type ComplaintResolvedEvent struct {
	shared.BaseDomainEvent
	TenantID   uuid.UUID `json:"tenant_id"`
	ResolvedAt time.Time `json:"resolved_at"`
}

// NewComplaintResolvedEvent creates a new ComplaintResolvedEvent
func NewComplaintResolvedEvent(c *Complaint) *ComplaintResolvedEvent {
	resolvedAt := c.UpdatedAt
	if c.ResolvedAt != nil {
		resolvedAt = *c.ResolvedAt
	}
	return &ComplaintResolvedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeComplaintResolved, AggregateTypeComplaint, c.ID, uuid.Nil),
		TenantID:        c.TenantID,
		ResolvedAt:      resolvedAt,
	}
}
