package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/hostel/backend/internal/domain/hostel"
	"github.com/shopspring/decimal"
)

// RoomModel is the persistence model for the Room domain entity.
type RoomModel struct {
	AggregateModel
	RoomNumber string          `gorm:"type:varchar(10);not null;uniqueIndex"`
	Capacity   int             `gorm:"not null"`
	Rent       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (RoomModel) TableName() string {
	return "rooms"
}

// ToDomain converts the persistence model to a domain Room entity.
func (m *RoomModel) ToDomain() *hostel.Room {
	return &hostel.Room{
		BaseAggregateRoot: m.aggregate(),
		Number:            m.RoomNumber,
		Capacity:          m.Capacity,
		Rent:              m.Rent,
	}
}

// FromDomain populates the persistence model from a domain Room entity.
func (m *RoomModel) FromDomain(r *hostel.Room) {
	m.setAggregate(r.BaseAggregateRoot)
	m.RoomNumber = r.Number
	m.Capacity = r.Capacity
	m.Rent = r.Rent
}

// RoomModelFromDomain creates a new persistence model from a domain Room entity.
func RoomModelFromDomain(r *hostel.Room) *RoomModel {
	m := &RoomModel{}
	m.FromDomain(r)
	return m
}

// TenantModel is the persistence model for the Tenant domain entity.
type TenantModel struct {
	AggregateModel
	UserID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	RoomID   *uuid.UUID `gorm:"type:uuid;index"`
	JoinDate time.Time  `gorm:"type:date;not null"`
	Phone    string     `gorm:"type:varchar(15)"`
	Address  string     `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (TenantModel) TableName() string {
	return "tenants"
}

// ToDomain converts the persistence model to a domain Tenant entity.
func (m *TenantModel) ToDomain() *hostel.Tenant {
	return &hostel.Tenant{
		BaseAggregateRoot: m.aggregate(),
		UserID:            m.UserID,
		RoomID:            m.RoomID,
		JoinDate:          m.JoinDate,
		Phone:             m.Phone,
		Address:           m.Address,
	}
}

// FromDomain populates the persistence model from a domain Tenant entity.
func (m *TenantModel) FromDomain(t *hostel.Tenant) {
	m.setAggregate(t.BaseAggregateRoot)
	m.UserID = t.UserID
	m.RoomID = t.RoomID
	m.JoinDate = t.JoinDate
	m.Phone = t.Phone
	m.Address = t.Address
}

// TenantModelFromDomain creates a new persistence model from a domain Tenant entity.
func TenantModelFromDomain(t *hostel.Tenant) *TenantModel {
	m := &TenantModel{}
	m.FromDomain(t)
	return m
}

// BillModel is the persistence model for the Bill domain entity.
type BillModel struct {
	AggregateModel
	TenantID uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_bills_tenant_month,priority:1"`
	Month    string            `gorm:"type:varchar(20);not null;uniqueIndex:idx_bills_tenant_month,priority:2"`
	Amount   decimal.Decimal   `gorm:"type:decimal(12,2);not null"`
	Status   hostel.BillStatus `gorm:"type:varchar(10);not null;default:'Unpaid';index"`
	PaidAt   *time.Time
}

// TableName returns the table name for GORM
func (BillModel) TableName() string {
	return "bills"
}

// ToDomain converts the persistence model to a domain Bill entity.
func (m *BillModel) ToDomain() *hostel.Bill {
	return &hostel.Bill{
		BaseAggregateRoot: m.aggregate(),
		TenantID:          m.TenantID,
		Month:             m.Month,
		Amount:            m.Amount,
		Status:            m.Status,
		PaidAt:            m.PaidAt,
	}
}

// FromDomain populates the persistence model from a domain Bill entity.
func (m *BillModel) FromDomain(b *hostel.Bill) {
	m.setAggregate(b.BaseAggregateRoot)
	m.TenantID = b.TenantID
	m.Month = b.Month
	m.Amount = b.Amount
	m.Status = b.Status
	m.PaidAt = b.PaidAt
}

// BillModelFromDomain creates a new persistence model from a domain Bill entity.
func BillModelFromDomain(b *hostel.Bill) *BillModel {
	m := &BillModel{}
	m.FromDomain(b)
	return m
}

// ComplaintModel is the persistence model for the Complaint domain entity.
type ComplaintModel struct {
	AggregateModel
	TenantID   uuid.UUID              `gorm:"type:uuid;not null;index"`
	Subject    string                 `gorm:"type:varchar(200);not null"`
	Message    string                 `gorm:"type:text;not null"`
	Status     hostel.ComplaintStatus `gorm:"type:varchar(10);not null;default:'Pending';index"`
	ResolvedAt *time.Time
}

// TableName returns the table name for GORM
func (ComplaintModel) TableName() string {
	return "complaints"
}

// ToDomain converts the persistence model to a domain Complaint entity.
func (m *ComplaintModel) ToDomain() *hostel.Complaint {
	return &hostel.Complaint{
		BaseAggregateRoot: m.aggregate(),
		TenantID:          m.TenantID,
		Subject:           m.Subject,
		Message:           m.Message,
		Status:            m.Status,
		ResolvedAt:        m.ResolvedAt,
	}
}

// FromDomain populates the persistence model from a domain Complaint entity.
func (m *ComplaintModel) FromDomain(c *hostel.Complaint) {
	m.setAggregate(c.BaseAggregateRoot)
	m.TenantID = c.TenantID
	m.Subject = c.Subject
	m.Message = c.Message
	m.Status = c.Status
	m.ResolvedAt = c.ResolvedAt
}

// ComplaintModelFromDomain creates a new persistence model from a domain Complaint entity.
func ComplaintModelFromDomain(c *hostel.Complaint) *ComplaintModel {
	m := &ComplaintModel{}
	m.FromDomain(c)
	return m
}

// AllModels lists every model in dependency order, for AutoMigrate in tests
// and local SQLite databases.
func AllModels() []any {
	return []any{
		&UserModel{},
		&RoomModel{},
		&TenantModel{},
		&BillModel{},
		&ComplaintModel{},
	}
}
