package hostel

import (
	"context"

	"github.com/google/uuid"
	"github.com/hostel/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// RoomRepository defines the interface for room persistence
type RoomRepository interface {
	Create(ctx context.Context, room *Room) error
	Update(ctx context.Context, room *Room) error
	Delete(ctx context.Context, id uuid.UUID) error

	FindByID(ctx context.Context, id uuid.UUID) (*Room, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*Room, error)

	// FindByIDForUpdate loads the room and holds a row lock until the
	// surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Room, error)

	// ExistsByNumber checks for another room with the given number.
	// excludeID skips the room being edited.
	ExistsByNumber(ctx context.Context, number string, excludeID *uuid.UUID) (bool, error)

	FindAll(ctx context.Context, filter RoomFilter) ([]*Room, int64, error)
	Count(ctx context.Context) (int64, error)
}

// TenantRepository defines the interface for tenant persistence
type TenantRepository interface {
	Create(ctx context.Context, tenant *Tenant) error
	Update(ctx context.Context, tenant *Tenant) error

	FindByID(ctx context.Context, id uuid.UUID) (*Tenant, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*Tenant, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Tenant, error)
	ExistsByUserID(ctx context.Context, userID uuid.UUID) (bool, error)

	FindAll(ctx context.Context, filter TenantFilter) ([]*Tenant, int64, error)
	FindRecent(ctx context.Context, limit int) ([]*Tenant, error)

	// CountByRoom returns the number of tenants assigned to a room
	CountByRoom(ctx context.Context, roomID uuid.UUID) (int64, error)
	// CountByRooms returns occupancy per room; rooms without tenants are absent
	CountByRooms(ctx context.Context, roomIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	Count(ctx context.Context) (int64, error)
}

// BillRepository defines the interface for bill persistence
type BillRepository interface {
	Create(ctx context.Context, bill *Bill) error
	Update(ctx context.Context, bill *Bill) error
	Delete(ctx context.Context, id uuid.UUID) error

	FindByID(ctx context.Context, id uuid.UUID) (*Bill, error)
	FindAll(ctx context.Context, filter BillFilter) ([]*Bill, int64, error)
	FindRecent(ctx context.Context, limit int) ([]*Bill, error)

	// ExistsForMonth checks for another bill of the tenant in the same period
	ExistsForMonth(ctx context.Context, tenantID uuid.UUID, month string, excludeID *uuid.UUID) (bool, error)

	// MarkPaid persists the Unpaid -> Paid transition with a conditional
	// update. It returns false when the stored bill was no longer unpaid.
	MarkPaid(ctx context.Context, bill *Bill) (bool, error)

	CountByStatus(ctx context.Context, status BillStatus) (int64, error)
	SumByTenant(ctx context.Context, tenantID uuid.UUID) (BillTotals, error)
}

// ComplaintRepository defines the interface for complaint persistence
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *Complaint) error

	FindByID(ctx context.Context, id uuid.UUID) (*Complaint, error)
	FindAll(ctx context.Context, filter ComplaintFilter) ([]*Complaint, int64, error)
	FindRecent(ctx context.Context, limit int) ([]*Complaint, error)

	// MarkResolved persists the Pending -> Resolved transition with a
	// conditional update. It returns false when it was already resolved.
	MarkResolved(ctx context.Context, complaint *Complaint) (bool, error)

	CountByStatus(ctx context.Context, status ComplaintStatus) (int64, error)
}

// BillTotals sums a tenant's bills by status
type BillTotals struct {
	Paid   decimal.Decimal
	Unpaid decimal.Decimal
}

// RoomFilter contains filter options for querying rooms
type RoomFilter struct {
	shared.Filter
}

// TenantFilter contains filter options for querying tenants
type TenantFilter struct {
	shared.Filter
	RoomID     *uuid.UUID
	Unassigned bool
}

// BillFilter contains filter options for querying bills
type BillFilter struct {
	shared.Filter
	TenantID *uuid.UUID
	Status   *BillStatus
	Month    string
}

// ComplaintFilter contains filter options for querying complaints
type ComplaintFilter struct {
	shared.Filter
	TenantID *uuid.UUID
	Status   *ComplaintStatus
}
