package hostel

import (
	"time"

	"github.com/google/uuid"
	"github.com/hostel/backend/internal/domain/hostel"
	"github.com/hostel/backend/internal/domain/identity"
	"github.com/hostel/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ListFilter holds paging options shared by all list queries
type ListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

func (f ListFilter) toShared(allowedOrder map[string]bool) shared.Filter {
	out := shared.Filter{
		Page:     f.Page,
		PageSize: f.PageSize,
		OrderBy:  f.OrderBy,
		OrderDir: f.OrderDir,
		Search:   f.Search,
	}
	if !allowedOrder[out.OrderBy] {
		out.OrderBy = "created_at"
	}
	return out.Normalize()
}

// ---------------------------------------------------------------------------
// Rooms
// ---------------------------------------------------------------------------

// CreateRoomInput contains the fields of a new room
type CreateRoomInput struct {
	RoomNumber string          `json:"room_number" binding:"required,room_number"`
	Capacity   int             `json:"capacity"`
	Rent       decimal.Decimal `json:"rent"`
}

// UpdateRoomInput contains the fields to change on a room
type UpdateRoomInput struct {
	RoomNumber *string          `json:"room_number" binding:"omitempty,room_number"`
	Capacity   *int             `json:"capacity"`
	Rent       *decimal.Decimal `json:"rent"`
}

// RoomListFilter contains filter options for listing rooms
type RoomListFilter struct {
	ListFilter
}

// RoomResponse represents a room in API responses
type RoomResponse struct {
	ID          uuid.UUID       `json:"id"`
	RoomNumber  string          `json:"room_number"`
	Capacity    int             `json:"capacity"`
	Rent        decimal.Decimal `json:"rent"`
	TenantCount int64           `json:"tenant_count"`
	Available   int64           `json:"available"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Version     int             `json:"version"`
}

// ToRoomResponse converts a room and its occupancy into a response
func ToRoomResponse(r *hostel.Room, occupancy int64) RoomResponse {
	available := int64(r.Capacity) - occupancy
	if available < 0 {
		available = 0
	}
	return RoomResponse{
		ID:          r.ID,
		RoomNumber:  r.Number,
		Capacity:    r.Capacity,
		Rent:        r.Rent,
		TenantCount: occupancy,
		Available:   available,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		Version:     r.Version,
	}
}

// ---------------------------------------------------------------------------
// Tenants
// ---------------------------------------------------------------------------

// RegisterTenantInput contains the sign-up fields of a new resident
type RegisterTenantInput struct {
	Username    string `json:"username" binding:"required,min=3,max=100"`
	Password    string `json:"password" binding:"required,min=8,max=72"`
	Email       string `json:"email" binding:"omitempty,email"`
	DisplayName string `json:"display_name" binding:"max=200"`
	Phone       string `json:"phone" binding:"max=15"`
	Address     string `json:"address"`
}

// AssignRoomInput moves a tenant into a room; a nil RoomID unassigns
type AssignRoomInput struct {
	RoomID *uuid.UUID `json:"room_id"`
}

// UpdateProfileInput contains a tenant's contact details
type UpdateProfileInput struct {
	Phone   string `json:"phone" binding:"max=15"`
	Address string `json:"address"`
}

// TenantListFilter contains filter options for listing tenants
type TenantListFilter struct {
	ListFilter
	RoomID     *uuid.UUID `form:"room_id"`
	Unassigned bool       `form:"unassigned"`
}

// TenantResponse represents a tenant in API responses
type TenantResponse struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Username    string     `json:"username"`
	DisplayName string     `json:"display_name"`
	Email       string     `json:"email,omitempty"`
	RoomID      *uuid.UUID `json:"room_id,omitempty"`
	RoomNumber  string     `json:"room_number,omitempty"`
	JoinDate    time.Time  `json:"join_date"`
	Phone       string     `json:"phone"`
	Address     string     `json:"address"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ToTenantResponse converts a tenant with its user and room into a response.
// user and room may be nil.
func ToTenantResponse(t *hostel.Tenant, user *identity.User, room *hostel.Room) TenantResponse {
	resp := TenantResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		RoomID:    t.RoomID,
		JoinDate:  t.JoinDate,
		Phone:     t.Phone,
		Address:   t.Address,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if user != nil {
		resp.Username = user.Username
		resp.DisplayName = user.GetDisplayNameOrUsername()
		resp.Email = user.Email
	}
	if room != nil {
		resp.RoomNumber = room.Number
	}
	return resp
}

// ---------------------------------------------------------------------------
// Bills
// ---------------------------------------------------------------------------

// CreateBillInput contains the fields of a new bill
type CreateBillInput struct {
	TenantID uuid.UUID       `json:"tenant_id" binding:"required"`
	Month    string          `json:"month" binding:"required,bill_month"`
	Amount   decimal.Decimal `json:"amount"`
}

// UpdateBillInput contains the fields to change on an unpaid bill
type UpdateBillInput struct {
	Month  *string          `json:"month" binding:"omitempty,bill_month"`
	Amount *decimal.Decimal `json:"amount"`
}

// BillListFilter contains filter options for listing bills
type BillListFilter struct {
	ListFilter
	TenantID *uuid.UUID `form:"tenant_id"`
	Status   string     `form:"status" binding:"omitempty,oneof=Unpaid Paid"`
	Month    string     `form:"month"`
}

// BillResponse represents a bill in API responses
type BillResponse struct {
	ID             uuid.UUID       `json:"id"`
	TenantID       uuid.UUID       `json:"tenant_id"`
	TenantUsername string          `json:"tenant_username,omitempty"`
	Month          string          `json:"month"`
	Amount         decimal.Decimal `json:"amount"`
	Status         string          `json:"status"`
	PaidAt         *time.Time      `json:"paid_at"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToBillResponse converts a bill into a response
func ToBillResponse(b *hostel.Bill, tenantUsername string) BillResponse {
	return BillResponse{
		ID:             b.ID,
		TenantID:       b.TenantID,
		TenantUsername: tenantUsername,
		Month:          b.Month,
		Amount:         b.Amount,
		Status:         string(b.Status),
		PaidAt:         b.PaidAt,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// BillTotalsResponse sums one tenant's bills
type BillTotalsResponse struct {
	TotalPaid   decimal.Decimal `json:"total_paid"`
	TotalUnpaid decimal.Decimal `json:"total_unpaid"`
}

// BillListResult is a page of bills. Totals is set when the list is
// restricted to a single tenant.
type BillListResult struct {
	shared.Paginated[BillResponse]
	Totals *BillTotalsResponse `json:"totals,omitempty"`
}

// ---------------------------------------------------------------------------
// Complaints
// ---------------------------------------------------------------------------

// FileComplaintInput contains a new complaint. TenantID is only honoured for
// administrators filing on behalf of a tenant.
type FileComplaintInput struct {
	TenantID *uuid.UUID `json:"tenant_id"`
	Subject  string     `json:"subject" binding:"required,max=200"`
	Message  string     `json:"message" binding:"required"`
}

// ComplaintListFilter contains filter options for listing complaints
type ComplaintListFilter struct {
	ListFilter
	TenantID *uuid.UUID `form:"tenant_id"`
	Status   string     `form:"status" binding:"omitempty,oneof=Pending Resolved"`
}

// ComplaintResponse represents a complaint in API responses
type ComplaintResponse struct {
	ID             uuid.UUID  `json:"id"`
	TenantID       uuid.UUID  `json:"tenant_id"`
	TenantUsername string     `json:"tenant_username,omitempty"`
	Subject        string     `json:"subject"`
	Message        string     `json:"message"`
	Status         string     `json:"status"`
	ResolvedAt     *time.Time `json:"resolved_at"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ToComplaintResponse converts a complaint into a response
func ToComplaintResponse(c *hostel.Complaint, tenantUsername string) ComplaintResponse {
	return ComplaintResponse{
		ID:             c.ID,
		TenantID:       c.TenantID,
		TenantUsername: tenantUsername,
		Subject:        c.Subject,
		Message:        c.Message,
		Status:         string(c.Status),
		ResolvedAt:     c.ResolvedAt,
		CreatedAt:      c.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Dashboards & receipts
// ---------------------------------------------------------------------------

// DashboardStats is the administrator overview
type DashboardStats struct {
	TotalTenants      int64               `json:"total_tenants"`
	TotalRooms        int64               `json:"total_rooms"`
	UnpaidBills       int64               `json:"unpaid_bills"`
	PendingComplaints int64               `json:"pending_complaints"`
	RecentTenants     []TenantResponse    `json:"recent_tenants"`
	RecentBills       []BillResponse      `json:"recent_bills"`
	RecentComplaints  []ComplaintResponse `json:"recent_complaints"`
}

// TenantDashboard is a resident's own overview
type TenantDashboard struct {
	Tenant      TenantResponse      `json:"tenant"`
	Room        *RoomResponse       `json:"room"`
	Bills       []BillResponse      `json:"bills"`
	Complaints  []ComplaintResponse `json:"complaints"`
	TotalPaid   decimal.Decimal     `json:"total_paid"`
	TotalUnpaid decimal.Decimal     `json:"total_unpaid"`
}

// Receipt is a rendered bill receipt
type Receipt struct {
	BillID      uuid.UUID `json:"bill_id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Content     []byte    `json:"-"`
	// DownloadURL is set when the receipt was uploaded to object storage
	DownloadURL string `json:"download_url,omitempty"`
}
