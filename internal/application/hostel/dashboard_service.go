package hostel

import (
	"context"

	"github.com/hostel/backend/internal/domain/hostel"
	"github.com/hostel/backend/internal/domain/identity"
	"github.com/hostel/backend/internal/domain/shared"
)

// RecentItemsLimit is how many recent records the admin dashboard shows
const RecentItemsLimit = 5

// DashboardService builds the admin and tenant overviews.
// Counts are computed live on every call.
type DashboardService struct {
	txScope TransactionScope
	gate    *Gate
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(txScope TransactionScope, gate *Gate) *DashboardService {
	return &DashboardService{txScope: txScope, gate: gate}
}

// Stats returns the admin dashboard. Admin-only.
func (s *DashboardService) Stats(ctx context.Context, actor identity.Identity) (*DashboardStats, error) {
	if err := s.gate.RequirePrivileged(actor); err != nil {
		return nil, err
	}

	var stats DashboardStats
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		if stats.TotalTenants, err = repos.Tenants().Count(ctx); err != nil {
			return err
		}
		if stats.TotalRooms, err = repos.Rooms().Count(ctx); err != nil {
			return err
		}
		if stats.UnpaidBills, err = repos.Bills().CountByStatus(ctx, hostel.BillStatusUnpaid); err != nil {
			return err
		}
		if stats.PendingComplaints, err = repos.Complaints().CountByStatus(ctx, hostel.ComplaintStatusPending); err != nil {
			return err
		}

		tenants, err := repos.Tenants().FindRecent(ctx, RecentItemsLimit)
		if err != nil {
			return err
		}
		if stats.RecentTenants, err = tenantResponses(ctx, repos, tenants); err != nil {
			return err
		}

		bills, err := repos.Bills().FindRecent(ctx, RecentItemsLimit)
		if err != nil {
			return err
		}
		if stats.RecentBills, err = billResponses(ctx, repos, bills); err != nil {
			return err
		}

		complaints, err := repos.Complaints().FindRecent(ctx, RecentItemsLimit)
		if err != nil {
			return err
		}
		stats.RecentComplaints, err = complaintResponses(ctx, repos, complaints)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// TenantOverview returns the caller's own tenant, room, bills and complaints
func (s *DashboardService) TenantOverview(ctx context.Context, actor identity.Identity) (*TenantDashboard, error) {
	if err := s.gate.RequireAuthenticated(actor); err != nil {
		return nil, err
	}

	var dash TenantDashboard
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		tenant, err := repos.Tenants().FindByUserID(ctx, actor.UserID)
		if err != nil {
			return err
		}
		if dash.Tenant, err = tenantResponse(ctx, repos, tenant); err != nil {
			return err
		}

		if tenant.RoomID != nil {
			room, err := repos.Rooms().FindByID(ctx, *tenant.RoomID)
			if err != nil {
				return err
			}
			occupancy, err := repos.Tenants().CountByRoom(ctx, room.ID)
			if err != nil {
				return err
			}
			resp := ToRoomResponse(room, occupancy)
			dash.Room = &resp
		}

		ownFilter := shared.Filter{Page: 1, PageSize: shared.MaxPageSize, OrderBy: "created_at", OrderDir: "desc"}

		bills, _, err := repos.Bills().FindAll(ctx, hostel.BillFilter{Filter: ownFilter, TenantID: &tenant.ID})
		if err != nil {
			return err
		}
		if dash.Bills, err = billResponses(ctx, repos, bills); err != nil {
			return err
		}

		complaints, _, err := repos.Complaints().FindAll(ctx, hostel.ComplaintFilter{Filter: ownFilter, TenantID: &tenant.ID})
		if err != nil {
			return err
		}
		if dash.Complaints, err = complaintResponses(ctx, repos, complaints); err != nil {
			return err
		}

		totals, err := repos.Bills().SumByTenant(ctx, tenant.ID)
		if err != nil {
			return err
		}
		dash.TotalPaid = totals.Paid
		dash.TotalUnpaid = totals.Unpaid
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dash, nil
}
