package persistence

import (
	"context"

	"github.com/hostel/backend/internal/domain/hostel"
	"github.com/hostel/backend/internal/infrastructure/telemetry"
	"gorm.io/gorm"
)

// GormStatsProvider reads the workload snapshot behind the hostel gauges.
type GormStatsProvider struct {
	rooms      *GormRoomRepository
	tenants    *GormTenantRepository
	bills      *GormBillRepository
	complaints *GormComplaintRepository
}

// NewGormStatsProvider creates a new GormStatsProvider
func NewGormStatsProvider(db *gorm.DB) *GormStatsProvider {
	return &GormStatsProvider{
		rooms:      NewGormRoomRepository(db),
		tenants:    NewGormTenantRepository(db),
		bills:      NewGormBillRepository(db),
		complaints: NewGormComplaintRepository(db),
	}
}

// HostelStats counts rooms, tenants, unpaid bills and pending complaints
func (p *GormStatsProvider) HostelStats(ctx context.Context) (telemetry.HostelStats, error) {
	var stats telemetry.HostelStats
	var err error
	if stats.Rooms, err = p.rooms.Count(ctx); err != nil {
		return stats, err
	}
	if stats.Tenants, err = p.tenants.Count(ctx); err != nil {
		return stats, err
	}
	if stats.UnpaidBills, err = p.bills.CountByStatus(ctx, hostel.BillStatusUnpaid); err != nil {
		return stats, err
	}
	if stats.PendingComplaints, err = p.complaints.CountByStatus(ctx, hostel.ComplaintStatusPending); err != nil {
		return stats, err
	}
	return stats, nil
}

var _ telemetry.StatsProvider = (*GormStatsProvider)(nil)
