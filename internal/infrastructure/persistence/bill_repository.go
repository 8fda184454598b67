package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/hostel/backend/internal/domain/hostel"
	"github.com/hostel/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const billEntity = "BILL"

// GormBillRepository implements BillRepository using GORM
type GormBillRepository struct {
	db *gorm.DB
}

// NewGormBillRepository creates a new GormBillRepository
func NewGormBillRepository(db *gorm.DB) *GormBillRepository {
	return &GormBillRepository{db: db}
}

// Create creates a new bill
func (r *GormBillRepository) Create(ctx context.Context, bill *hostel.Bill) error {
	model := models.BillModelFromDomain(bill)
	return translateError(r.db.WithContext(ctx).Create(model).Error, billEntity)
}

// Update updates the editable fields of a bill
func (r *GormBillRepository) Update(ctx context.Context, bill *hostel.Bill) error {
	result := r.db.WithContext(ctx).
		Model(&models.BillModel{}).
		Where("id = ?", bill.ID).
		Updates(map[string]any{
			"month":      bill.Month,
			"amount":     bill.Amount,
			"version":    bill.Version,
			"updated_at": bill.UpdatedAt,
		})
	return affectedOrNotFound(result, billEntity)
}

// Delete deletes a bill by ID
func (r *GormBillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.BillModel{}, "id = ?", id)
	return affectedOrNotFound(result, billEntity)
}

// FindByID finds a bill by ID
func (r *GormBillRepository) FindByID(ctx context.Context, id uuid.UUID) (*hostel.Bill, error) {
	var model models.BillModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err, billEntity)
	}
	return model.ToDomain(), nil
}

// FindAll finds bills matching the filter. Search matches the period label
// or the tenant's username.
func (r *GormBillRepository) FindAll(ctx context.Context, filter hostel.BillFilter) ([]*hostel.Bill, int64, error) {
	f := filter.Normalize()
	scope := func(db *gorm.DB) *gorm.DB {
		db = db.Model(&models.BillModel{})
		if filter.TenantID != nil {
			db = db.Where("bills.tenant_id = ?", *filter.TenantID)
		}
		if filter.Status != nil {
			db = db.Where("bills.status = ?", *filter.Status)
		}
		if filter.Month != "" {
			db = db.Where("bills.month = ?", hostel.NormalizeMonth(filter.Month))
		}
		if f.Search != "" {
			pattern := likePattern(f.Search)
			db = db.Joins("JOIN tenants ON tenants.id = bills.tenant_id").
				Joins("JOIN users ON users.id = tenants.user_id").
				Where("LOWER(bills.month) LIKE ? OR LOWER(users.username) LIKE ?", pattern, pattern)
		}
		return db
	}

	var total int64
	if err := r.db.WithContext(ctx).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.BillModel
	if err := r.db.WithContext(ctx).
		Scopes(scope).
		Select("bills.*").
		Order(billSort.order(f.OrderBy, f.OrderDir)).
		Offset(f.Offset()).
		Limit(f.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	return billsToDomain(rows), total, nil
}

// FindRecent returns the newest bills
func (r *GormBillRepository) FindRecent(ctx context.Context, limit int) ([]*hostel.Bill, error) {
	var rows []models.BillModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return billsToDomain(rows), nil
}

// ExistsForMonth checks whether the tenant already has a bill for the period
func (r *GormBillRepository) ExistsForMonth(ctx context.Context, tenantID uuid.UUID, month string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&models.BillModel{}).
		Where("tenant_id = ? AND month = ?", tenantID, hostel.NormalizeMonth(month))
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// MarkPaid stores the Unpaid -> Paid transition. The status guard in the
// WHERE clause makes a concurrent second payment affect zero rows, so the
// first paid_at is never overwritten.
func (r *GormBillRepository) MarkPaid(ctx context.Context, bill *hostel.Bill) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.BillModel{}).
		Where("id = ? AND status = ?", bill.ID, hostel.BillStatusUnpaid).
		Updates(map[string]any{
			"status":     hostel.BillStatusPaid,
			"paid_at":    bill.PaidAt,
			"version":    bill.Version,
			"updated_at": bill.UpdatedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// CountByStatus counts bills in the given status
func (r *GormBillRepository) CountByStatus(ctx context.Context, status hostel.BillStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.BillModel{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumByTenant totals a tenant's bills by status
func (r *GormBillRepository) SumByTenant(ctx context.Context, tenantID uuid.UUID) (hostel.BillTotals, error) {
	var row struct {
		Paid   decimal.Decimal
		Unpaid decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&models.BillModel{}).
		Select(
			"COALESCE(SUM(CASE WHEN status = ? THEN amount ELSE 0 END), 0) AS paid, "+
				"COALESCE(SUM(CASE WHEN status = ? THEN amount ELSE 0 END), 0) AS unpaid",
			hostel.BillStatusPaid, hostel.BillStatusUnpaid,
		).
		Where("tenant_id = ?", tenantID).
		Scan(&row).Error; err != nil {
		return hostel.BillTotals{}, err
	}
	return hostel.BillTotals{Paid: row.Paid, Unpaid: row.Unpaid}, nil
}

func billsToDomain(rows []models.BillModel) []*hostel.Bill {
	bills := make([]*hostel.Bill, len(rows))
	for i := range rows {
		bills[i] = rows[i].ToDomain()
	}
	return bills
}

// Ensure GormBillRepository implements BillRepository
var _ hostel.BillRepository = (*GormBillRepository)(nil)
