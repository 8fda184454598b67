package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/hostel/backend/internal/domain/hostel"
	"github.com/hostel/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

const tenantEntity = "TENANT"

// GormTenantRepository implements TenantRepository using GORM
type GormTenantRepository struct {
	db *gorm.DB
}

// NewGormTenantRepository creates a new GormTenantRepository
func NewGormTenantRepository(db *gorm.DB) *GormTenantRepository {
	return &GormTenantRepository{db: db}
}

// Create creates a new tenant
func (r *GormTenantRepository) Create(ctx context.Context, tenant *hostel.Tenant) error {
	model := models.TenantModelFromDomain(tenant)
	return translateError(r.db.WithContext(ctx).Create(model).Error, tenantEntity)
}

// Update updates an existing tenant
func (r *GormTenantRepository) Update(ctx context.Context, tenant *hostel.Tenant) error {
	result := r.db.WithContext(ctx).
		Model(&models.TenantModel{}).
		Where("id = ?", tenant.ID).
		Updates(map[string]any{
			"room_id":    tenant.RoomID,
			"phone":      tenant.Phone,
			"address":    tenant.Address,
			"version":    tenant.Version,
			"updated_at": tenant.UpdatedAt,
		})
	return affectedOrNotFound(result, tenantEntity)
}

// FindByID finds a tenant by ID
func (r *GormTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*hostel.Tenant, error) {
	var model models.TenantModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err, tenantEntity)
	}
	return model.ToDomain(), nil
}

// FindByIDs loads several tenants keyed by ID
func (r *GormTenantRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*hostel.Tenant, error) {
	tenants := make(map[uuid.UUID]*hostel.Tenant, len(ids))
	if len(ids) == 0 {
		return tenants, nil
	}

	var rows []models.TenantModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		tenants[rows[i].ID] = rows[i].ToDomain()
	}
	return tenants, nil
}

// FindByUserID finds the tenant profile of a user account
func (r *GormTenantRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*hostel.Tenant, error) {
	var model models.TenantModel
	if err := r.db.WithContext(ctx).First(&model, "user_id = ?", userID).Error; err != nil {
		return nil, translateError(err, tenantEntity)
	}
	return model.ToDomain(), nil
}

// ExistsByUserID checks whether the user already has a tenant profile
func (r *GormTenantRepository) ExistsByUserID(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.TenantModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll finds tenants matching the filter. Search matches the account's
// username or display name and the tenant's phone.
func (r *GormTenantRepository) FindAll(ctx context.Context, filter hostel.TenantFilter) ([]*hostel.Tenant, int64, error) {
	f := filter.Normalize()
	scope := func(db *gorm.DB) *gorm.DB {
		db = db.Model(&models.TenantModel{})
		if filter.RoomID != nil {
			db = db.Where("tenants.room_id = ?", *filter.RoomID)
		}
		if filter.Unassigned {
			db = db.Where("tenants.room_id IS NULL")
		}
		if f.Search != "" {
			pattern := likePattern(f.Search)
			db = db.Joins("JOIN users ON users.id = tenants.user_id").
				Where("LOWER(users.username) LIKE ? OR LOWER(users.display_name) LIKE ? OR tenants.phone LIKE ?",
					pattern, pattern, pattern)
		}
		return db
	}

	var total int64
	if err := r.db.WithContext(ctx).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.TenantModel
	if err := r.db.WithContext(ctx).
		Scopes(scope).
		Select("tenants.*").
		Order(tenantSort.order(f.OrderBy, f.OrderDir)).
		Offset(f.Offset()).
		Limit(f.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	return tenantsToDomain(rows), total, nil
}

// FindRecent returns the newest tenants
func (r *GormTenantRepository) FindRecent(ctx context.Context, limit int) ([]*hostel.Tenant, error) {
	var rows []models.TenantModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return tenantsToDomain(rows), nil
}

// CountByRoom returns the number of tenants assigned to a room
func (r *GormTenantRepository) CountByRoom(ctx context.Context, roomID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.TenantModel{}).
		Where("room_id = ?", roomID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByRooms returns occupancy per room in one grouped query
func (r *GormTenantRepository) CountByRooms(ctx context.Context, roomIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(roomIDs))
	if len(roomIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		RoomID uuid.UUID
		Total  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.TenantModel{}).
		Select("room_id, COUNT(*) AS total").
		Where("room_id IN ?", roomIDs).
		Group("room_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.RoomID] = row.Total
	}
	return counts, nil
}

// Count returns the total number of tenants
func (r *GormTenantRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.TenantModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func tenantsToDomain(rows []models.TenantModel) []*hostel.Tenant {
	tenants := make([]*hostel.Tenant, len(rows))
	for i := range rows {
		tenants[i] = rows[i].ToDomain()
	}
	return tenants
}

// Ensure GormTenantRepository implements TenantRepository
var _ hostel.TenantRepository = (*GormTenantRepository)(nil)
