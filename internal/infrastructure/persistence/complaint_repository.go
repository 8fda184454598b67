package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/hostel/backend/internal/domain/hostel"
	"github.com/hostel/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

const complaintEntity = "COMPLAINT"

// GormComplaintRepository implements ComplaintRepository using GORM
type GormComplaintRepository struct {
	db *gorm.DB
}

// NewGormComplaintRepository creates a new GormComplaintRepository
func NewGormComplaintRepository(db *gorm.DB) *GormComplaintRepository {
	return &GormComplaintRepository{db: db}
}

// Create creates a new complaint
func (r *GormComplaintRepository) Create(ctx context.Context, complaint *hostel.Complaint) error {
	model := models.ComplaintModelFromDomain(complaint)
	return translateError(r.db.WithContext(ctx).Create(model).Error, complaintEntity)
}

// FindByID finds a complaint by ID
func (r *GormComplaintRepository) FindByID(ctx context.Context, id uuid.UUID) (*hostel.Complaint, error) {
	var model models.ComplaintModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err, complaintEntity)
	}
	return model.ToDomain(), nil
}

// FindAll finds complaints matching the filter
func (r *GormComplaintRepository) FindAll(ctx context.Context, filter hostel.ComplaintFilter) ([]*hostel.Complaint, int64, error) {
	f := filter.Normalize()
	scope := func(db *gorm.DB) *gorm.DB {
		db = db.Model(&models.ComplaintModel{})
		if filter.TenantID != nil {
			db = db.Where("tenant_id = ?", *filter.TenantID)
		}
		if filter.Status != nil {
			db = db.Where("status = ?", *filter.Status)
		}
		if f.Search != "" {
			pattern := likePattern(f.Search)
			db = db.Where("LOWER(subject) LIKE ? OR LOWER(message) LIKE ?", pattern, pattern)
		}
		return db
	}

	var total int64
	if err := r.db.WithContext(ctx).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.ComplaintModel
	if err := r.db.WithContext(ctx).
		Scopes(scope).
		Order(complaintSort.order(f.OrderBy, f.OrderDir)).
		Offset(f.Offset()).
		Limit(f.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	return complaintsToDomain(rows), total, nil
}

// FindRecent returns the newest complaints
func (r *GormComplaintRepository) FindRecent(ctx context.Context, limit int) ([]*hostel.Complaint, error) {
	var rows []models.ComplaintModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return complaintsToDomain(rows), nil
}

// MarkResolved stores the Pending -> Resolved transition, guarded on the
// stored status like MarkPaid.
func (r *GormComplaintRepository) MarkResolved(ctx context.Context, complaint *hostel.Complaint) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.ComplaintModel{}).
		Where("id = ? AND status = ?", complaint.ID, hostel.ComplaintStatusPending).
		Updates(map[string]any{
			"status":      hostel.ComplaintStatusResolved,
			"resolved_at": complaint.ResolvedAt,
			"version":     complaint.Version,
			"updated_at":  complaint.UpdatedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// CountByStatus counts complaints in the given status
func (r *GormComplaintRepository) CountByStatus(ctx context.Context, status hostel.ComplaintStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ComplaintModel{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func complaintsToDomain(rows []models.ComplaintModel) []*hostel.Complaint {
	complaints := make([]*hostel.Complaint, len(rows))
	for i := range rows {
		complaints[i] = rows[i].ToDomain()
	}
	return complaints
}

// Ensure GormComplaintRepository implements ComplaintRepository
var _ hostel.ComplaintRepository = (*GormComplaintRepository)(nil)
