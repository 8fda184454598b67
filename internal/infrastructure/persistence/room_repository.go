package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/hostel/backend/internal/domain/hostel"
	"github.com/hostel/backend/internal/domain/shared"
	"github.com/hostel/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const roomEntity = "ROOM"

// GormRoomRepository implements RoomRepository using GORM
type GormRoomRepository struct {
	db *gorm.DB
}

// NewGormRoomRepository creates a new GormRoomRepository
func NewGormRoomRepository(db *gorm.DB) *GormRoomRepository {
	return &GormRoomRepository{db: db}
}

// Create creates a new room
func (r *GormRoomRepository) Create(ctx context.Context, room *hostel.Room) error {
	model := models.RoomModelFromDomain(room)
	return numberTaken(r.db.WithContext(ctx).Create(model).Error, room.Number)
}

// Update updates an existing room
func (r *GormRoomRepository) Update(ctx context.Context, room *hostel.Room) error {
	result := r.db.WithContext(ctx).
		Model(&models.RoomModel{}).
		Where("id = ?", room.ID).
		Updates(map[string]any{
			"room_number": room.Number,
			"capacity":    room.Capacity,
			"rent":        room.Rent,
			"version":     room.Version,
			"updated_at":  room.UpdatedAt,
		})
	if result.Error != nil {
		return numberTaken(result.Error, room.Number)
	}
	return affectedOrNotFound(result, roomEntity)
}

// numberTaken reports a unique violation on room_number the same way the
// service's pre-check does, so a lost race still reads as invalid input.
func numberTaken(err error, number string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return shared.NewValidationError("DUPLICATE_ROOM_NUMBER", "Room number %s already exists", number)
	}
	return translateError(err, roomEntity)
}

// Delete deletes a room by ID
func (r *GormRoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.RoomModel{}, "id = ?", id)
	return affectedOrNotFound(result, roomEntity)
}

// FindByID finds a room by ID
func (r *GormRoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*hostel.Room, error) {
	var model models.RoomModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err, roomEntity)
	}
	return model.ToDomain(), nil
}

// FindByIDForUpdate finds a room by ID and locks its row (SELECT ... FOR UPDATE).
// SQLite has no row locks and serializes writers instead.
func (r *GormRoomRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*hostel.Room, error) {
	var model models.RoomModel
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err, roomEntity)
	}
	return model.ToDomain(), nil
}

// FindByIDs loads several rooms keyed by ID
func (r *GormRoomRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*hostel.Room, error) {
	rooms := make(map[uuid.UUID]*hostel.Room, len(ids))
	if len(ids) == 0 {
		return rooms, nil
	}

	var rows []models.RoomModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		rooms[rows[i].ID] = rows[i].ToDomain()
	}
	return rooms, nil
}

// ExistsByNumber checks for a room with the given number, ignoring case
func (r *GormRoomRepository) ExistsByNumber(ctx context.Context, number string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&models.RoomModel{}).
		Where("LOWER(room_number) = ?", strings.ToLower(strings.TrimSpace(number)))
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll finds rooms matching the filter
func (r *GormRoomRepository) FindAll(ctx context.Context, filter hostel.RoomFilter) ([]*hostel.Room, int64, error) {
	f := filter.Normalize()
	scope := func(db *gorm.DB) *gorm.DB {
		if f.Search != "" {
			db = db.Where("LOWER(room_number) LIKE ?", likePattern(f.Search))
		}
		return db
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.RoomModel{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.RoomModel
	if err := r.db.WithContext(ctx).
		Scopes(scope).
		Order(roomSort.order(f.OrderBy, f.OrderDir)).
		Offset(f.Offset()).
		Limit(f.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	rooms := make([]*hostel.Room, len(rows))
	for i := range rows {
		rooms[i] = rows[i].ToDomain()
	}
	return rooms, total, nil
}

// Count returns the total number of rooms
func (r *GormRoomRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.RoomModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormRoomRepository implements RoomRepository
var _ hostel.RoomRepository = (*GormRoomRepository)(nil)
