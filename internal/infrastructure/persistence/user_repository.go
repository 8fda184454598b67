package persistence

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/hostel/backend/internal/domain/identity"
	"github.com/hostel/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

const userEntity = "USER"

var _ identity.UserRepository = (*GormUserRepository)(nil)

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// usernameIs matches case-insensitively; usernames are unique ignoring case.
func usernameIs(username string) func(*gorm.DB) *gorm.DB {
	key := strings.ToLower(strings.TrimSpace(username))
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER(username) = ?", key)
	}
}

func (r *GormUserRepository) users(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.UserModel{})
}

func (r *GormUserRepository) Create(ctx context.Context, user *identity.User) error {
	err := r.db.WithContext(ctx).Create(models.UserModelFromDomain(user)).Error
	return translateError(err, userEntity)
}

// Update writes the mutable account state. Username and creation time never
// change after sign-up.
func (r *GormUserRepository) Update(ctx context.Context, user *identity.User) error {
	result := r.users(ctx).Where("id = ?", user.ID).Updates(map[string]any{
		"email":           user.Email,
		"display_name":    user.DisplayName,
		"password_hash":   user.PasswordHash,
		"is_staff":        user.IsStaff,
		"status":          user.Status,
		"last_login_at":   user.LastLoginAt,
		"failed_attempts": user.FailedAttempts,
		"locked_until":    user.LockedUntil,
		"version":         user.Version,
		"updated_at":      user.UpdatedAt,
	})
	return affectedOrNotFound(result, userEntity)
}

func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	return r.first(r.users(ctx).Where("id = ?", id))
}

func (r *GormUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	return r.first(r.users(ctx).Scopes(usernameIs(username)))
}

func (r *GormUserRepository) first(q *gorm.DB) (*identity.User, error) {
	var row models.UserModel
	if err := q.First(&row).Error; err != nil {
		return nil, translateError(err, userEntity)
	}
	return row.ToDomain(), nil
}

func (r *GormUserRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*identity.User, error) {
	found := make(map[uuid.UUID]*identity.User, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	var rows []models.UserModel
	if err := r.users(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		found[rows[i].ID] = rows[i].ToDomain()
	}
	return found, nil
}

func (r *GormUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	n, err := r.count(r.users(ctx).Scopes(usernameIs(username)))
	return n > 0, err
}

func (r *GormUserRepository) Count(ctx context.Context) (int64, error) {
	return r.count(r.users(ctx))
}

func (r *GormUserRepository) count(q *gorm.DB) (int64, error) {
	var n int64
	err := q.Count(&n).Error
	return n, err
}
