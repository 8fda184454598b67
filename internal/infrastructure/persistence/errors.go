package persistence

import (
	"errors"
	"strings"

	"github.com/hostel/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// translateError maps GORM sentinel errors onto domain errors for the given
// entity name. Anything else passes through untouched.
func translateError(err error, entity string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return shared.NewNotFoundError(entity)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return shared.NewConflictError("DUPLICATE_"+entity, "%s already exists", entity)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return shared.NewConflictError(entity+"_IN_USE", "%s is referenced by other records", entity)
	}
	return err
}

// affectedOrNotFound turns a zero-row write into a not-found error.
func affectedOrNotFound(result *gorm.DB, entity string) error {
	if result.Error != nil {
		return translateError(result.Error, entity)
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError(entity)
	}
	return nil
}

// likePattern wraps a search term for a LOWER(column) LIKE match.
func likePattern(search string) string {
	return "%" + strings.ToLower(strings.TrimSpace(search)) + "%"
}
