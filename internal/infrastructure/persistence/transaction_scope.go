package persistence

import (
	"context"

	apphostel "github.com/hostel/backend/internal/application/hostel"
	"github.com/hostel/backend/internal/domain/hostel"
	"github.com/hostel/backend/internal/domain/identity"
	"gorm.io/gorm"
)

// GormTransactionScope implements TransactionScope using GORM transactions.
// It provides atomic execution of multiple repository operations.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos apphostel.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// gormTransactionalRepositories provides access to all repositories within a transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// Users returns the user repository scoped to the current transaction.
func (r *gormTransactionalRepositories) Users() identity.UserRepository {
	return NewGormUserRepository(r.tx)
}

// Rooms returns the room repository scoped to the current transaction.
func (r *gormTransactionalRepositories) Rooms() hostel.RoomRepository {
	return NewGormRoomRepository(r.tx)
}

// Tenants returns the tenant repository scoped to the current transaction.
func (r *gormTransactionalRepositories) Tenants() hostel.TenantRepository {
	return NewGormTenantRepository(r.tx)
}

// Bills returns the bill repository scoped to the current transaction.
func (r *gormTransactionalRepositories) Bills() hostel.BillRepository {
	return NewGormBillRepository(r.tx)
}

// Complaints returns the complaint repository scoped to the current transaction.
func (r *gormTransactionalRepositories) Complaints() hostel.ComplaintRepository {
	return NewGormComplaintRepository(r.tx)
}

// Ensure GormTransactionScope implements TransactionScope
var _ apphostel.TransactionScope = (*GormTransactionScope)(nil)

// Ensure gormTransactionalRepositories implements TransactionalRepositories
var _ apphostel.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
