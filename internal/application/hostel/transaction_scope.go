package hostel

import (
	"context"

	"github.com/hostel/backend/internal/domain/hostel"
	"github.com/hostel/backend/internal/domain/identity"
)

// TransactionScope provides transactional access to the hostel repositories.
// Every service operation runs inside exactly one Execute call, so its reads
// and writes commit or roll back together.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to all repositories within a transaction.
// All repositories returned share the same underlying database transaction.
type TransactionalRepositories interface {
	Users() identity.UserRepository
	Rooms() hostel.RoomRepository
	Tenants() hostel.TenantRepository
	Bills() hostel.BillRepository
	Complaints() hostel.ComplaintRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use transactions.
// This is useful for testing with mocked repositories.
type NoOpTransactionScope struct {
	users      identity.UserRepository
	rooms      hostel.RoomRepository
	tenants    hostel.TenantRepository
	bills      hostel.BillRepository
	complaints hostel.ComplaintRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	users identity.UserRepository,
	rooms hostel.RoomRepository,
	tenants hostel.TenantRepository,
	bills hostel.BillRepository,
	complaints hostel.ComplaintRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		users:      users,
		rooms:      rooms,
		tenants:    tenants,
		bills:      bills,
		complaints: complaints,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Users returns the user repository.
func (s *NoOpTransactionScope) Users() identity.UserRepository { return s.users }

// Rooms returns the room repository.
func (s *NoOpTransactionScope) Rooms() hostel.RoomRepository { return s.rooms }

// Tenants returns the tenant repository.
func (s *NoOpTransactionScope) Tenants() hostel.TenantRepository { return s.tenants }

// Bills returns the bill repository.
func (s *NoOpTransactionScope) Bills() hostel.BillRepository { return s.bills }

// Complaints returns the complaint repository.
func (s *NoOpTransactionScope) Complaints() hostel.ComplaintRepository { return s.complaints }

var (
	_ TransactionScope          = (*NoOpTransactionScope)(nil)
	_ TransactionalRepositories = (*NoOpTransactionScope)(nil)
)
