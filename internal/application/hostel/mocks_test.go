package hostel

import (
	"context"

	"github.com/google/uuid"
	"github.com/hostel/backend/internal/domain/hostel"
	"github.com/hostel/backend/internal/domain/identity"
	"github.com/hostel/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *identity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*identity.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockRoomRepository is a mock implementation of hostel.RoomRepository
type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(ctx context.Context, room *hostel.Room) error {
	return m.Called(ctx, room).Error(0)
}

func (m *MockRoomRepository) Update(ctx context.Context, room *hostel.Room) error {
	return m.Called(ctx, room).Error(0)
}

func (m *MockRoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*hostel.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hostel.Room), args.Error(1)
}

func (m *MockRoomRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*hostel.Room, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]*hostel.Room), args.Error(1)
}

func (m *MockRoomRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*hostel.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hostel.Room), args.Error(1)
}

func (m *MockRoomRepository) ExistsByNumber(ctx context.Context, number string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, number, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoomRepository) FindAll(ctx context.Context, filter hostel.RoomFilter) ([]*hostel.Room, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*hostel.Room), args.Get(1).(int64), args.Error(2)
}

func (m *MockRoomRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockTenantRepository is a mock implementation of hostel.TenantRepository
type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) Create(ctx context.Context, tenant *hostel.Tenant) error {
	return m.Called(ctx, tenant).Error(0)
}

func (m *MockTenantRepository) Update(ctx context.Context, tenant *hostel.Tenant) error {
	return m.Called(ctx, tenant).Error(0)
}

func (m *MockTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*hostel.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hostel.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*hostel.Tenant, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]*hostel.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*hostel.Tenant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hostel.Tenant), args.Error(1)
}

func (m *MockTenantRepository) ExistsByUserID(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTenantRepository) FindAll(ctx context.Context, filter hostel.TenantFilter) ([]*hostel.Tenant, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*hostel.Tenant), args.Get(1).(int64), args.Error(2)
}

func (m *MockTenantRepository) FindRecent(ctx context.Context, limit int) ([]*hostel.Tenant, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*hostel.Tenant), args.Error(1)
}

func (m *MockTenantRepository) CountByRoom(ctx context.Context, roomID uuid.UUID) (int64, error) {
	args := m.Called(ctx, roomID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTenantRepository) CountByRooms(ctx context.Context, roomIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	args := m.Called(ctx, roomIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]int64), args.Error(1)
}

func (m *MockTenantRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockBillRepository is a mock implementation of hostel.BillRepository
type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) Create(ctx context.Context, bill *hostel.Bill) error {
	return m.Called(ctx, bill).Error(0)
}

func (m *MockBillRepository) Update(ctx context.Context, bill *hostel.Bill) error {
	return m.Called(ctx, bill).Error(0)
}

func (m *MockBillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBillRepository) FindByID(ctx context.Context, id uuid.UUID) (*hostel.Bill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hostel.Bill), args.Error(1)
}

func (m *MockBillRepository) FindAll(ctx context.Context, filter hostel.BillFilter) ([]*hostel.Bill, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*hostel.Bill), args.Get(1).(int64), args.Error(2)
}

func (m *MockBillRepository) FindRecent(ctx context.Context, limit int) ([]*hostel.Bill, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*hostel.Bill), args.Error(1)
}

func (m *MockBillRepository) ExistsForMonth(ctx context.Context, tenantID uuid.UUID, month string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, tenantID, month, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBillRepository) MarkPaid(ctx context.Context, bill *hostel.Bill) (bool, error) {
	args := m.Called(ctx, bill)
	return args.Bool(0), args.Error(1)
}

func (m *MockBillRepository) CountByStatus(ctx context.Context, status hostel.BillStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBillRepository) SumByTenant(ctx context.Context, tenantID uuid.UUID) (hostel.BillTotals, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(hostel.BillTotals), args.Error(1)
}

// MockComplaintRepository is a mock implementation of hostel.ComplaintRepository
type MockComplaintRepository struct {
	mock.Mock
}

func (m *MockComplaintRepository) Create(ctx context.Context, complaint *hostel.Complaint) error {
	return m.Called(ctx, complaint).Error(0)
}

func (m *MockComplaintRepository) FindByID(ctx context.Context, id uuid.UUID) (*hostel.Complaint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hostel.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) FindAll(ctx context.Context, filter hostel.ComplaintFilter) ([]*hostel.Complaint, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*hostel.Complaint), args.Get(1).(int64), args.Error(2)
}

func (m *MockComplaintRepository) FindRecent(ctx context.Context, limit int) ([]*hostel.Complaint, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*hostel.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) MarkResolved(ctx context.Context, complaint *hostel.Complaint) (bool, error) {
	args := m.Called(ctx, complaint)
	return args.Bool(0), args.Error(1)
}

func (m *MockComplaintRepository) CountByStatus(ctx context.Context, status hostel.ComplaintStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

// MockEventPublisher records published events
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// testRepos bundles the mocks behind a NoOpTransactionScope
type testRepos struct {
	users      *MockUserRepository
	rooms      *MockRoomRepository
	tenants    *MockTenantRepository
	bills      *MockBillRepository
	complaints *MockComplaintRepository
	scope      *NoOpTransactionScope
}

func newTestRepos() *testRepos {
	r := &testRepos{
		users:      new(MockUserRepository),
		rooms:      new(MockRoomRepository),
		tenants:    new(MockTenantRepository),
		bills:      new(MockBillRepository),
		complaints: new(MockComplaintRepository),
	}
	r.scope = NewNoOpTransactionScope(r.users, r.rooms, r.tenants, r.bills, r.complaints)
	return r
}

// expectNames stubs the tenant-username lookups used when building responses
func (r *testRepos) expectNames(tenants ...*hostel.Tenant) {
	r.tenants.On("FindByIDs", mock.Anything, mock.Anything).Return(tenantMap(tenants...), nil).Maybe()
	r.users.On("FindByIDs", mock.Anything, mock.Anything).Return(map[uuid.UUID]*identity.User{}, nil).Maybe()
	r.rooms.On("FindByIDs", mock.Anything, mock.Anything).Return(map[uuid.UUID]*hostel.Room{}, nil).Maybe()
}

func (r *testRepos) assertExpectations(t mock.TestingT) {
	r.users.AssertExpectations(t)
	r.rooms.AssertExpectations(t)
	r.tenants.AssertExpectations(t)
	r.bills.AssertExpectations(t)
	r.complaints.AssertExpectations(t)
}

func tenantMap(tenants ...*hostel.Tenant) map[uuid.UUID]*hostel.Tenant {
	out := make(map[uuid.UUID]*hostel.Tenant, len(tenants))
	for _, t := range tenants {
		out[t.ID] = t
	}
	return out
}

func adminIdentity() identity.Identity {
	return identity.Identity{UserID: uuid.New(), Username: "warden", Privileged: true}
}

func residentIdentity() identity.Identity {
	return identity.Identity{UserID: uuid.New(), Username: "resident"}
}
