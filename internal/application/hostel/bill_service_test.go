package hostel

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hostel/backend/internal/domain/hostel"
	"github.com/hostel/backend/internal/domain/identity"
	"github.com/hostel/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestTenant(t *testing.T, owner identity.Identity) *hostel.Tenant {
	t.Helper()
	tenant, err := hostel.NewTenant(owner.UserID, time.Now())
	require.NoError(t, err)
	tenant.ClearEvents()
	return tenant
}

func newTestBill(t *testing.T, tenant *hostel.Tenant, month string) *hostel.Bill {
	t.Helper()
	bill, err := hostel.NewBill(tenant.ID, month, decimal.NewFromInt(5000))
	require.NoError(t, err)
	bill.ClearEvents()
	return bill
}

func newBillService(r *testRepos, now time.Time) *BillService {
	svc := NewBillService(r.scope, NewGate(nil), zap.NewNop())
	svc.now = func() time.Time { return now }
	return svc
}

func TestBillService_Create(t *testing.T) {
	ctx := context.Background()
	admin := adminIdentity()
	resident := residentIdentity()

	t.Run("creates unpaid bill", func(t *testing.T) {
		r := newTestRepos()
		svc := newBillService(r, time.Now())
		tenant := newTestTenant(t, resident)
		r.expectNames(tenant)

		r.tenants.On("FindByID", mock.Anything, tenant.ID).Return(tenant, nil)
		r.bills.On("ExistsForMonth", mock.Anything, tenant.ID, "March 2024", (*uuid.UUID)(nil)).Return(false, nil)
		r.bills.On("Create", mock.Anything, mock.AnythingOfType("*hostel.Bill")).Return(nil)

		resp, err := svc.Create(ctx, admin, CreateBillInput{TenantID: tenant.ID, Month: "march  2024", Amount: decimal.NewFromInt(5000)})
		require.NoError(t, err)
		assert.Equal(t, "Unpaid", resp.Status)
		assert.Nil(t, resp.PaidAt)
		assert.Equal(t, "March 2024", resp.Month)
	})

	t.Run("missing tenant", func(t *testing.T) {
		r := newTestRepos()
		svc := newBillService(r, time.Now())
		id := uuid.New()
		r.tenants.On("FindByID", mock.Anything, id).Return(nil, shared.NewNotFoundError("TENANT"))

		_, err := svc.Create(ctx, admin, CreateBillInput{TenantID: id, Month: "March 2024", Amount: decimal.NewFromInt(1)})
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})

	t.Run("negative amount", func(t *testing.T) {
		r := newTestRepos()
		svc := newBillService(r, time.Now())
		tenant := newTestTenant(t, resident)
		r.tenants.On("FindByID", mock.Anything, tenant.ID).Return(tenant, nil)

		_, err := svc.Create(ctx, admin, CreateBillInput{TenantID: tenant.ID, Month: "March 2024", Amount: decimal.NewFromInt(-1)})
		assert.True(t, errors.Is(err, shared.ErrValidation))
		r.bills.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate period is a conflict", func(t *testing.T) {
		r := newTestRepos()
		svc := newBillService(r, time.Now())
		tenant := newTestTenant(t, resident)
		r.tenants.On("FindByID", mock.Anything, tenant.ID).Return(tenant, nil)
		r.bills.On("ExistsForMonth", mock.Anything, tenant.ID, "March 2024", (*uuid.UUID)(nil)).Return(true, nil)

		_, err := svc.Create(ctx, admin, CreateBillInput{TenantID: tenant.ID, Month: "March 2024", Amount: decimal.NewFromInt(1)})
		assert.True(t, errors.Is(err, shared.ErrConflict))
	})

	t.Run("resident forbidden", func(t *testing.T) {
		r := newTestRepos()
		svc := newBillService(r, time.Now())
		_, err := svc.Create(ctx, resident, CreateBillInput{TenantID: uuid.New(), Month: "", Amount: decimal.NewFromInt(-1)})
		assert.True(t, errors.Is(err, shared.ErrForbidden))
		r.assertExpectations(t)
	})
}

func TestBillService_Pay(t *testing.T) {
	ctx := context.Background()
	resident := residentIdentity()
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("owner pays unpaid bill", func(t *testing.T) {
		r := newTestRepos()
		svc := newBillService(r, now)
		pub := new(MockEventPublisher)
		svc.SetEventPublisher(pub)
		tenant := newTestTenant(t, resident)
		bill := newTestBill(t, tenant, "March 2024")
		r.expectNames(tenant)

		r.bills.On("FindByID", mock.Anything, bill.ID).Return(bill, nil)
		r.tenants.On("FindByID", mock.Anything, tenant.ID).Return(tenant, nil)
		r.bills.On("MarkPaid", mock.Anything, bill).Return(true, nil)
		pub.On("Publish", mock.Anything, mock.MatchedBy(func(events []shared.DomainEvent) bool {
			return len(events) == 1 &&
				events[0].EventType() == hostel.EventTypeBillPaid &&
				events[0].ActorID() == resident.UserID
		})).Return(nil)

		resp, err := svc.Pay(ctx, resident, bill.ID)
		require.NoError(t, err)
		assert.Equal(t, "Paid", resp.Status)
		require.NotNil(t, resp.PaidAt)
		assert.Equal(t, now, *resp.PaidAt)
		pub.AssertExpectations(t)
	})

	t.Run("paying a paid bill is a conflict and keeps paid_at", func(t *testing.T) {
		r := newTestRepos()
		svc := newBillService(r, now.Add(time.Hour))
		tenant := newTestTenant(t, resident)
		bill := newTestBill(t, tenant, "March 2024")
		require.NoError(t, bill.Pay(now))

		r.bills.On("FindByID", mock.Anything, bill.ID).Return(bill, nil)
		r.tenants.On("FindByID", mock.Anything, tenant.ID).Return(tenant, nil)

		_, err := svc.Pay(ctx, resident, bill.ID)
		assert.True(t, errors.Is(err, shared.ErrConflict))
		assert.Equal(t, hostel.BillStatusPaid, bill.Status)
		assert.Equal(t, now, *bill.PaidAt)
		r.bills.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything)
	})

	t.Run("losing a concurrent payment is a conflict", func(t *testing.T) {
		r := newTestRepos()
		svc := newBillService(r, now)
		tenant := newTestTenant(t, resident)
		bill := newTestBill(t, tenant, "March 2024")

		r.bills.On("FindByID", mock.Anything, bill.ID).Return(bill, nil)
		r.tenants.On("FindByID", mock.Anything, tenant.ID).Return(tenant, nil)
		r.bills.On("MarkPaid", mock.Anything, bill).Return(false, nil)

		_, err := svc.Pay(ctx, resident, bill.ID)
		assert.True(t, errors.Is(err, hostel.ErrBillAlreadyPaid))
	})

	t.Run("another resident cannot pay", func(t *testing.T) {
		r := newTestRepos()
		svc := newBillService(r, now)
		tenant := newTestTenant(t, resident)
		bill := newTestBill(t, tenant, "March 2024")

		r.bills.On("FindByID", mock.Anything, bill.ID).Return(bill, nil)
		r.tenants.On("FindByID", mock.Anything, tenant.ID).Return(tenant, nil)

		_, err := svc.Pay(ctx, residentIdentity(), bill.ID)
		assert.True(t, errors.Is(err, shared.ErrForbidden))
		assert.False(t, bill.IsPaid())
	})

	t.Run("admin may pay on behalf", func(t *testing.T) {
		r := newTestRepos()
		svc := newBillService(r, now)
		tenant := newTestTenant(t, resident)
		bill := newTestBill(t, tenant, "March 2024")
		r.expectNames(tenant)

		r.bills.On("FindByID", mock.Anything, bill.ID).Return(bill, nil)
		r.tenants.On("FindByID", mock.Anything, tenant.ID).Return(tenant, nil)
		r.bills.On("MarkPaid", mock.Anything, bill).Return(true, nil)

		_, err := svc.Pay(ctx, adminIdentity(), bill.ID)
		require.NoError(t, err)
	})

	t.Run("missing bill", func(t *testing.T) {
		r := newTestRepos()
		svc := newBillService(r, now)
		id := uuid.New()
		r.bills.On("FindByID", mock.Anything, id).Return(nil, shared.NewNotFoundError("BILL"))

		_, err := svc.Pay(ctx, resident, id)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})
}

func TestBillService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	admin := adminIdentity()
	resident := residentIdentity()

	t.Run("paid bill cannot be edited", func(t *testing.T) {
		r := newTestRepos()
		svc := newBillService(r, time.Now())
		tenant := newTestTenant(t, resident)
		bill := newTestBill(t, tenant, "March 2024")
		require.NoError(t, bill.Pay(time.Now()))
		r.bills.On("FindByID", mock.Anything, bill.ID).Return(bill, nil)

		amount := decimal.NewFromInt(1)
		_, err := svc.Update(ctx, admin, bill.ID, UpdateBillInput{Amount: &amount})
		assert.True(t, errors.Is(err, shared.ErrConflict))
	})

	t.Run("unpaid bill amount edited", func(t *testing.T) {
		r := newTestRepos()
		svc := newBillService(r, time.Now())
		tenant := newTestTenant(t, resident)
		bill := newTestBill(t, tenant, "March 2024")
		r.expectNames(tenant)
		r.bills.On("FindByID", mock.Anything, bill.ID).Return(bill, nil)
		r.bills.On("Update", mock.Anything, bill).Return(nil)

		amount := decimal.NewFromInt(4200)
		resp, err := svc.Update(ctx, admin, bill.ID, UpdateBillInput{Amount: &amount})
		require.NoError(t, err)
		assert.True(t, resp.Amount.Equal(amount))
	})

	t.Run("delete", func(t *testing.T) {
		r := newTestRepos()
		svc := newBillService(r, time.Now())
		tenant := newTestTenant(t, resident)
		bill := newTestBill(t, tenant, "March 2024")
		r.bills.On("FindByID", mock.Anything, bill.ID).Return(bill, nil)
		r.bills.On("Delete", mock.Anything, bill.ID).Return(nil)

		require.NoError(t, svc.Delete(ctx, admin, bill.ID))
		r.assertExpectations(t)
	})

	t.Run("resident cannot delete", func(t *testing.T) {
		r := newTestRepos()
		svc := newBillService(r, time.Now())
		err := svc.Delete(ctx, resident, uuid.New())
		assert.True(t, errors.Is(err, shared.ErrForbidden))
	})
}

func TestBillService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("resident sees only own bills with totals", func(t *testing.T) {
		r := newTestRepos()
		svc := newBillService(r, time.Now())
		resident := residentIdentity()
		tenant := newTestTenant(t, resident)
		bill := newTestBill(t, tenant, "March 2024")
		r.expectNames(tenant)

		other := uuid.New()
		r.tenants.On("FindByUserID", mock.Anything, resident.UserID).Return(tenant, nil)
		r.bills.On("FindAll", mock.Anything, mock.MatchedBy(func(f hostel.BillFilter) bool {
			return f.TenantID != nil && *f.TenantID == tenant.ID
		})).Return([]*hostel.Bill{bill}, int64(1), nil)
		r.bills.On("SumByTenant", mock.Anything, tenant.ID).Return(hostel.BillTotals{
			Paid:   decimal.NewFromInt(1000),
			Unpaid: decimal.NewFromInt(5000),
		}, nil)

		result, err := svc.List(ctx, resident, BillListFilter{TenantID: &other})
		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		require.NotNil(t, result.Totals)
		assert.True(t, result.Totals.TotalUnpaid.Equal(decimal.NewFromInt(5000)))
	})

	t.Run("admin filters by status", func(t *testing.T) {
		r := newTestRepos()
		svc := newBillService(r, time.Now())
		r.bills.On("FindAll", mock.Anything, mock.MatchedBy(func(f hostel.BillFilter) bool {
			return f.TenantID == nil && f.Status != nil && *f.Status == hostel.BillStatusUnpaid
		})).Return([]*hostel.Bill{}, int64(0), nil)

		result, err := svc.List(ctx, adminIdentity(), BillListFilter{Status: "Unpaid"})
		require.NoError(t, err)
		assert.Empty(t, result.Items)
		assert.Nil(t, result.Totals)
	})

	t.Run("unknown status", func(t *testing.T) {
		r := newTestRepos()
		svc := newBillService(r, time.Now())
		_, err := svc.List(ctx, adminIdentity(), BillListFilter{Status: "Overdue"})
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})
}
