package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/hostel/backend/internal/domain/hostel"
	"github.com/hostel/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMockBillRepository creates a GormBillRepository with a mocked SQL connection
func newMockBillRepository(t *testing.T) (*GormBillRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, mockDB := newMockDatabase(t)
	return NewGormBillRepository(db.DB), mock, mockDB
}

func paidBill(t *testing.T) *hostel.Bill {
	bill, err := hostel.NewBill(uuid.New(), "March 2024", decimal.NewFromInt(1500))
	require.NoError(t, err)
	require.NoError(t, bill.Pay(time.Now()))
	return bill
}

func TestGormBillRepository_MarkPaid(t *testing.T) {
	t.Run("updates an unpaid bill", func(t *testing.T) {
		repo, mock, mockDB := newMockBillRepository(t)
		defer mockDB.Close()

		bill := paidBill(t)

		mock.ExpectExec(`UPDATE "bills" SET .* WHERE id = \$5 AND status = \$6`).
			WithArgs(sqlmock.AnyArg(), hostel.BillStatusPaid, sqlmock.AnyArg(), bill.Version, bill.ID, hostel.BillStatusUnpaid).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.MarkPaid(context.Background(), bill)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports false when the bill was already paid", func(t *testing.T) {
		repo, mock, mockDB := newMockBillRepository(t)
		defer mockDB.Close()

		bill := paidBill(t)

		mock.ExpectExec(`UPDATE "bills" SET .* WHERE id = \$5 AND status = \$6`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.MarkPaid(context.Background(), bill)

		require.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates driver errors", func(t *testing.T) {
		repo, mock, mockDB := newMockBillRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`UPDATE "bills"`).WillReturnError(sql.ErrConnDone)

		ok, err := repo.MarkPaid(context.Background(), paidBill(t))

		assert.ErrorIs(t, err, sql.ErrConnDone)
		assert.False(t, ok)
	})
}

func TestGormBillRepository_FindByID(t *testing.T) {
	t.Run("finds existing bill", func(t *testing.T) {
		repo, mock, mockDB := newMockBillRepository(t)
		defer mockDB.Close()

		billID := uuid.New()
		tenantID := uuid.New()
		now := time.Now()

		rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "version", "tenant_id", "month", "amount", "status", "paid_at"}).
			AddRow(billID, now, now, 1, tenantID, "March 2024", "1500.00", "Unpaid", nil)

		mock.ExpectQuery(`SELECT \* FROM "bills" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(billID, 1).
			WillReturnRows(rows)

		bill, err := repo.FindByID(context.Background(), billID)

		require.NoError(t, err)
		assert.Equal(t, billID, bill.ID)
		assert.Equal(t, tenantID, bill.TenantID)
		assert.Equal(t, hostel.BillStatusUnpaid, bill.Status)
		assert.True(t, decimal.NewFromInt(1500).Equal(bill.Amount))
		assert.Nil(t, bill.PaidAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing rows to not found", func(t *testing.T) {
		repo, mock, mockDB := newMockBillRepository(t)
		defer mockDB.Close()

		billID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "bills" WHERE id = \$1`).
			WithArgs(billID, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		bill, err := repo.FindByID(context.Background(), billID)

		assert.Nil(t, bill)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "BILL_NOT_FOUND", de.Code)
	})
}

func TestGormRoomRepository_FindByIDForUpdate(t *testing.T) {
	db, mock, mockDB := newMockDatabase(t)
	defer mockDB.Close()
	repo := NewGormRoomRepository(db.DB)

	roomID := uuid.New()
	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "rooms" WHERE id = \$1 ORDER BY .* LIMIT \$2 FOR UPDATE`).
		WithArgs(roomID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at", "version", "room_number", "capacity", "rent"}).
			AddRow(roomID, now, now, 1, "101", 2, "1500.00"))

	room, err := repo.FindByIDForUpdate(context.Background(), roomID)

	require.NoError(t, err)
	assert.Equal(t, "101", room.Number)
	assert.Equal(t, 2, room.Capacity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRoomRepository_Delete(t *testing.T) {
	t.Run("missing room is not found", func(t *testing.T) {
		db, mock, mockDB := newMockDatabase(t)
		defer mockDB.Close()
		repo := NewGormRoomRepository(db.DB)

		roomID := uuid.New()
		mock.ExpectExec(`DELETE FROM "rooms" WHERE id = \$1`).
			WithArgs(roomID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), roomID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
