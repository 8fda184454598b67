package hostel

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/hostel/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BillStatus is the settlement state of a bill. Unpaid -> Paid is the only transition.
type BillStatus string

const (
	BillStatusUnpaid BillStatus = "Unpaid"
	BillStatusPaid   BillStatus = "Paid"
)

// MaxMonthLength is the longest accepted period label
const MaxMonthLength = 20

// IsValid reports whether s is a known status
func (s BillStatus) IsValid() bool {
	return s == BillStatusUnpaid || s == BillStatusPaid
}

// ParseBillStatus parses a status, case-insensitively
func ParseBillStatus(s string) (BillStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unpaid":
		return BillStatusUnpaid, nil
	case "paid":
		return BillStatusPaid, nil
	}
	return "", shared.NewValidationError("INVALID_BILL_STATUS", "Unknown bill status %q", s)
}

var monthCaser = cases.Title(language.English)

// NormalizeMonth collapses whitespace and title-cases a period label,
// so "march  2024" and "March 2024" name the same period.
func NormalizeMonth(month string) string {
	return monthCaser.String(strings.Join(strings.Fields(month), " "))
}

// Bill is a monthly charge owed by a tenant
type Bill struct {
	shared.BaseAggregateRoot
	TenantID uuid.UUID
	Month    string
	Amount   decimal.Decimal
	Status   BillStatus
	PaidAt   *time.Time
}

// BillUpdate carries the optional fields of a bill edit
type BillUpdate struct {
	Month  *string
	Amount *decimal.Decimal
}

// NewBill creates an unpaid bill
func NewBill(tenantID uuid.UUID, month string, amount decimal.Decimal) (*Bill, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewValidationError("INVALID_TENANT_ID", "Tenant ID cannot be empty")
	}
	month = NormalizeMonth(month)
	if err := validateMonth(month); err != nil {
		return nil, err
	}
	if err := validateMoney("amount", amount); err != nil {
		return nil, err
	}

	bill := &Bill{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		TenantID:          tenantID,
		Month:             month,
		Amount:            amount,
		Status:            BillStatusUnpaid,
	}
	bill.Raise(NewBillCreatedEvent(bill))

	return bill, nil
}

// IsPaid reports whether the bill has been settled
func (b *Bill) IsPaid() bool {
	return b.Status == BillStatusPaid
}

// Pay settles the bill. Paying a paid bill is a conflict and leaves PaidAt untouched.
func (b *Bill) Pay(now time.Time) error {
	if b.IsPaid() {
		return ErrBillAlreadyPaid
	}

	b.Status = BillStatusPaid
	b.PaidAt = &now
	b.MarkChangedAt(now)
	b.Raise(NewBillPaidEvent(b))

	return nil
}

// Update edits month and amount of an unpaid bill
func (b *Bill) Update(u BillUpdate) error {
	if b.IsPaid() {
		return shared.NewConflictError("BILL_ALREADY_PAID", "A paid bill cannot be edited")
	}

	month := b.Month
	if u.Month != nil {
		month = NormalizeMonth(*u.Month)
		if err := validateMonth(month); err != nil {
			return err
		}
	}
	amount := b.Amount
	if u.Amount != nil {
		amount = *u.Amount
		if err := validateMoney("amount", amount); err != nil {
			return err
		}
	}

	b.Month = month
	b.Amount = amount
	b.MarkChanged()

	return nil
}

// ErrBillAlreadyPaid is returned when paying a bill twice
var ErrBillAlreadyPaid = shared.NewConflictError("BILL_ALREADY_PAID", "Bill is already paid")

func validateMonth(month string) error {
	if month == "" {
		return shared.NewValidationError("INVALID_MONTH", "Month cannot be empty")
	}
	if utf8.RuneCountInString(month) > MaxMonthLength {
		return shared.NewValidationError("INVALID_MONTH", "Month cannot exceed %d characters", MaxMonthLength)
	}
	return nil
}
