package hostel

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hostel/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubTemplate struct{}

func (stubTemplate) RenderReceipt(_ context.Context, data *ReceiptData) (string, error) {
	return "<p>" + data.ReceiptNo + " " + data.Bill.Month + "</p>", nil
}

type stubConverter struct{ calls int }

func (c *stubConverter) ConvertHTML(_ context.Context, html, _ string) ([]byte, error) {
	c.calls++
	return []byte("%PDF-" + html), nil
}

type MockReceiptStore struct {
	mock.Mock
}

func (m *MockReceiptStore) PutObject(ctx context.Context, key, contentType string, body []byte) error {
	return m.Called(ctx, key, contentType, body).Error(0)
}

func (m *MockReceiptStore) GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, key, expiresIn)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func TestReceiptService_Generate(t *testing.T) {
	ctx := context.Background()
	owner := residentIdentity()

	t.Run("unpaid bill has no receipt", func(t *testing.T) {
		r := newTestRepos()
		svc := NewReceiptService(r.scope, NewGate(nil), stubTemplate{}, ReceiptServiceConfig{HostelName: "Sunrise"}, zap.NewNop())
		tenant := newTestTenant(t, owner)
		bill := newTestBill(t, tenant, "March 2024")
		r.bills.On("FindByID", mock.Anything, bill.ID).Return(bill, nil)
		r.tenants.On("FindByID", mock.Anything, tenant.ID).Return(tenant, nil)

		_, err := svc.Generate(ctx, owner, bill.ID, "")
		assert.True(t, errors.Is(err, shared.ErrConflict))
	})

	t.Run("html receipt for owner", func(t *testing.T) {
		r := newTestRepos()
		svc := NewReceiptService(r.scope, NewGate(nil), stubTemplate{}, ReceiptServiceConfig{HostelName: "Sunrise"}, zap.NewNop())
		tenant := newTestTenant(t, owner)
		bill := newTestBill(t, tenant, "March 2024")
		require.NoError(t, bill.Pay(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))
		r.expectNames(tenant)
		r.bills.On("FindByID", mock.Anything, bill.ID).Return(bill, nil)
		r.tenants.On("FindByID", mock.Anything, tenant.ID).Return(tenant, nil)

		receipt, err := svc.Generate(ctx, owner, bill.ID, ReceiptFormatHTML)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(receipt.FileName, "RCPT-20240305-"))
		assert.Contains(t, string(receipt.Content), "March 2024")
		assert.Equal(t, "text/html; charset=utf-8", receipt.ContentType)
	})

	t.Run("pdf is uploaded and linked", func(t *testing.T) {
		r := newTestRepos()
		svc := NewReceiptService(r.scope, NewGate(nil), stubTemplate{}, ReceiptServiceConfig{}, zap.NewNop())
		conv := &stubConverter{}
		store := new(MockReceiptStore)
		svc.SetPDFConverter(conv)
		svc.SetStore(store)

		tenant := newTestTenant(t, owner)
		bill := newTestBill(t, tenant, "March 2024")
		require.NoError(t, bill.Pay(time.Now()))
		r.expectNames(tenant)
		r.bills.On("FindByID", mock.Anything, bill.ID).Return(bill, nil)
		r.tenants.On("FindByID", mock.Anything, tenant.ID).Return(tenant, nil)

		key := "receipts/" + bill.ID.String() + ".pdf"
		store.On("PutObject", mock.Anything, key, "application/pdf", mock.Anything).Return(nil)
		store.On("GenerateDownloadURL", mock.Anything, key, 15*time.Minute).
			Return("https://s3.local/"+key, time.Now().Add(15*time.Minute), nil)

		receipt, err := svc.Generate(ctx, adminIdentity(), bill.ID, ReceiptFormatPDF)
		require.NoError(t, err)
		assert.Equal(t, 1, conv.calls)
		assert.Equal(t, "https://s3.local/"+key, receipt.DownloadURL)
		store.AssertExpectations(t)
	})

	t.Run("pdf unavailable without converter", func(t *testing.T) {
		r := newTestRepos()
		svc := NewReceiptService(r.scope, NewGate(nil), stubTemplate{}, ReceiptServiceConfig{}, zap.NewNop())
		_, err := svc.Generate(ctx, owner, newTestTenant(t, owner).ID, ReceiptFormatPDF)
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})

	t.Run("stranger forbidden", func(t *testing.T) {
		r := newTestRepos()
		svc := NewReceiptService(r.scope, NewGate(nil), stubTemplate{}, ReceiptServiceConfig{}, zap.NewNop())
		tenant := newTestTenant(t, owner)
		bill := newTestBill(t, tenant, "March 2024")
		require.NoError(t, bill.Pay(time.Now()))
		r.bills.On("FindByID", mock.Anything, bill.ID).Return(bill, nil)
		r.tenants.On("FindByID", mock.Anything, tenant.ID).Return(tenant, nil)

		_, err := svc.Generate(ctx, residentIdentity(), bill.ID, "")
		assert.True(t, errors.Is(err, shared.ErrForbidden))
	})
}
