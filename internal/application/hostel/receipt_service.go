package hostel

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hostel/backend/internal/domain/identity"
	"github.com/hostel/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Receipt output formats
const (
	ReceiptFormatHTML = "html"
	ReceiptFormatPDF  = "pdf"
)

// ReceiptData is everything a receipt template may print
type ReceiptData struct {
	HostelName string
	ReceiptNo  string
	IssuedAt   time.Time
	Bill       BillResponse
	Tenant     TenantResponse
}

// ReceiptTemplate renders receipt data to an HTML document
type ReceiptTemplate interface {
	RenderReceipt(ctx context.Context, data *ReceiptData) (string, error)
}

// PDFConverter turns an HTML document into a PDF
type PDFConverter interface {
	ConvertHTML(ctx context.Context, html, title string) ([]byte, error)
}

// ReceiptStore keeps generated receipts and hands out download links
type ReceiptStore interface {
	PutObject(ctx context.Context, key, contentType string, body []byte) error
	GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, time.Time, error)
}

// ReceiptServiceConfig configures receipt generation
type ReceiptServiceConfig struct {
	HostelName     string
	LinkExpiration time.Duration
	StoragePrefix  string
	DefaultFormat  string
}

// ReceiptService renders receipts for paid bills
type ReceiptService struct {
	txScope   TransactionScope
	gate      *Gate
	template  ReceiptTemplate
	converter PDFConverter // nil when PDF output is disabled
	store     ReceiptStore // nil when object storage is disabled
	config    ReceiptServiceConfig
	logger    *zap.Logger
	now       func() time.Time
}

// NewReceiptService creates a new ReceiptService
func NewReceiptService(txScope TransactionScope, gate *Gate, template ReceiptTemplate, config ReceiptServiceConfig, logger *zap.Logger) *ReceiptService {
	if config.LinkExpiration <= 0 {
		config.LinkExpiration = 15 * time.Minute
	}
	if config.StoragePrefix == "" {
		config.StoragePrefix = "receipts"
	}
	if config.DefaultFormat == "" {
		config.DefaultFormat = ReceiptFormatHTML
	}
	return &ReceiptService{
		txScope:  txScope,
		gate:     gate,
		template: template,
		config:   config,
		logger:   logger,
		now:      time.Now,
	}
}

// SetPDFConverter enables PDF receipts
func (s *ReceiptService) SetPDFConverter(c PDFConverter) {
	s.converter = c
}

// SetStore enables uploading PDF receipts to object storage
func (s *ReceiptService) SetStore(store ReceiptStore) {
	s.store = store
}

// Generate renders the receipt of a paid bill. format is "html" or "pdf";
// empty selects the configured default.
func (s *ReceiptService) Generate(ctx context.Context, actor identity.Identity, billID uuid.UUID, format string) (*Receipt, error) {
	if format == "" {
		format = s.config.DefaultFormat
	}
	if format != ReceiptFormatHTML && format != ReceiptFormatPDF {
		return nil, shared.NewValidationError("INVALID_FORMAT", "Receipt format must be html or pdf")
	}
	if format == ReceiptFormatPDF && s.converter == nil {
		return nil, shared.NewValidationError("PDF_UNAVAILABLE", "PDF receipts are not enabled")
	}

	var data ReceiptData
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		bill, err := repos.Bills().FindByID(ctx, billID)
		if err != nil {
			return err
		}
		tenant, err := repos.Tenants().FindByID(ctx, bill.TenantID)
		if err != nil {
			return err
		}
		if err := s.gate.RequireOwner(actor, tenant); err != nil {
			return err
		}
		if !bill.IsPaid() {
			return shared.NewConflictError("BILL_NOT_PAID", "A receipt is only available for paid bills")
		}

		if data.Tenant, err = tenantResponse(ctx, repos, tenant); err != nil {
			return err
		}
		data.Bill = ToBillResponse(bill, data.Tenant.Username)
		return nil
	})
	if err != nil {
		return nil, err
	}

	data.HostelName = s.config.HostelName
	data.ReceiptNo = receiptNumber(data.Bill)
	data.IssuedAt = s.now()

	html, err := s.template.RenderReceipt(ctx, &data)
	if err != nil {
		return nil, fmt.Errorf("render receipt: %w", err)
	}

	if format == ReceiptFormatHTML {
		return &Receipt{
			BillID:      billID,
			FileName:    data.ReceiptNo + ".html",
			ContentType: "text/html; charset=utf-8",
			Content:     []byte(html),
		}, nil
	}

	pdf, err := s.converter.ConvertHTML(ctx, html, "Receipt "+data.ReceiptNo)
	if err != nil {
		return nil, fmt.Errorf("convert receipt to pdf: %w", err)
	}

	receipt := &Receipt{
		BillID:      billID,
		FileName:    data.ReceiptNo + ".pdf",
		ContentType: "application/pdf",
		Content:     pdf,
	}

	if s.store != nil {
		key := s.config.StoragePrefix + "/" + billID.String() + ".pdf"
		if err := s.store.PutObject(ctx, key, receipt.ContentType, pdf); err != nil {
			s.logger.Warn("Failed to store receipt", zap.String("key", key), zap.Error(err))
			return receipt, nil
		}
		url, _, err := s.store.GenerateDownloadURL(ctx, key, s.config.LinkExpiration)
		if err != nil {
			s.logger.Warn("Failed to presign receipt URL", zap.String("key", key), zap.Error(err))
			return receipt, nil
		}
		receipt.DownloadURL = url
	}

	s.logger.Info("Receipt generated",
		zap.String("bill_id", billID.String()),
		zap.Int("bytes", len(pdf)),
		zap.Bool("stored", receipt.DownloadURL != ""))

	return receipt, nil
}

func receiptNumber(b BillResponse) string {
	paid := b.CreatedAt
	if b.PaidAt != nil {
		paid = *b.PaidAt
	}
	return fmt.Sprintf("RCPT-%s-%s", paid.Format("20060102"), b.ID.String()[:8])
}
