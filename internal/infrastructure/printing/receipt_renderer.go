package printing

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	apphostel "github.com/hostel/backend/internal/application/hostel"
	"github.com/hostel/backend/internal/infrastructure/telemetry"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

//go:embed templates/*.html
var templateFS embed.FS

const receiptTemplateFile = "templates/receipt.html"

// RendererConfig configures receipt rendering
type RendererConfig struct {
	Locale   string // BCP 47 tag, defaults to "en"
	Currency string // ISO 4217 code printed before amounts
	Location *time.Location
}

// ReceiptRenderer renders receipts from the embedded HTML template
type ReceiptRenderer struct {
	tmpl     *template.Template
	tag      language.Tag
	printer  *message.Printer
	currency string
	location *time.Location
}

type receiptView struct {
	*apphostel.ReceiptData
	Lang string
}

// NewReceiptRenderer parses the receipt template for the configured locale
func NewReceiptRenderer(cfg RendererConfig) (*ReceiptRenderer, error) {
	tag := language.English
	if cfg.Locale != "" {
		parsed, err := language.Parse(cfg.Locale)
		if err != nil {
			return nil, fmt.Errorf("invalid receipt locale %q: %w", cfg.Locale, err)
		}
		tag = parsed
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	r := &ReceiptRenderer{
		tag:      tag,
		printer:  message.NewPrinter(tag),
		currency: strings.ToUpper(strings.TrimSpace(cfg.Currency)),
		location: loc,
	}

	tmpl, err := template.New("receipt.html").Funcs(template.FuncMap{
		"formatMoney":    r.formatMoney,
		"formatDate":     r.formatDate,
		"formatDateTime": r.formatDateTime,
		"tenantName":     tenantName,
	}).ParseFS(templateFS, receiptTemplateFile)
	if err != nil {
		return nil, fmt.Errorf("parse receipt template: %w", err)
	}
	r.tmpl = tmpl

	return r, nil
}

// RenderReceipt renders data as a standalone HTML document
func (r *ReceiptRenderer) RenderReceipt(ctx context.Context, data *apphostel.ReceiptData) (string, error) {
	if data == nil {
		return "", fmt.Errorf("receipt data is nil")
	}

	var buf bytes.Buffer
	var execErr error
	telemetry.WithProfilingLabels(ctx, telemetry.OperationLabels("receipt.render"), func(context.Context) {
		execErr = r.tmpl.Execute(&buf, receiptView{ReceiptData: data, Lang: r.tag.String()})
	})
	if execErr != nil {
		return "", fmt.Errorf("execute receipt template: %w", execErr)
	}
	return buf.String(), nil
}

// formatMoney groups digits by locale and keeps two decimals: "INR 4,500.00"
func (r *ReceiptRenderer) formatMoney(d decimal.Decimal) string {
	amount := r.printer.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2)))
	if r.currency == "" {
		return amount
	}
	return r.currency + " " + amount
}

func (r *ReceiptRenderer) formatDate(v any) string {
	t, ok := asTime(v)
	if !ok {
		return ""
	}
	return t.In(r.location).Format("02 Jan 2006")
}

func (r *ReceiptRenderer) formatDateTime(v any) string {
	t, ok := asTime(v)
	if !ok {
		return ""
	}
	return t.In(r.location).Format("02 Jan 2006 15:04")
}

func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, !t.IsZero()
	case *time.Time:
		if t == nil || t.IsZero() {
			return time.Time{}, false
		}
		return *t, true
	}
	return time.Time{}, false
}

func tenantName(t apphostel.TenantResponse) string {
	if t.DisplayName != "" {
		return t.DisplayName
	}
	return t.Username
}

var _ apphostel.ReceiptTemplate = (*ReceiptRenderer)(nil)
