package printing

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	apphostel "github.com/hostel/backend/internal/application/hostel"
	"github.com/hostel/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const (
	defaultChromeTimeout = 30 * time.Second
	// 80mm thermal roll
	defaultPaperWidth  = 3.15
	defaultPaperHeight = 8.0
)

// ErrEmptyHTML is returned when there is nothing to print
var ErrEmptyHTML = errors.New("printing: HTML content is empty")

// ChromedpConfig contains configuration for the chromedp converter
type ChromedpConfig struct {
	// ExecPath of the Chrome binary; empty lets chromedp find one
	ExecPath string
	// RemoteURL of a running Chrome DevTools endpoint; overrides ExecPath
	RemoteURL string
	Timeout   time.Duration
	// NoSandbox is needed when running as root in a container
	NoSandbox   bool
	PaperWidth  float64 // inches
	PaperHeight float64 // inches
	Logger      *zap.Logger
}

// ChromedpConverter prints HTML to PDF through the Chrome DevTools Protocol
type ChromedpConverter struct {
	config      ChromedpConfig
	logger      *zap.Logger
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

// NewChromedpConverter creates a converter. The browser starts lazily on
// the first conversion.
func NewChromedpConverter(config ChromedpConfig) (*ChromedpConverter, error) {
	if config.Timeout <= 0 {
		config.Timeout = defaultChromeTimeout
	}
	if config.PaperWidth <= 0 {
		config.PaperWidth = defaultPaperWidth
	}
	if config.PaperHeight <= 0 {
		config.PaperHeight = defaultPaperHeight
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &ChromedpConverter{
		config: config,
		logger: logger.Named("chromedp"),
	}

	if config.RemoteURL != "" {
		c.allocCtx, c.allocCancel = chromedp.NewRemoteAllocator(context.Background(), config.RemoteURL)
		return c, nil
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.DisableGPU,
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("font-render-hinting", "none"),
	)
	if config.NoSandbox {
		opts = append(opts, chromedp.NoSandbox)
	}
	if config.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(config.ExecPath))
	}
	c.allocCtx, c.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)

	return c, nil
}

// ConvertHTML prints doc to a single-column PDF
func (c *ChromedpConverter) ConvertHTML(ctx context.Context, doc, title string) ([]byte, error) {
	if strings.TrimSpace(doc) == "" {
		return nil, ErrEmptyHTML
	}

	ctx, span := telemetry.StartClientSpan(ctx, "chromedp", "print_to_pdf",
		attribute.Int("html.bytes", len(doc)))
	var err error
	defer func() { telemetry.EndSpan(span, err) }()

	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	browserCtx, browserCancel := chromedp.NewContext(c.allocCtx,
		chromedp.WithLogf(func(format string, args ...any) {
			c.logger.Debug(fmt.Sprintf(format, args...))
		}),
	)
	defer browserCancel()

	// stop the browser tab when the caller's deadline passes
	stop := context.AfterFunc(ctx, browserCancel)
	defer stop()

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, wrapDocument(doc, title)).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(c.config.PaperWidth).
				WithPaperHeight(c.config.PaperHeight).
				WithMarginTop(0.2).
				WithMarginBottom(0.2).
				WithMarginLeft(0.15).
				WithMarginRight(0.15).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = data
			return nil
		}),
	)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("pdf rendering timed out after %v: %w", c.config.Timeout, err)
			return nil, err
		}
		c.logger.Error("chromedp rendering failed", zap.Error(err))
		err = fmt.Errorf("chromedp execution failed: %w", err)
		return nil, err
	}
	if len(pdf) == 0 {
		err = errors.New("generated PDF is empty")
		return nil, err
	}

	c.logger.Debug("PDF rendered",
		zap.Int("bytes", len(pdf)),
		zap.Duration("duration", time.Since(start)))

	return pdf, nil
}

// Close shuts the browser down
func (c *ChromedpConverter) Close() error {
	if c.allocCancel != nil {
		c.allocCancel()
	}
	return nil
}

// wrapDocument completes an HTML fragment into a document with a title
func wrapDocument(doc, title string) string {
	lower := strings.ToLower(doc)
	if strings.Contains(lower, "<!doctype") || strings.Contains(lower, "<html") {
		return doc
	}

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html><head><meta charset="UTF-8">`)
	if title != "" {
		b.WriteString("<title>")
		b.WriteString(html.EscapeString(title))
		b.WriteString("</title>")
	}
	b.WriteString("</head><body>")
	b.WriteString(doc)
	b.WriteString("</body></html>")
	return b.String()
}

var _ apphostel.PDFConverter = (*ChromedpConverter)(nil)
