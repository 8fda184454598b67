// Package printing renders bill receipts.
//
// ReceiptRenderer fills the embedded HTML receipt template with locale-aware
// money and date formatting. ChromedpConverter prints that HTML to PDF with a
// headless Chrome instance:
//
//	renderer, err := printing.NewReceiptRenderer(printing.RendererConfig{Locale: "en-IN", Currency: "INR"})
//	html, err := renderer.RenderReceipt(ctx, data)
//
//	converter, err := printing.NewChromedpConverter(printing.ChromedpConfig{Timeout: 30 * time.Second})
//	defer converter.Close()
//	pdf, err := converter.ConvertHTML(ctx, html, "Receipt RCPT-20260305-1a2b3c4d")
package printing
