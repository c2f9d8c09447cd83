package invoicegen

import (
	"context"
	"io"

	"github.com/goliatone/go-invoicegen/pkg/generate"
	"github.com/goliatone/go-invoicegen/pkg/invoice"
	"github.com/goliatone/go-invoicegen/pkg/pdf"
)

// Record aliases invoice.Record for callers that only need the top-level
// package.
type Record = invoice.Record

// LineItem aliases invoice.LineItem.
type LineItem = invoice.LineItem

// Defaults aliases invoice.Defaults.
type Defaults = invoice.Defaults

// ErrCancelled reports that the user backed out of a run.
var ErrCancelled = invoice.ErrCancelled

// DefaultRecord returns the example invoice the form opens with.
func DefaultRecord() Record {
	return RecordFrom(invoice.DefaultValues())
}

// RecordFrom builds the record a collector would return if every field kept
// its default.
func RecordFrom(d Defaults) Record {
	return invoice.FromValues(d.Values())
}

// NewRenderer exposes the PDF renderer constructor.
func NewRenderer(options ...pdf.Option) *pdf.Renderer {
	return pdf.New(options...)
}

// NewGenerator exposes the generator constructor.
func NewGenerator(collector generate.Collector, renderer generate.Renderer, notifier generate.Notifier, options ...generate.Option) *generate.Generator {
	return generate.New(collector, renderer, notifier, options...)
}

// RenderFile writes rec to path as a PDF, appending the .pdf extension when
// missing. It is the simplest entry point for callers that already hold a
// record.
func RenderFile(ctx context.Context, rec Record, path string, options ...pdf.Option) error {
	return pdf.New(options...).Render(ctx, rec, path)
}

// RenderTo writes rec as a PDF into w.
func RenderTo(ctx context.Context, rec Record, w io.Writer, options ...pdf.Option) error {
	return pdf.New(options...).Write(ctx, rec, w)
}
