package pdf

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/goliatone/go-invoicegen/internal/logging"
	"github.com/goliatone/go-invoicegen/pkg/fonts"
	"github.com/goliatone/go-invoicegen/pkg/invoice"
)

// Option configures the Renderer.
type Option func(*Renderer)

// WithFonts sets the registry used to resolve header and body fonts.
func WithFonts(registry *fonts.Registry) Option {
	return func(r *Renderer) {
		if registry != nil {
			r.fonts = registry
		}
	}
}

// WithClock overrides the creation timestamp source. A fixed clock makes
// repeated renders of the same record produce equivalent documents.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		if now != nil {
			r.now = now
		}
	}
}

// Renderer turns an invoice Record into a one-page PDF.
type Renderer struct {
	fonts *fonts.Registry
	now   func() time.Time
}

// New constructs a Renderer with the core fonts and the wall clock.
func New(options ...Option) *Renderer {
	r := &Renderer{
		fonts: fonts.NewRegistry(),
		now:   time.Now,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Layout measures and positions the page for rec without writing anything.
func (r *Renderer) Layout(ctx context.Context, rec invoice.Record) (Layout, error) {
	_, layout, err := r.build(ctx, rec)
	return layout, err
}

// Render writes the invoice to path. The .pdf extension is appended when
// missing. The file is created and closed within the call; a failed write may
// leave a truncated file behind.
func (r *Renderer) Render(ctx context.Context, rec invoice.Record, path string) error {
	dest, err := NormalizePath(path)
	if err != nil {
		return err
	}

	doc, _, err := r.build(ctx, rec)
	if err != nil {
		return err
	}
	if err := doc.pdf.OutputFileAndClose(dest); err != nil {
		return ioError("write", dest, err)
	}
	logging.Debug("invoice written", "path", dest)
	return nil
}

// Write renders the invoice into w.
func (r *Renderer) Write(ctx context.Context, rec invoice.Record, w io.Writer) error {
	doc, _, err := r.build(ctx, rec)
	if err != nil {
		return err
	}
	if err := doc.pdf.Output(w); err != nil {
		return ioError("write", "", err)
	}
	return nil
}

func (r *Renderer) build(ctx context.Context, rec invoice.Record) (doc *document, layout Layout, err error) {
	if err := ctx.Err(); err != nil {
		return nil, Layout{}, err
	}

	defer func() {
		if p := recover(); p != nil {
			doc, layout, err = nil, Layout{}, layoutError("render", fmt.Errorf("%v", p))
		}
	}()

	header, body := ResolveFonts(rec, r.fonts)
	if header.Name != rec.HeaderFont {
		logging.Debug("header font substituted", "requested", rec.HeaderFont, "used", header.Name)
	}
	if body.Name != rec.BodyFont {
		logging.Debug("body font substituted", "requested", rec.BodyFont, "used", body.Name)
	}

	doc = newDocument(r.now(), rec.Title)
	doc.load(header)
	doc.load(body)

	layout = BuildLayout(rec, r.fonts, doc)
	doc.draw(layout)

	if doc.pdf.Err() {
		return nil, Layout{}, layoutError("render", doc.pdf.Error())
	}
	return doc, layout, nil
}
