//go:build fyne

package gui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/goliatone/go-invoicegen/pkg/invoice"
	"github.com/goliatone/go-invoicegen/pkg/model"
	"github.com/goliatone/go-invoicegen/pkg/pdf"
)

// GenerateLabel is the caption of the button that starts a run.
const GenerateLabel = "Generate Invoice PDF"

type valueReader func() string

// Collector shows the invoice form in a fyne window. It implements the
// collector and notifier used by the generator.
type Collector struct {
	window  fyne.Window
	readers map[string]valueReader
	order   []string
	button  *widget.Button
	running atomic.Bool

	onGenerate func()
}

// New builds the window for form. Fields with an Enum become selects, textarea
// fields multi-line entries and everything else single-line entries.
func New(app fyne.App, form model.FormModel) *Collector {
	title := form.Title
	if title == "" {
		title = "Invoice Generator"
	}
	c := &Collector{
		window:  app.NewWindow(title),
		readers: make(map[string]valueReader, len(form.Fields)),
	}

	items := make([]*widget.FormItem, 0, len(form.Fields))
	for _, field := range form.Fields {
		items = append(items, widget.NewFormItem(displayLabel(field), c.widgetFor(field)))
	}

	c.button = widget.NewButton(GenerateLabel, c.generate)
	c.button.Importance = widget.HighImportance

	c.window.SetContent(container.NewVScroll(container.NewVBox(widget.NewForm(items...), c.button)))
	c.window.Resize(fyne.NewSize(720, 820))
	return c
}

func (c *Collector) widgetFor(field model.Field) fyne.CanvasObject {
	value, _ := field.Default.(string)
	c.order = append(c.order, field.Name)

	switch {
	case len(field.Enum) > 0:
		options := make([]string, 0, len(field.Enum))
		for _, v := range field.Enum {
			options = append(options, fmt.Sprint(v))
		}
		sel := widget.NewSelect(options, nil)
		sel.SetSelected(value)
		c.readers[field.Name] = func() string { return sel.Selected }
		return sel
	case field.IsTextArea():
		entry := widget.NewMultiLineEntry()
		entry.SetText(value)
		entry.SetMinRowsVisible(5)
		c.readers[field.Name] = func() string { return entry.Text }
		return entry
	default:
		entry := widget.NewEntry()
		entry.SetText(value)
		c.readers[field.Name] = func() string { return entry.Text }
		return entry
	}
}

// Window returns the collector window.
func (c *Collector) Window() fyne.Window {
	return c.window
}

// OnGenerate sets the handler of the generate button. The handler runs on its
// own goroutine and the button stays disabled until it returns, so runs never
// overlap.
func (c *Collector) OnGenerate(fn func()) {
	c.onGenerate = fn
}

func (c *Collector) generate() {
	if c.onGenerate == nil || !c.running.CompareAndSwap(false, true) {
		return
	}
	c.button.Disable()
	go func() {
		defer func() {
			c.running.Store(false)
			c.button.Enable()
		}()
		c.onGenerate()
	}()
}

// Collect snapshots the current widget values.
func (c *Collector) Collect(ctx context.Context) (invoice.Record, error) {
	if err := ctx.Err(); err != nil {
		return invoice.Record{}, err
	}
	values := make(map[string]any, len(c.order))
	for _, name := range c.order {
		values[name] = c.readers[name]()
	}
	return invoice.FromValues(values), nil
}

type pick struct {
	path string
	err  error
}

// PickDestination opens a save dialog and blocks until it is dismissed.
// Closing the dialog returns invoice.ErrCancelled. It must not be called from
// the fyne event loop.
func (c *Collector) PickDestination(ctx context.Context, suggested string) (string, error) {
	result := make(chan pick, 1)
	save := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		switch {
		case err != nil:
			result <- pick{err: err}
		case w == nil:
			result <- pick{err: invoice.ErrCancelled}
		default:
			path := w.URI().Path()
			if cerr := w.Close(); cerr != nil {
				result <- pick{err: cerr}
				return
			}
			result <- pick{path: settleDestination(path)}
		}
	}, c.window)
	save.SetFileName(suggested)
	save.Show()

	select {
	case <-ctx.Done():
		save.Hide()
		return "", ctx.Err()
	case r := <-result:
		return r.path, r.err
	}
}

// settleDestination applies the .pdf extension to the file the save dialog
// created. When that changes the name, the empty file the dialog left behind
// is removed.
func settleDestination(created string) string {
	dest, err := pdf.NormalizePath(created)
	if err != nil || dest == created {
		return created
	}
	if info, err := os.Stat(created); err == nil && info.Mode().IsRegular() && info.Size() == 0 {
		_ = os.Remove(created)
	}
	return dest
}

// Success shows an information dialog.
func (c *Collector) Success(_ context.Context, msg string) error {
	dialog.ShowInformation("Success", msg, c.window)
	return nil
}

// Failure shows an error dialog.
func (c *Collector) Failure(_ context.Context, msg string) error {
	dialog.ShowError(errors.New(msg), c.window)
	return nil
}

func displayLabel(field model.Field) string {
	if field.Label != "" {
		return field.Label
	}
	return field.Name
}
