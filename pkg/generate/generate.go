package generate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/xid"

	"github.com/goliatone/go-invoicegen/internal/logging"
	"github.com/goliatone/go-invoicegen/pkg/invoice"
)

// Messages shown to the user at the end of a run.
const (
	SuccessMessage = "Invoice PDF generated successfully!"
	FailurePrefix  = "An error occurred during PDF generation: "
)

// DefaultSuggestedPath is offered by the destination picker when no other
// name is configured.
const DefaultSuggestedPath = "invoice.pdf"

// Collector gathers the invoice and asks where to save it. Both calls return
// invoice.ErrCancelled (or an error matching it) when the user backs out.
type Collector interface {
	Collect(ctx context.Context) (invoice.Record, error)
	PickDestination(ctx context.Context, suggested string) (string, error)
}

// Renderer writes a record to a PDF file.
type Renderer interface {
	Render(ctx context.Context, rec invoice.Record, path string) error
}

// Notifier acknowledges the outcome of a run.
type Notifier interface {
	Success(ctx context.Context, msg string) error
	Failure(ctx context.Context, msg string) error
}

// Outcome classifies a finished run.
type Outcome int

const (
	OutcomeCancelled Outcome = iota
	OutcomeWritten
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeWritten:
		return "written"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Option customises the generator.
type Option func(*Generator)

// WithOutput fixes the destination path, skipping the picker.
func WithOutput(path string) Option {
	return func(g *Generator) {
		g.output = strings.TrimSpace(path)
	}
}

// WithSuggestedPath sets the name offered by the destination picker.
func WithSuggestedPath(path string) Option {
	return func(g *Generator) {
		if strings.TrimSpace(path) != "" {
			g.suggested = path
		}
	}
}

// WithRunID overrides how run identifiers are minted.
func WithRunID(fn func() string) Option {
	return func(g *Generator) {
		if fn != nil {
			g.runID = fn
		}
	}
}

// Generator runs the collect, pick, render and notify steps once per call.
type Generator struct {
	collector Collector
	renderer  Renderer
	notifier  Notifier
	output    string
	suggested string
	runID     func() string
}

// New wires a generator. A nil notifier discards acknowledgements.
func New(collector Collector, renderer Renderer, notifier Notifier, options ...Option) *Generator {
	g := &Generator{
		collector: collector,
		renderer:  renderer,
		notifier:  notifier,
		suggested: DefaultSuggestedPath,
		runID:     func() string { return xid.New().String() },
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	if g.notifier == nil {
		g.notifier = discard{}
	}
	return g
}

// Run performs one generation. Cancellation returns OutcomeCancelled and a nil
// error without writing or notifying anything. Render failures are reported
// through the notifier and return OutcomeFailed with a nil error; the returned
// error is reserved for failures to collect input or to notify.
func (g *Generator) Run(ctx context.Context) (Outcome, error) {
	if g.collector == nil || g.renderer == nil {
		return OutcomeFailed, errors.New("generate: collector and renderer are required")
	}
	runID := g.runID()
	logging.Debug("invoice run started", "run_id", runID)

	rec, err := g.collector.Collect(ctx)
	if errors.Is(err, invoice.ErrCancelled) {
		logging.Info("invoice run cancelled", "run_id", runID, "step", "collect")
		return OutcomeCancelled, nil
	}
	if err != nil {
		return OutcomeFailed, fmt.Errorf("generate: collect: %w", err)
	}

	path := g.output
	if path == "" {
		path, err = g.collector.PickDestination(ctx, g.suggested)
		if errors.Is(err, invoice.ErrCancelled) {
			logging.Info("invoice run cancelled", "run_id", runID, "step", "destination")
			return OutcomeCancelled, nil
		}
		if err != nil {
			return OutcomeFailed, fmt.Errorf("generate: pick destination: %w", err)
		}
	}

	if err := g.renderer.Render(ctx, rec, path); err != nil {
		logging.Error("invoice render failed", "run_id", runID, "path", path, "error", err)
		if nerr := g.notifier.Failure(ctx, FailurePrefix+err.Error()); nerr != nil {
			return OutcomeFailed, fmt.Errorf("generate: notify failure: %w", nerr)
		}
		return OutcomeFailed, nil
	}

	logging.Info("invoice written", "run_id", runID, "path", path, "items", len(rec.Items))
	if err := g.notifier.Success(ctx, SuccessMessage); err != nil {
		return OutcomeWritten, fmt.Errorf("generate: notify success: %w", err)
	}
	return OutcomeWritten, nil
}

type discard struct{}

func (discard) Success(context.Context, string) error { return nil }
func (discard) Failure(context.Context, string) error { return nil }
