package generate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-invoicegen/internal/logging"
	"github.com/goliatone/go-invoicegen/pkg/invoice"
	"github.com/goliatone/go-invoicegen/pkg/pdf"
)

type stubCollector struct {
	rec        invoice.Record
	collectErr error
	path       string
	pickErr    error
	suggested  []string
}

func (s *stubCollector) Collect(context.Context) (invoice.Record, error) {
	return s.rec, s.collectErr
}

func (s *stubCollector) PickDestination(_ context.Context, suggested string) (string, error) {
	s.suggested = append(s.suggested, suggested)
	return s.path, s.pickErr
}

type recordingNotifier struct {
	successes []string
	failures  []string
}

func (n *recordingNotifier) Success(_ context.Context, msg string) error {
	n.successes = append(n.successes, msg)
	return nil
}

func (n *recordingNotifier) Failure(_ context.Context, msg string) error {
	n.failures = append(n.failures, msg)
	return nil
}

type failingRenderer struct{ err error }

func (f failingRenderer) Render(context.Context, invoice.Record, string) error {
	return f.err
}

func sampleRecord() invoice.Record {
	return invoice.FromValues(invoice.DefaultValues().Values())
}

func TestRun_WritesAndAcknowledges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out")
	collector := &stubCollector{rec: sampleRecord(), path: path}
	notifier := &recordingNotifier{}

	outcome, err := New(collector, pdf.New(), notifier, WithSuggestedPath("acme.pdf")).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, OutcomeWritten, outcome)
	assert.Equal(t, []string{"acme.pdf"}, collector.suggested)
	assert.Equal(t, []string{SuccessMessage}, notifier.successes)
	assert.Empty(t, notifier.failures)
	info, err := os.Stat(path + ".pdf")
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestRun_CancelledPickerIsSilent(t *testing.T) {
	dir := t.TempDir()
	collector := &stubCollector{rec: sampleRecord(), pickErr: invoice.ErrCancelled}
	notifier := &recordingNotifier{}
	renderer := failingRenderer{err: errors.New("must not render")}

	outcome, err := New(collector, renderer, notifier).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, OutcomeCancelled, outcome)
	assert.Empty(t, notifier.successes)
	assert.Empty(t, notifier.failures)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRun_CancelledCollectIsSilent(t *testing.T) {
	collector := &stubCollector{collectErr: fmt.Errorf("prompt: %w", invoice.ErrCancelled)}
	notifier := &recordingNotifier{}

	outcome, err := New(collector, pdf.New(), notifier).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeCancelled, outcome)
	assert.Empty(t, collector.suggested)
	assert.Empty(t, notifier.successes)
	assert.Empty(t, notifier.failures)
}

func TestRun_RenderFailureIsReported(t *testing.T) {
	collector := &stubCollector{rec: sampleRecord(), path: "out.pdf"}
	notifier := &recordingNotifier{}

	outcome, err := New(collector, failingRenderer{err: errors.New("disk full")}, notifier).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, OutcomeFailed, outcome)
	assert.Empty(t, notifier.successes)
	assert.Equal(t, []string{"An error occurred during PDF generation: disk full"}, notifier.failures)
}

func TestRun_InvalidPathIsReported(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing", "invoice.pdf")
	collector := &stubCollector{rec: sampleRecord(), path: missing}
	notifier := &recordingNotifier{}

	outcome, err := New(collector, pdf.New(), notifier).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, OutcomeFailed, outcome)
	require.Len(t, notifier.failures, 1)
	assert.Contains(t, notifier.failures[0], FailurePrefix)
	assert.Contains(t, notifier.failures[0], missing)
}

func TestRun_OutputSkipsPicker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixed.pdf")
	collector := &stubCollector{rec: sampleRecord(), pickErr: errors.New("picker must not run")}
	notifier := &recordingNotifier{}

	outcome, err := New(collector, pdf.New(), notifier, WithOutput(path)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, OutcomeWritten, outcome)
	assert.Empty(t, collector.suggested)
	assert.FileExists(t, path)
}

func TestRun_CollectErrorIsReturned(t *testing.T) {
	collector := &stubCollector{collectErr: errors.New("terminal gone")}

	outcome, err := New(collector, pdf.New(), nil).Run(context.Background())
	assert.Equal(t, OutcomeFailed, outcome)
	assert.ErrorContains(t, err, "terminal gone")
}

func TestRun_TagsLogsWithRunID(t *testing.T) {
	var buf bytes.Buffer
	logging.SetLoggerForTest(zerolog.New(&buf).Level(zerolog.DebugLevel))
	t.Cleanup(func() { logging.SetLoggerForTest(zerolog.Nop()) })

	collector := &stubCollector{rec: sampleRecord(), path: "out.pdf"}
	renderer := failingRenderer{err: errors.New("boom")}

	_, err := New(collector, renderer, nil, WithRunID(func() string { return "run-1" })).Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"run_id":"run-1"`)
	assert.Contains(t, buf.String(), `"error":"boom"`)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "written", OutcomeWritten.String())
	assert.Equal(t, "outcome(9)", Outcome(9).String())
}
