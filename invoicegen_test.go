package invoicegen

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultRecord(t *testing.T) {
	rec := DefaultRecord()
	if rec.Title != "SALES INVOICE" {
		t.Fatalf("title = %q", rec.Title)
	}
	want := LineItem{Deliverable: "Consulting Services (Jan 2024)", Description: "Detailed consultation on project strategy."}
	if diff := cmp.Diff(want, rec.Items[0]); diff != "" {
		t.Fatalf("first item mismatch (-want +got):\n%s", diff)
	}
	if len(rec.Items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(rec.Items))
	}
}

func TestRenderFileAndRenderTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quick")
	if err := RenderFile(context.Background(), DefaultRecord(), path); err != nil {
		t.Fatalf("render file: %v", err)
	}
	if _, err := os.Stat(path + ".pdf"); err != nil {
		t.Fatalf("expected output file: %v", err)
	}

	var buf bytes.Buffer
	if err := RenderTo(context.Background(), DefaultRecord(), &buf); err != nil {
		t.Fatalf("render to writer: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("missing PDF header")
	}
}
