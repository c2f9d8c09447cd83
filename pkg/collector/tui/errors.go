package tui

import (
	"fmt"

	"github.com/goliatone/go-invoicegen/pkg/invoice"
)

// ErrAborted signals the user aborted input (e.g., Ctrl+C). It matches
// invoice.ErrCancelled.
var ErrAborted = fmt.Errorf("tui: aborted: %w", invoice.ErrCancelled)
