// Package invoicegen turns a filled-in invoice form into a single-page PDF.
//
// The top-level package re-exports the pieces most callers need. The form
// lives in pkg/invoice, terminal and desktop collectors in pkg/collector, the
// layout and drawing in pkg/pdf and the end-to-end run in pkg/generate.
package invoicegen
