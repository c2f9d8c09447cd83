// Package pdf renders an invoice Record onto a single A4 page: an upper-cased
// title, the sender and client address blocks side by side, and a two-column
// line-item table closed by a bold total row.
//
// Rendering happens in two steps. BuildLayout positions every element using a
// Measurer for text widths and is free of I/O; the Renderer then draws that
// layout with fpdf and writes it out. All coordinates are fixed, so long
// address blocks may overlap the table, which always starts at the same
// height.
//
// Failures are reported as *Error values of one of three kinds (invalid path,
// layout, I/O). Unknown fonts are not failures: they fall back to Helvetica for
// the header and Times-Roman for the body.
package pdf
