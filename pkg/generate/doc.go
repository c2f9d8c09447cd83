// Package generate runs one invoice generation: collect the form, choose a
// destination, render the PDF and acknowledge the result. Each run is tagged
// with an xid in the logs.
package generate
