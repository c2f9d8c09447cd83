// Package invoice holds the invoice form definition and the Record snapshot
// handed from a collector to the renderer. A Record is built once from the
// collected values and never mutated afterwards.
package invoice
