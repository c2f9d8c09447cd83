//go:build fyne

// Package gui is the desktop front end: a fyne window holding the invoice
// form, a save dialog for the destination and modal acknowledgements.
// Build with -tags fyne.
package gui
