//go:build fyne

// Command invoicegen-gui is the desktop front end. Build with -tags fyne.
package main
