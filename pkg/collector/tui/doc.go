// Package tui collects invoice form values in the terminal.
//
// The Collector walks a model.FormModel through a PromptDriver: plain fields
// become inputs, textarea fields multi-line editors and enum fields selects.
// The default driver is backed by github.com/AlecAivazis/survey/v2; tests and
// non-interactive runs swap in their own. Interrupting a prompt returns
// ErrAborted, which matches invoice.ErrCancelled.
package tui
