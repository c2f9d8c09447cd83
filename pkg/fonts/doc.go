// Package fonts keeps the set of typefaces an invoice can be rendered with.
// The three PDF core fonts are always present; TrueType fonts can be added at
// startup. Lookups never fail: unknown names resolve to a caller-supplied
// fallback.
package fonts
