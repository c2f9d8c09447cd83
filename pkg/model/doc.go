// Package model defines the typed form model consumed by collectors. A form is
// an ordered list of fields; each field carries a label, an optional default
// and, for constrained inputs, an Enum of allowed values. The textarea format
// marks multi-line inputs. Decorators can fill option lists that are only known
// at runtime; fields opt in through Metadata["options.source"].
package model
