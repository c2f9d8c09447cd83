// Package logging wraps a process-wide zerolog logger behind small
// Debug/Info/Warn/Error helpers that take alternating key/value pairs.
package logging
