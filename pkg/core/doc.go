// Package core provides the foundational types shared by the toolkit.
//
// It defines the structured error taxonomy used across all packages,
// small capability interfaces implemented nominally by library types,
// and helpers that resolve functions and arbitrary values to stable
// display names for diagnostics.
//
// Errors carry the name of the operation that raised them, a message
// template with named placeholders, and optional context values. They
// render consistently as:
//
//	ValueError: (NormalizeRanges) end must be positive
//
// and participate in errors.Is/errors.As through per-kind sentinels:
//
//	if errors.Is(err, core.ErrKey) {
//		// lookup miss
//	}
package core
