// Package funcs provides small generic helpers: repeated function
// application, nil-coalescing fallbacks, sequence normalization, nested
// flattening, deep map merging, and recursive value hashing.
package funcs
