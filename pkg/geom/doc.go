// Package geom provides small validated 2-component value types:
// Coordinate, Position, and Size. Both components are non-negative,
// enforced once at construction.
package geom
