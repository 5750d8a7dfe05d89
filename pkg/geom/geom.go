package geom

import (
	"fmt"

	"github.com/vidtools/toolkit/pkg/core"
)

// Coordinate is a non-negative (x, y) pair.
type Coordinate struct {
	// X is the horizontal component.
	X int

	// Y is the vertical component.
	Y int
}

// NewCoordinate validates and constructs a Coordinate. Negative components
// are rejected with a value error.
func NewCoordinate(x, y int) (Coordinate, error) {
	if x < 0 || y < 0 {
		return Coordinate{}, core.NewValueError("Coordinate", "components can't be negative, got ({x}, {y})").
			WithDetail("x", x).
			WithDetail("y", y)
	}
	return Coordinate{X: x, Y: y}, nil
}

// MustCoordinate is like NewCoordinate but panics on invalid input.
// Intended for literals and tests.
func MustCoordinate(x, y int) Coordinate {
	c, err := NewCoordinate(x, y)
	if err != nil {
		panic(err)
	}
	return c
}

// CoordinateFromPair constructs a Coordinate from a two-element pair.
func CoordinateFromPair(pair [2]int) (Coordinate, error) {
	return NewCoordinate(pair[0], pair[1])
}

// Pair returns the components as a two-element pair.
func (c Coordinate) Pair() [2]int {
	return [2]int{c.X, c.Y}
}

// String implements core.Stringable.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Position is an (x, y) offset relative to the top-left corner of an area.
type Position struct {
	Coordinate
}

// NewPosition validates and constructs a Position.
func NewPosition(x, y int) (Position, error) {
	c, err := NewCoordinate(x, y)
	if err != nil {
		return Position{}, err
	}
	return Position{c}, nil
}

// Size is the (horizontal, vertical) extent of an area.
type Size struct {
	Coordinate
}

// NewSize validates and constructs a Size.
func NewSize(x, y int) (Size, error) {
	c, err := NewCoordinate(x, y)
	if err != nil {
		return Size{}, err
	}
	return Size{c}, nil
}

// Area returns X*Y.
func (s Size) Area() int {
	return s.X * s.Y
}
