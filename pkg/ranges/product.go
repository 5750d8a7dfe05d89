package ranges

import (
	"github.com/vidtools/toolkit/pkg/core"
)

// Length is the extent [0, n) expressed as a closed Range, the common
// shorthand for an image dimension passed to Product.
func Length(n int) Range {
	return Range{Start: 0, End: n - 1}
}

// Product takes two or three extents and returns their cartesian product
// in row-major order. Useful for enumerating all coordinates of an image:
// Product(Length(1920), Length(1080)) yields (0,0), (0,1), ... (1919,1079).
//
// Any other extent count fails with an index error.
func Product(extents ...Range) ([][]int, error) {
	switch len(extents) {
	case 2:
		x, y := extents[0], extents[1]
		out := make([][]int, 0, x.Len()*y.Len())
		for xx := x.Start; xx <= x.End; xx++ {
			for yy := y.Start; yy <= y.End; yy++ {
				out = append(out, []int{xx, yy})
			}
		}
		return out, nil
	case 3:
		x, y, z := extents[0], extents[1], extents[2]
		out := make([][]int, 0, x.Len()*y.Len()*z.Len())
		for xx := x.Start; xx <= x.End; xx++ {
			for yy := y.Start; yy <= y.End; yy++ {
				for zz := z.Start; zz <= z.End; zz++ {
					out = append(out, []int{xx, yy, zz})
				}
			}
		}
		return out, nil
	}

	message := "not enough ranges passed ({n})"
	if len(extents) > 3 {
		message = "too many ranges passed ({n})"
	}

	return nil, core.NewIndexError("Product", message).WithDetail("n", len(extents))
}

// Interleave merges two slices, taking n elements from a for every one
// element of b, continuing with whichever slice remains once the other is
// exhausted. With n == 1 the slices alternate strictly.
func Interleave[T any](a, b []T, n int) []T {
	if n < 1 {
		n = 1
	}

	out := make([]T, 0, len(a)+len(b))
	ai, bi := 0, 0

	for ai < len(a) || bi < len(b) {
		for k := 0; k < n && ai < len(a); k++ {
			out = append(out, a[ai])
			ai++
		}
		if bi < len(b) {
			out = append(out, b[bi])
			bi++
		}
	}

	return out
}
