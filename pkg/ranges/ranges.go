package ranges

import (
	"fmt"
	"sort"

	"github.com/vidtools/toolkit/pkg/core"
)

// Range is a closed interval [Start, End], both endpoints inclusive.
type Range struct {
	Start int
	End   int
}

// NewRange validates and constructs a closed interval.
func NewRange(start, end int) (Range, error) {
	if start > end {
		return Range{}, core.NewValueError("Range", "start must not exceed end, got [{start}, {end}]").
			WithDetail("start", start).
			WithDetail("end", end)
	}
	return Range{Start: start, End: end}, nil
}

// Len returns the number of integers covered by the interval.
func (r Range) Len() int {
	return r.End - r.Start + 1
}

// Contains reports whether n lies within the interval.
func (r Range) Contains(n int) bool {
	return n >= r.Start && n <= r.End
}

// String implements core.Stringable.
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.Start, r.End)
}

// Soft is a partial range specification. A nil endpoint is open: an open
// start resolves to 0 and an open end to length-1. Negative endpoints are
// offsets from length-1.
type Soft struct {
	Start *int
	End   *int
}

// String implements core.Stringable.
func (s Soft) String() string {
	render := func(p *int) string {
		if p == nil {
			return "open"
		}
		return fmt.Sprintf("%d", *p)
	}
	return fmt.Sprintf("(%s, %s)", render(s.Start), render(s.End))
}

// At specifies the single index n.
func At(n int) Soft {
	v := n
	return Soft{Start: &v, End: &v}
}

// Between specifies the closed interval [start, end].
func Between(start, end int) Soft {
	s, e := start, end
	return Soft{Start: &s, End: &e}
}

// From specifies [start, open).
func From(start int) Soft {
	s := start
	return Soft{Start: &s}
}

// Until specifies (open, end].
func Until(end int) Soft {
	e := end
	return Soft{End: &e}
}

// All specifies the fully open range.
func All() Soft {
	return Soft{}
}

// NormalizeRange enumerates the closed interval between start and end in
// the interval's direction: ascending when start <= end, descending
// otherwise. A single index is the start == end case.
func NormalizeRange(start, end int) []int {
	step := 1
	if end < start {
		step = -1
	}

	out := make([]int, 0, abs(end-start)+1)
	for n := start; n != end+step; n += step {
		out = append(out, n)
	}

	return out
}

// NormalizeListToRanges produces the minimal sorted list of maximal
// contiguous closed intervals covering exactly the given integers.
// Contiguous runs of minLength or fewer integers are dropped.
func NormalizeListToRanges(list []int, minLength int) []Range {
	if len(list) == 0 {
		return nil
	}

	sorted := append([]int(nil), list...)
	sort.Ints(sorted)

	var runs [][2]int
	runStart, prev := sorted[0], sorted[0]

	for _, n := range sorted[1:] {
		if n == prev {
			continue
		}
		if n != prev+1 {
			runs = append(runs, [2]int{runStart, prev})
			runStart = n
		}
		prev = n
	}
	runs = append(runs, [2]int{runStart, prev})

	out := make([]Range, 0, len(runs))
	for _, run := range runs {
		if run[1]-run[0]+1 > minLength {
			out = append(out, Range{Start: run[0], End: run[1]})
		}
	}

	return out
}

// RangesToList flattens closed intervals into the indices they cover, in
// order of appearance.
func RangesToList(rs []Range) []int {
	total := 0
	for _, r := range rs {
		total += r.Len()
	}

	out := make([]int, 0, total)
	for _, r := range rs {
		for n := r.Start; n <= r.End; n++ {
			out = append(out, n)
		}
	}

	return out
}

// NormalizeRanges resolves possibly-open, possibly-negative specifications
// against a sequence of the given length and coalesces them into canonical
// intervals: ascending by start, overlapping and adjacent intervals merged.
//
// An open start resolves to 0, an open end to end-1, and negative
// endpoints are offsets from end-1. Specifications that resolve to an
// empty interval are dropped.
func NormalizeRanges(specs []Soft, end int) ([]Range, error) {
	if end <= 0 {
		return nil, core.NewValueError("NormalizeRanges", "end must be positive, got {end}").
			WithDetail("end", end)
	}

	var indices []int

	for _, spec := range specs {
		start, stop := 0, end-1

		if spec.Start != nil {
			start = *spec.Start
		}
		if spec.End != nil {
			stop = *spec.End
		}

		if start < 0 {
			start = end - 1 + start
		}
		if stop < 0 {
			stop = end - 1 + stop
		}

		for n := start; n <= stop; n++ {
			indices = append(indices, n)
		}
	}

	return NormalizeListToRanges(indices, 0), nil
}

// InvertRanges complements the normalized selection within [0, length).
// When normalizeAgainst is non-nil the specs are first normalized against
// it instead of length.
func InvertRanges(specs []Soft, length int, normalizeAgainst *int) ([]Range, error) {
	against := length
	if normalizeAgainst != nil {
		against = *normalizeAgainst
	}

	norm, err := NormalizeRanges(specs, against)
	if err != nil {
		return nil, err
	}

	selected := make(map[int]bool)
	for _, n := range RangesToList(norm) {
		selected[n] = true
	}

	rest := make([]int, 0, length)
	for n := 0; n < length; n++ {
		if !selected[n] {
			rest = append(rest, n)
		}
	}

	return NormalizeListToRanges(rest, 0), nil
}

// NormalizeSoft resolves a single specification; a convenience form of
// NormalizeRanges for one spec.
func NormalizeSoft(spec Soft, end int) ([]Range, error) {
	return NormalizeRanges([]Soft{spec}, end)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
