package ranges

import (
	"github.com/vidtools/toolkit/pkg/core"
)

// rotateThreshold is the cumulative miss count after which the scan order
// starts rotating toward recently hit buckets.
const rotateThreshold = 3

// Span is a half-open interval [Start, End) of integers.
type Span struct {
	Start int
	End   int
}

// Contains reports whether n lies within the half-open interval.
func (s Span) Contains(n int) bool {
	return n >= s.Start && n < s.End
}

// Bucket associates an identifier with the half-open span it covers.
type Bucket struct {
	ID   int
	Span Span
}

// LinearRangeLut maps integers to the identifier of the bucket containing
// them via a linear scan over a mutable bucket order.
//
// The table tracks how often lookups succeed past the front position; once
// the cumulative miss count exceeds rotateThreshold, each further miss
// rotates the order so the bucket just found scans first. Rotation
// amortizes cost under temporal locality and never changes results.
//
// Lookups mutate internal state, so the table is not safe for concurrent
// use. The bucket set is fixed at construction; mutation fails explicitly.
type LinearRangeLut struct {
	buckets []Bucket
	misses  int
}

// NewLinearRangeLut builds a lookup table scanning the buckets in the
// given order.
func NewLinearRangeLut(buckets []Bucket) *LinearRangeLut {
	return &LinearRangeLut{buckets: append([]Bucket(nil), buckets...)}
}

// Lookup returns the identifier of the first bucket whose span contains n.
// A key error is returned when no bucket covers n.
func (l *LinearRangeLut) Lookup(n int) (int, error) {
	hit := -1
	for i, b := range l.buckets {
		if b.Span.Contains(n) {
			hit = i
			break
		}
	}

	if hit < 0 {
		return 0, core.NewKeyError("LinearRangeLut.Lookup", "no bucket contains {n}").
			WithDetail("n", n)
	}

	id := l.buckets[hit].ID

	if hit > 0 {
		l.misses++
		if l.misses > rotateThreshold {
			rotated := make([]Bucket, 0, len(l.buckets))
			rotated = append(rotated, l.buckets[hit:]...)
			rotated = append(rotated, l.buckets[:hit]...)
			l.buckets = rotated
		}
	}

	return id, nil
}

// Len returns the number of buckets.
func (l *LinearRangeLut) Len() int {
	return len(l.buckets)
}

// Set is unsupported: the bucket set is read-only after construction.
func (l *LinearRangeLut) Set(int, Span) error {
	return core.NewNotImplementedError("LinearRangeLut.Set", "bucket set is read-only")
}

// Delete is unsupported: the bucket set is read-only after construction.
func (l *LinearRangeLut) Delete(int) error {
	return core.NewNotImplementedError("LinearRangeLut.Delete", "bucket set is read-only")
}

// scanCost returns how many buckets a lookup for n would scan in the
// current order, or -1 when uncovered. Test hook for rotation behavior.
func (l *LinearRangeLut) scanCost(n int) int {
	for i, b := range l.buckets {
		if b.Span.Contains(n) {
			return i + 1
		}
	}
	return -1
}
