/*
Package ranges converts between three representations of frame selections
(single indices, closed intervals, and flat index lists) and provides an
adaptive linear-scan lookup table over contiguous integer buckets.

# Representations

  - Range: a closed interval [Start, End], Start <= End.
  - Soft: a partial specification whose endpoints may be open (nil) or
    negative (counted back from the end of the sequence).
  - []int: a flat enumeration of indices.

# Normalization

NormalizeRanges resolves open and negative endpoints against a sequence
length and coalesces the result into canonical intervals: ascending by
start, overlaps and adjacency merged.

	ranges.NormalizeRanges([]ranges.Soft{ranges.All()}, 1000)
	// [[0, 999]]

	ranges.NormalizeRanges([]ranges.Soft{ranges.Between(24, -24)}, 1000)
	// [[24, 975]]

InvertRanges complements a selection within [0, length).

# Lookup table

LinearRangeLut maps an integer to the identifier of the bucket containing
it by scanning buckets in a mutable order. Once lookups have missed the
front position more than three times, the scan order rotates so the most
recently hit bucket is tried first. Rotation is a cost heuristic only and
never changes results. The table mutates internal state on reads and is
not safe for concurrent use.
*/
package ranges
