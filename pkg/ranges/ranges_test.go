package ranges_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidtools/toolkit/pkg/core"
	"github.com/vidtools/toolkit/pkg/ranges"
)

func TestNewRange(t *testing.T) {
	r, err := ranges.NewRange(3, 7)
	require.NoError(t, err)
	assert.Equal(t, 5, r.Len())
	assert.True(t, r.Contains(3))
	assert.True(t, r.Contains(7))
	assert.False(t, r.Contains(8))
	assert.Equal(t, "[3, 7]", r.String())

	_, err = ranges.NewRange(7, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrValue))
}

func TestNormalizeRange(t *testing.T) {
	t.Run("single index", func(t *testing.T) {
		assert.Equal(t, []int{5}, ranges.NormalizeRange(5, 5))
	})

	t.Run("ascending enumeration is inclusive", func(t *testing.T) {
		assert.Equal(t, []int{2, 3, 4, 5}, ranges.NormalizeRange(2, 5))
	})

	t.Run("descending interval enumerates in its direction", func(t *testing.T) {
		assert.Equal(t, []int{5, 4, 3, 2}, ranges.NormalizeRange(5, 2))
	})
}

func TestNormalizeListToRanges(t *testing.T) {
	t.Run("contiguous runs collapse", func(t *testing.T) {
		got := ranges.NormalizeListToRanges([]int{0, 1, 2, 5, 6, 9}, 0)
		assert.Equal(t, []ranges.Range{{0, 2}, {5, 6}, {9, 9}}, got)
	})

	t.Run("duplicates and order are irrelevant", func(t *testing.T) {
		got := ranges.NormalizeListToRanges([]int{6, 2, 1, 2, 0, 5, 6}, 0)
		assert.Equal(t, []ranges.Range{{0, 2}, {5, 6}}, got)
	})

	t.Run("short runs are dropped", func(t *testing.T) {
		got := ranges.NormalizeListToRanges([]int{0, 1, 2, 5, 6, 9}, 2)
		assert.Equal(t, []ranges.Range{{0, 2}}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, ranges.NormalizeListToRanges(nil, 0))
	})
}

func TestNormalizeRanges(t *testing.T) {
	t.Run("fully open spans the whole sequence", func(t *testing.T) {
		got, err := ranges.NormalizeRanges([]ranges.Soft{ranges.All()}, 1000)
		require.NoError(t, err)
		assert.Equal(t, []ranges.Range{{0, 999}}, got)
	})

	t.Run("negative end counts back from the end", func(t *testing.T) {
		got, err := ranges.NormalizeRanges([]ranges.Soft{ranges.Between(24, -24)}, 1000)
		require.NoError(t, err)
		assert.Equal(t, []ranges.Range{{24, 975}}, got)
	})

	t.Run("overlapping intervals merge", func(t *testing.T) {
		got, err := ranges.NormalizeRanges(
			[]ranges.Soft{ranges.Between(24, 100), ranges.Between(80, 150)}, 1000)
		require.NoError(t, err)
		assert.Equal(t, []ranges.Range{{24, 150}}, got)
	})

	t.Run("adjacent intervals merge", func(t *testing.T) {
		got, err := ranges.NormalizeRanges(
			[]ranges.Soft{ranges.Between(0, 4), ranges.Between(5, 9)}, 100)
		require.NoError(t, err)
		assert.Equal(t, []ranges.Range{{0, 9}}, got)
	})

	t.Run("output is ascending by start", func(t *testing.T) {
		got, err := ranges.NormalizeRanges(
			[]ranges.Soft{ranges.Between(50, 60), ranges.Between(5, 10)}, 100)
		require.NoError(t, err)
		assert.Equal(t, []ranges.Range{{5, 10}, {50, 60}}, got)
	})

	t.Run("single index spec", func(t *testing.T) {
		got, err := ranges.NormalizeRanges([]ranges.Soft{ranges.At(7)}, 100)
		require.NoError(t, err)
		assert.Equal(t, []ranges.Range{{7, 7}}, got)
	})

	t.Run("non-positive length fails", func(t *testing.T) {
		_, err := ranges.NormalizeRanges([]ranges.Soft{ranges.All()}, 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrValue))
	})
}

func TestInvertRanges(t *testing.T) {
	t.Run("complement within length", func(t *testing.T) {
		got, err := ranges.InvertRanges([]ranges.Soft{ranges.Between(0, 9)}, 20, nil)
		require.NoError(t, err)
		assert.Equal(t, []ranges.Range{{10, 19}}, got)
	})

	t.Run("inverting everything yields nothing", func(t *testing.T) {
		got, err := ranges.InvertRanges([]ranges.Soft{ranges.All()}, 20, nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("middle selection leaves both sides", func(t *testing.T) {
		got, err := ranges.InvertRanges([]ranges.Soft{ranges.Between(5, 9)}, 20, nil)
		require.NoError(t, err)
		assert.Equal(t, []ranges.Range{{0, 4}, {10, 19}}, got)
	})
}

func TestRangesToList(t *testing.T) {
	got := ranges.RangesToList([]ranges.Range{{0, 2}, {5, 6}})
	assert.Equal(t, []int{0, 1, 2, 5, 6}, got)
}

func TestProduct(t *testing.T) {
	t.Run("two extents", func(t *testing.T) {
		got, err := ranges.Product(ranges.Length(2), ranges.Length(3))
		require.NoError(t, err)
		assert.Equal(t, [][]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}, got)
	})

	t.Run("three extents", func(t *testing.T) {
		got, err := ranges.Product(ranges.Length(2), ranges.Length(2), ranges.Length(2))
		require.NoError(t, err)
		assert.Len(t, got, 8)
		assert.Equal(t, []int{1, 1, 1}, got[7])
	})

	t.Run("wrong arity fails with an index error", func(t *testing.T) {
		_, err := ranges.Product(ranges.Length(2))
		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrIndex))

		_, err = ranges.Product(ranges.Length(2), ranges.Length(2), ranges.Length(2), ranges.Length(2))
		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrIndex))
	})
}

func TestInterleave(t *testing.T) {
	t.Run("strict alternation", func(t *testing.T) {
		got := ranges.Interleave([]int{1, 3, 5}, []int{2, 4, 6}, 1)
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, got)
	})

	t.Run("n from the first per one from the second", func(t *testing.T) {
		got := ranges.Interleave([]int{1, 2, 4, 5}, []int{3, 6}, 2)
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, got)
	})

	t.Run("uneven lengths drain the remainder", func(t *testing.T) {
		got := ranges.Interleave([]int{1}, []int{2, 3, 4}, 2)
		assert.Equal(t, []int{1, 2, 3, 4}, got)
	})
}
