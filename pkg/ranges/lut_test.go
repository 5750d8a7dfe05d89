package ranges

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidtools/toolkit/pkg/core"
)

func twoBucketLut() *LinearRangeLut {
	return NewLinearRangeLut([]Bucket{
		{ID: 0, Span: Span{0, 10}},
		{ID: 1, Span: Span{10, 20}},
	})
}

func TestLinearRangeLutLookup(t *testing.T) {
	lut := twoBucketLut()

	id, err := lut.Lookup(5)
	require.NoError(t, err)
	assert.Equal(t, 0, id)

	id, err = lut.Lookup(15)
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	t.Run("span boundaries are half-open", func(t *testing.T) {
		id, err := lut.Lookup(10)
		require.NoError(t, err)
		assert.Equal(t, 1, id)
	})

	t.Run("uncovered key fails with a key error", func(t *testing.T) {
		_, err := lut.Lookup(42)
		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrKey))
	})
}

func TestLinearRangeLutRotation(t *testing.T) {
	lut := twoBucketLut()

	require.Equal(t, 2, lut.scanCost(15), "bucket 1 starts in second scan position")

	// Drive misses past the rotation threshold, favoring bucket 1.
	for i := 0; i < rotateThreshold+1; i++ {
		id, err := lut.Lookup(15)
		require.NoError(t, err)
		require.Equal(t, 1, id)
	}

	assert.Equal(t, 1, lut.scanCost(15), "hot bucket scans first after rotation")

	t.Run("reordering is result-invariant", func(t *testing.T) {
		for n := 0; n < 20; n++ {
			want := 0
			if n >= 10 {
				want = 1
			}

			id, err := lut.Lookup(n)
			require.NoError(t, err)
			assert.Equal(t, want, id, "lookup(%d)", n)
		}
	})
}

func TestLinearRangeLutReadOnly(t *testing.T) {
	lut := twoBucketLut()

	assert.Equal(t, 2, lut.Len())

	err := lut.Set(2, Span{20, 30})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNotImplemented))

	err = lut.Delete(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNotImplemented))
}
