package geom_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidtools/toolkit/pkg/core"
	"github.com/vidtools/toolkit/pkg/geom"
)

func TestNewCoordinate(t *testing.T) {
	t.Run("non-negative components are kept exactly", func(t *testing.T) {
		for _, pair := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1920, 1080}} {
			c, err := geom.NewCoordinate(pair[0], pair[1])
			require.NoError(t, err)
			assert.Equal(t, pair[0], c.X)
			assert.Equal(t, pair[1], c.Y)
		}
	})

	t.Run("negative components fail with a value error", func(t *testing.T) {
		for _, pair := range [][2]int{{-1, 0}, {0, -1}, {-3, -7}} {
			_, err := geom.NewCoordinate(pair[0], pair[1])
			require.Error(t, err)
			assert.True(t, errors.Is(err, core.ErrValue))
		}
	})

	t.Run("from pair", func(t *testing.T) {
		c, err := geom.CoordinateFromPair([2]int{3, 4})
		require.NoError(t, err)
		assert.Equal(t, [2]int{3, 4}, c.Pair())
	})

	t.Run("string rendering", func(t *testing.T) {
		assert.Equal(t, "(3, 4)", geom.MustCoordinate(3, 4).String())
	})

	t.Run("must panics on invalid input", func(t *testing.T) {
		assert.Panics(t, func() { geom.MustCoordinate(-1, 2) })
	})
}

func TestPositionAndSize(t *testing.T) {
	t.Run("position validates like coordinate", func(t *testing.T) {
		p, err := geom.NewPosition(5, 6)
		require.NoError(t, err)
		assert.Equal(t, 5, p.X)

		_, err = geom.NewPosition(-5, 6)
		assert.Error(t, err)
	})

	t.Run("size exposes area", func(t *testing.T) {
		s, err := geom.NewSize(4, 3)
		require.NoError(t, err)
		assert.Equal(t, 12, s.Area())
	})
}
