package inject_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidtools/toolkit/pkg/core"
	"github.com/vidtools/toolkit/pkg/inject"
)

// filterNode is a receiver carrying stored kwargs.
type filterNode struct {
	kwargs inject.Kwargs
}

func (f *filterNode) Kwargs() inject.Kwargs { return f.kwargs }

func TestFillParams(t *testing.T) {
	recv := &filterNode{kwargs: inject.Kwargs{"strength": 3, "mode": "fast", "extra": true}}

	t.Run("absent declared params fill from the bag", func(t *testing.T) {
		out, err := inject.FillParams(recv, inject.Kwargs{}, "strength", "mode")
		require.NoError(t, err)
		assert.Equal(t, 3, out["strength"])
		assert.Equal(t, "fast", out["mode"])
		assert.NotContains(t, out, "extra")
	})

	t.Run("explicit call kwargs win", func(t *testing.T) {
		out, err := inject.FillParams(recv, inject.Kwargs{"strength": 9}, "strength", "mode")
		require.NoError(t, err)
		assert.Equal(t, 9, out["strength"])
		assert.Equal(t, "fast", out["mode"])
	})

	t.Run("undeclared bag entries stay out", func(t *testing.T) {
		out, err := inject.FillParams(recv, inject.Kwargs{}, "strength")
		require.NoError(t, err)
		assert.NotContains(t, out, "mode")
	})

	t.Run("nil bag is a runtime error", func(t *testing.T) {
		_, err := inject.FillParams(&filterNode{}, inject.Kwargs{}, "strength")
		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrRuntime))
	})
}

func TestFillParamsAll(t *testing.T) {
	recv := &filterNode{kwargs: inject.Kwargs{"strength": 3, "extra": true}}

	out, err := inject.FillParamsAll(recv, inject.Kwargs{"radius": 2}, "strength")
	require.NoError(t, err)

	assert.Equal(t, 3, out["strength"])
	assert.Equal(t, 2, out["radius"])
	assert.Equal(t, true, out["extra"], "remaining bag entries merge in")
}

func TestWrapParams(t *testing.T) {
	recv := &filterNode{kwargs: inject.Kwargs{"strength": 3}}

	wrapped := inject.WrapParams(
		func(_ *filterNode, kw inject.Kwargs) (int, error) {
			return kw["strength"].(int), nil
		},
		false,
		"strength",
	)

	got, err := wrapped(recv, inject.Kwargs{})
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}
