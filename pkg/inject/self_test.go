package inject_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidtools/toolkit/pkg/core"
	"github.com/vidtools/toolkit/pkg/inject"
)

// scaler is the receiver used across the method tests.
type scaler struct {
	strength int
}

// scaleFn multiplies the first argument by the receiver's strength.
func scaleFn(s *scaler, args []any, _ inject.Kwargs) (int, error) {
	return args[0].(int) * s.strength, nil
}

func TestTransientMethod(t *testing.T) {
	built := 0
	m := inject.NewMethod(scaleFn, func(inject.Kwargs) (*scaler, error) {
		built++
		return &scaler{strength: 2}, nil
	})

	t.Run("no receiver constructs a default instance", func(t *testing.T) {
		got, err := m.Call([]any{10}, nil)
		require.NoError(t, err)
		assert.Equal(t, 20, got)
		assert.Equal(t, 1, built)
	})

	t.Run("every bare call constructs anew", func(t *testing.T) {
		_, err := m.Call([]any{1}, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, built)
	})

	t.Run("explicit positional receiver wins and is stripped", func(t *testing.T) {
		got, err := m.Call([]any{&scaler{strength: 7}, 10}, nil)
		require.NoError(t, err)
		assert.Equal(t, 70, got)
		assert.Equal(t, 2, built, "no construction for explicit receiver")
	})

	t.Run("explicit keyword receiver wins and is stripped", func(t *testing.T) {
		kw := inject.Kwargs{"self": &scaler{strength: 3}}
		got, err := m.Call([]any{10}, kw)
		require.NoError(t, err)
		assert.Equal(t, 30, got)
	})

	t.Run("factory errors propagate", func(t *testing.T) {
		bad := inject.NewMethod(scaleFn, func(inject.Kwargs) (*scaler, error) {
			return nil, errors.New("no codec available")
		})
		_, err := bad.Call([]any{1}, nil)
		assert.EqualError(t, err, "no codec available")
	})
}

func TestTransientMethodDefaults(t *testing.T) {
	m := inject.NewMethod(scaleFn, func(kw inject.Kwargs) (*scaler, error) {
		strength, _ := kw["strength"].(int)
		return &scaler{strength: strength}, nil
	}).WithDefaults(inject.Kwargs{"strength": 4})

	got, err := m.Call([]any{10}, nil)
	require.NoError(t, err)
	assert.Equal(t, 40, got)
}

func TestCachedMethod(t *testing.T) {
	built := 0
	factory := func(inject.Kwargs) (*scaler, error) {
		built++
		return &scaler{strength: 5}, nil
	}

	m := inject.NewCachedMethod(scaleFn, factory).WithCache(inject.NewTypeCache())

	for i := 0; i < 4; i++ {
		got, err := m.Call([]any{2}, nil)
		require.NoError(t, err)
		assert.Equal(t, 10, got)
	}
	assert.Equal(t, 1, built, "receiver constructed once per owning type")

	t.Run("explicit receiver bypasses the cache", func(t *testing.T) {
		got, err := m.Call([]any{&scaler{strength: 1}, 2}, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, got)
		assert.Equal(t, 1, built)
	})

	t.Run("methods sharing a cache share the receiver", func(t *testing.T) {
		cache := inject.NewTypeCache()
		n := 0
		count := func(inject.Kwargs) (*scaler, error) {
			n++
			return &scaler{strength: n}, nil
		}

		m1 := inject.NewCachedMethod(scaleFn, count).WithCache(cache)
		m2 := inject.NewCachedMethod(scaleFn, count).WithCache(cache)

		got1, err := m1.Call([]any{1}, nil)
		require.NoError(t, err)
		got2, err := m2.Call([]any{1}, nil)
		require.NoError(t, err)

		assert.Equal(t, got1, got2)
		assert.Equal(t, 1, n)
	})
}

func TestSeededMethod(t *testing.T) {
	factory := func(kw inject.Kwargs) (*scaler, error) {
		strength, ok := kw["strength"].(int)
		if !ok {
			strength = 1
		}
		return &scaler{strength: strength}, nil
	}

	echo := func(_ *scaler, _ []any, kw inject.Kwargs) (inject.Kwargs, error) {
		return kw, nil
	}

	t.Run("non-parameter kwargs seed the factory", func(t *testing.T) {
		m := inject.NewSeededMethod(scaleFn, factory, "value")
		got, err := m.Call([]any{10}, inject.Kwargs{"strength": 6})
		require.NoError(t, err)
		assert.Equal(t, 60, got)
	})

	t.Run("seeds stay in forwarded kwargs by default", func(t *testing.T) {
		m := inject.NewSeededMethod(echo, factory, "value")
		kw, err := m.Call(nil, inject.Kwargs{"strength": 6, "value": 1})
		require.NoError(t, err)
		assert.Contains(t, kw, "strength")
		assert.Contains(t, kw, "value")
	})

	t.Run("clean strips consumed seeds", func(t *testing.T) {
		m := inject.NewSeededMethod(echo, factory, "value").Clean()
		kw, err := m.Call(nil, inject.Kwargs{"strength": 6, "value": 1})
		require.NoError(t, err)
		assert.NotContains(t, kw, "strength")
		assert.Contains(t, kw, "value")
	})

	t.Run("no declared parameters fails at first use", func(t *testing.T) {
		m := inject.NewSeededMethod(scaleFn, factory)
		_, err := m.Call([]any{10}, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrValue))

		// The configuration error is memoized.
		_, err2 := m.Call([]any{10}, nil)
		assert.Equal(t, err, err2)
	})
}

func TestMethodGet(t *testing.T) {
	m := inject.NewCachedMethod(
		func(s *scaler, _ []any, _ inject.Kwargs) (int, error) { return s.strength, nil },
		func(inject.Kwargs) (*scaler, error) { return &scaler{strength: 8}, nil },
	).WithCache(inject.NewTypeCache())

	got, err := m.Get()
	require.NoError(t, err)
	assert.Equal(t, 8, got)
}
