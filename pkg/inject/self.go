package inject

import (
	"reflect"
	"sync"

	"github.com/vidtools/toolkit/pkg/core"
)

// receiverStrategy selects how a Method obtains a receiver when the call
// site supplies none.
type receiverStrategy int

const (
	strategyTransient receiverStrategy = iota
	strategyCached
	strategySeeded
)

// defaultReceiverKey is the kwargs key checked for an explicit receiver.
const defaultReceiverKey = "self"

// Method binds a function with an explicit receiver parameter of type T
// so it can be invoked with or without a receiver. See the package
// documentation for the three construction strategies.
//
// The receiver type and parameter set are resolved lazily on the first
// call and memoized for the life of the Method.
type Method[T any, R any] struct {
	fn       func(T, []any, Kwargs) (R, error)
	factory  func(Kwargs) (T, error)
	strategy receiverStrategy

	defaults Kwargs
	params   []string
	clean    bool
	cache    *TypeCache
	recvKey  string

	initOnce sync.Once
	recvType reflect.Type
	paramSet map[string]bool
	initErr  error
}

// NewMethod wraps fn with the transient strategy: when a call supplies no
// receiver, factory constructs a fresh one from the stored default kwargs.
func NewMethod[T any, R any](
	fn func(T, []any, Kwargs) (R, error),
	factory func(Kwargs) (T, error),
) *Method[T, R] {
	return &Method[T, R]{fn: fn, factory: factory, strategy: strategyTransient}
}

// NewCachedMethod wraps fn with the cached strategy: the receiver is
// constructed once per owning type and reused process-wide. The cache
// defaults to DefaultTypeCache and can be replaced with WithCache.
func NewCachedMethod[T any, R any](
	fn func(T, []any, Kwargs) (R, error),
	factory func(Kwargs) (T, error),
) *Method[T, R] {
	return &Method[T, R]{fn: fn, factory: factory, strategy: strategyCached, cache: processCache}
}

// NewSeededMethod wraps fn with the kwargs-seeded strategy: call kwargs
// not consumed by the declared parameter names seed the factory. The
// declared names must be supplied; a seeded method with none fails with a
// value error on first use, since nothing distinguishes seeds from
// forwarded kwargs.
func NewSeededMethod[T any, R any](
	fn func(T, []any, Kwargs) (R, error),
	factory func(Kwargs) (T, error),
	params ...string,
) *Method[T, R] {
	return &Method[T, R]{fn: fn, factory: factory, strategy: strategySeeded, params: params}
}

// WithDefaults stores default kwargs handed to the factory whenever a
// receiver is auto-constructed.
func (m *Method[T, R]) WithDefaults(kw Kwargs) *Method[T, R] {
	m.defaults = kw.Clone()
	return m
}

// WithCache replaces the type cache used by the cached strategy.
func (m *Method[T, R]) WithCache(cache *TypeCache) *Method[T, R] {
	m.cache = cache
	return m
}

// WithReceiverKey renames the kwargs key checked for an explicit receiver
// (default "self").
func (m *Method[T, R]) WithReceiverKey(key string) *Method[T, R] {
	m.recvKey = key
	return m
}

// Clean makes a seeded method strip consumed seed keys from the kwargs
// forwarded to the wrapped function.
func (m *Method[T, R]) Clean() *Method[T, R] {
	m.clean = true
	return m
}

// Call invokes the wrapped function. When args[0] or kwargs[receiverKey]
// holds a value of the receiver type it is used as the receiver and
// stripped from the forwarded arguments; otherwise the strategy supplies
// one.
func (m *Method[T, R]) Call(args []any, kw Kwargs) (R, error) {
	var zero R

	m.initOnce.Do(m.lazyInit)
	if m.initErr != nil {
		return zero, m.initErr
	}

	recv, fwdArgs, fwdKw, err := m.receiver(args, kw)
	if err != nil {
		return zero, err
	}

	return m.fn(recv, fwdArgs, fwdKw)
}

// Get invokes the wrapped function with no arguments at all, the
// property-style form of Call.
func (m *Method[T, R]) Get() (R, error) {
	return m.Call(nil, nil)
}

// lazyInit memoizes the receiver type and parameter set, and validates
// the seeded configuration.
func (m *Method[T, R]) lazyInit() {
	m.recvType = reflect.TypeOf((*T)(nil)).Elem()

	if m.recvKey == "" {
		m.recvKey = defaultReceiverKey
	}

	if m.strategy == strategySeeded {
		if len(m.params) == 0 {
			m.initErr = core.NewValueError("Method.Call",
				"seeded method declares no parameter names, nothing to match seeds against")
			return
		}

		m.paramSet = make(map[string]bool, len(m.params))
		for _, p := range m.params {
			m.paramSet[p] = true
		}
	}
}

// receiver resolves the receiver for one call and returns the forwarded
// arguments with any explicit receiver stripped.
func (m *Method[T, R]) receiver(args []any, kw Kwargs) (T, []any, Kwargs, error) {
	var zero T

	if len(args) > 0 {
		if v, ok := args[0].(T); ok {
			return v, args[1:], kw, nil
		}
	}

	if raw, ok := kw[m.recvKey]; ok {
		if v, ok := raw.(T); ok {
			fwd := kw.Clone()
			delete(fwd, m.recvKey)
			return v, args, fwd, nil
		}
	}

	switch m.strategy {
	case strategyCached:
		v, err := m.cache.GetOrCreate(m.recvType, func() (any, error) {
			return m.factory(m.defaults.Clone())
		})
		if err != nil {
			return zero, nil, nil, err
		}
		return v.(T), args, kw, nil

	case strategySeeded:
		seed := m.defaults.Clone()
		consumed := make([]string, 0, len(kw))

		for key, value := range kw {
			if m.paramSet[key] || key == m.recvKey {
				continue
			}
			seed[key] = value
			consumed = append(consumed, key)
		}

		fwd := kw
		if m.clean && len(consumed) > 0 {
			fwd = kw.Clone()
			for _, key := range consumed {
				delete(fwd, key)
			}
		}

		recv, err := m.factory(seed)
		if err != nil {
			return zero, nil, nil, err
		}
		return recv, args, fwd, nil

	default:
		recv, err := m.factory(m.defaults.Clone())
		if err != nil {
			return zero, nil, nil, err
		}
		return recv, args, kw, nil
	}
}
