package inject

import (
	"reflect"
	"sync"

	"github.com/vidtools/toolkit/pkg/core"
)

// Registry is a keyed singleton store: the explicit replacement for
// metaclass-driven singletons. GetOrCreate is guarded by a mutex so
// concurrent first accesses construct exactly once.
type Registry struct {
	mu        sync.Mutex
	instances map[string]any
}

// NewRegistry creates an empty singleton registry.
func NewRegistry() *Registry {
	return &Registry{instances: make(map[string]any)}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide singleton registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// GetOrCreate returns the instance stored under key, constructing and
// storing it with factory on first access. Factory errors are not cached.
func (r *Registry) GetOrCreate(key string, factory func() (any, error)) (any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.instances[key]; ok {
		return v, nil
	}

	v, err := factory()
	if err != nil {
		return nil, err
	}

	r.instances[key] = v
	return v, nil
}

// GetOrCreateInit behaves like GetOrCreate and additionally runs init on
// the instance on every access, including the one that constructed it.
func (r *Registry) GetOrCreateInit(key string, factory func() (any, error), init func(any) error) (any, error) {
	v, err := r.GetOrCreate(key, factory)
	if err != nil {
		return nil, err
	}

	if init != nil {
		if err := init(v); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// Peek returns the instance stored under key without constructing one.
func (r *Registry) Peek(key string) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.instances[key]
	return v, ok
}

// Delete removes the instance stored under key, if any.
func (r *Registry) Delete(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.instances, key)
}

// Clear removes every stored instance.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.instances = make(map[string]any)
}

// Lazy holds a value computed at most once, on first access. The cached
// per-instance property: construct the Lazy where the value belongs and
// read it through Get.
type Lazy[T any] struct {
	once sync.Once
	fn   func() (T, error)
	v    T
	err  error
}

// NewLazy wraps a fallible computation.
func NewLazy[T any](fn func() (T, error)) *Lazy[T] {
	return &Lazy[T]{fn: fn}
}

// LazyOf wraps an infallible computation.
func LazyOf[T any](fn func() T) *Lazy[T] {
	return NewLazy(func() (T, error) { return fn(), nil })
}

// Get computes the value on first call and returns the memoized result
// (or error) thereafter.
func (l *Lazy[T]) Get() (T, error) {
	l.once.Do(func() {
		l.v, l.err = l.fn()
	})
	return l.v, l.err
}

// MustGet is Get for values known to be infallible; it panics on error.
func (l *Lazy[T]) MustGet() T {
	v, err := l.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// ClassValue caches one computed value of type V per owner type: the
// class-property analog. Each ClassValue owns its cache, so distinct
// properties of the same owner type do not collide.
type ClassValue[V any] struct {
	fn    func(owner reflect.Type) (V, error)
	cache *TypeCache
}

// NewClassValue creates a per-type computed value.
func NewClassValue[V any](fn func(owner reflect.Type) (V, error)) *ClassValue[V] {
	return &ClassValue[V]{fn: fn, cache: NewTypeCache()}
}

// For returns the value computed for owner's type, computing it on first
// access. owner may be an instance or a reflect.Type.
func (c *ClassValue[V]) For(owner any) (V, error) {
	var zero V

	t, ok := owner.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(owner)
	}
	if t == nil {
		return zero, core.NewValueError("ClassValue.For", "owner must not be nil")
	}

	v, err := c.cache.GetOrCreate(t, func() (any, error) {
		return c.fn(t)
	})
	if err != nil {
		return zero, err
	}

	return v.(V), nil
}
