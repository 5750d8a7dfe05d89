package inject

import (
	"sync"

	"github.com/vidtools/toolkit/pkg/core"
)

// VariantRegistry holds named constructors for the variants of a family:
// the explicit replacement for runtime subclass discovery. Variants
// register themselves at initialization and are instantiated by name.
type VariantRegistry[T any] struct {
	mu    sync.RWMutex
	order []string
	ctors map[string]func() T
}

// NewVariantRegistry creates an empty variant registry.
func NewVariantRegistry[T any]() *VariantRegistry[T] {
	return &VariantRegistry[T]{ctors: make(map[string]func() T)}
}

// Register adds a named variant constructor. Empty names and duplicate
// registrations fail with a value error.
func (r *VariantRegistry[T]) Register(name string, ctor func() T) error {
	if name == "" {
		return core.NewValueError("VariantRegistry.Register", "variant name must not be empty")
	}
	if ctor == nil {
		return core.NewValueError("VariantRegistry.Register", "variant {name} has a nil constructor").
			WithDetail("name", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ctors[name]; exists {
		return core.NewValueError("VariantRegistry.Register", "variant {name} already registered").
			WithDetail("name", name)
	}

	r.ctors[name] = ctor
	r.order = append(r.order, name)

	return nil
}

// New constructs the variant registered under name. Unknown names fail
// with an enum-value-not-found error.
func (r *VariantRegistry[T]) New(name string) (T, error) {
	r.mu.RLock()
	ctor, ok := r.ctors[name]
	r.mu.RUnlock()

	if !ok {
		var zero T
		return zero, core.NewEnumValueNotFoundError("VariantRegistry.New",
			"unknown variant {name}, expected one of: {choices}").
			WithDetail("name", name).
			WithDetail("choices", r.Names())
	}

	return ctor(), nil
}

// Names returns the registered names in registration order, skipping any
// excluded ones.
func (r *VariantRegistry[T]) Names(exclude ...string) []string {
	skip := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		skip[name] = true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.order))
	for _, name := range r.order {
		if skip[name] {
			continue
		}
		names = append(names, name)
	}

	return names
}

// Variants constructs every registered variant in registration order,
// skipping any excluded names.
func (r *VariantRegistry[T]) Variants(exclude ...string) []T {
	names := r.Names(exclude...)

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, len(names))
	for _, name := range names {
		out = append(out, r.ctors[name]())
	}

	return out
}

// Len returns the number of registered variants.
func (r *VariantRegistry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.ctors)
}
