package funcs

import (
	"github.com/vidtools/toolkit/pkg/core"
)

// Iterate applies fn to base count times, feeding each result back in.
// A non-positive count returns base unchanged.
func Iterate[T any](base T, fn func(T) T, count int) T {
	result := base
	for i := 0; i < count; i++ {
		result = fn(result)
	}
	return result
}

// Ptr returns a pointer to v. Convenience for building optional arguments.
func Ptr[T any](v T) *T {
	return &v
}

// Coalesce returns the first non-nil pointer, or nil when all are nil.
func Coalesce[T any](values ...*T) *T {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

// Fallback returns value when non-nil, otherwise the first non-nil
// fallback. When every candidate is nil it fails with a runtime
// configuration error: supply a default or use FallbackOr.
func Fallback[T any](value *T, fallbacks ...*T) (T, error) {
	if v := Coalesce(append([]*T{value}, fallbacks...)...); v != nil {
		return *v, nil
	}

	var zero T
	return zero, core.NewRuntimeError("Fallback", "you need to specify a default/fallback value")
}

// FallbackOr returns value when non-nil, otherwise the first non-nil
// fallback, otherwise def.
func FallbackOr[T any](def T, value *T, fallbacks ...*T) T {
	if v := Coalesce(append([]*T{value}, fallbacks...)...); v != nil {
		return *v
	}
	return def
}

// MapFallback returns value when non-nil, otherwise the entry under key in
// m when present and of type T, otherwise the first non-nil fallback.
func MapFallback[T any](value *T, m map[string]any, key string, fallbacks ...*T) (T, error) {
	var fromMap *T
	if raw, ok := m[key]; ok {
		if v, ok := raw.(T); ok {
			fromMap = &v
		}
	}

	return Fallback(value, append([]*T{fromMap}, fallbacks...)...)
}

// NormalizeSeq pads vals by repeating the last element, or truncates, so
// the result has exactly length items. An empty input stays empty since
// there is nothing to repeat.
func NormalizeSeq[T any](vals []T, length int) []T {
	if length <= 0 || len(vals) == 0 {
		return []T{}
	}

	out := make([]T, 0, length)
	out = append(out, vals...)

	for len(out) < length {
		out = append(out, vals[len(vals)-1])
	}

	return out[:length]
}

// DeepMerge recursively merges src into dst, overwriting scalar values and
// descending into nested map[string]any values. dst is mutated and
// returned.
func DeepMerge(src, dst map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}

	for key, value := range src {
		if sub, ok := value.(map[string]any); ok {
			node, ok := dst[key].(map[string]any)
			if !ok {
				node = make(map[string]any, len(sub))
				dst[key] = node
			}
			DeepMerge(sub, node)
			continue
		}
		dst[key] = value
	}

	return dst
}
