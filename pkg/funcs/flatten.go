package funcs

import (
	"hash/fnv"
	"io"
	"reflect"
	"sort"

	"github.com/vidtools/toolkit/pkg/core"
)

// Flatten recursively flattens nested slices and arrays into a single
// []any. Strings and byte slices are treated as atomic values.
func Flatten(items ...any) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = flattenInto(out, item)
	}
	return out
}

func flattenInto(out []any, item any) []any {
	switch item.(type) {
	case nil, string, []byte:
		return append(out, item)
	}

	rv := reflect.ValueOf(item)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return append(out, item)
	}

	for i := 0; i < rv.Len(); i++ {
		out = flattenInto(out, rv.Index(i).Interface())
	}

	return out
}

// HashAny produces a stable non-cryptographic hash of arbitrary values.
// Slices and arrays hash element-wise, maps hash their entries in sorted
// key order, and everything else hashes its display rendering.
func HashAny(values ...any) uint64 {
	h := fnv.New64a()
	for _, v := range values {
		hashInto(h, v)
	}
	return h.Sum64()
}

func hashInto(w io.Writer, value any) {
	switch value.(type) {
	case nil, string, []byte:
		writeRendered(w, value)
		return
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			hashInto(w, rv.Index(i).Interface())
		}
	case reflect.Map:
		keys := make([]string, 0, rv.Len())
		vals := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := core.NormDisplayName(iter.Key().Interface())
			keys = append(keys, k)
			vals[k] = iter.Value().Interface()
		}
		sort.Strings(keys)
		for _, k := range keys {
			writeRendered(w, k)
			hashInto(w, vals[k])
		}
	default:
		writeRendered(w, value)
	}
}

func writeRendered(w io.Writer, value any) {
	switch v := value.(type) {
	case nil:
		io.WriteString(w, "<nil>;")
	case []byte:
		w.Write(v)
		io.WriteString(w, ";")
	default:
		io.WriteString(w, core.NormDisplayName(v))
		io.WriteString(w, ";")
	}
}
