package core

import (
	"fmt"
	"reflect"
	"runtime"
	"sort"
	"strings"
)

// NormFuncName resolves fn to a display name suitable for diagnostics.
//
// Accepted inputs, in order of precedence: a plain string (trimmed), a
// Named, a fmt.Stringer, any function value (resolved through the runtime
// to its qualified name), and any other value (resolved to its type name).
func NormFuncName(fn any) string {
	switch v := fn.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case Named:
		return strings.TrimSpace(v.Name())
	case fmt.Stringer:
		return strings.TrimSpace(v.String())
	}

	rv := reflect.ValueOf(fn)
	if rv.Kind() == reflect.Func {
		if f := runtime.FuncForPC(rv.Pointer()); f != nil {
			return shortFuncName(f.Name())
		}
		// Nil funcs have no runtime name; an address would be noise.
		if name := rv.Type().Name(); name != "" {
			return name
		}
		return fmt.Sprintf("%T", fn)
	}

	t := rv.Type()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}

	return strings.TrimSpace(fmt.Sprintf("%v", fn))
}

// shortFuncName strips the package path and method-value suffix from a
// runtime-qualified function name, e.g.
// "github.com/x/pkg.(*Registry).Register-fm" -> "Registry.Register".
func shortFuncName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}

	name = strings.TrimSuffix(name, "-fm")
	name = strings.ReplaceAll(name, "(*", "")
	name = strings.ReplaceAll(name, ")", "")

	return name
}

// NormDisplayName renders an arbitrary value for inclusion in an error
// message. Maps render as "(k=v, ...)" with sorted keys, slices and arrays
// as comma-joined elements, errors as their message, and everything else
// through NormFuncName.
func NormDisplayName(obj any) string {
	switch v := obj.(type) {
	case nil:
		return "<nil>"
	case string:
		return strings.TrimSpace(v)
	case error:
		return v.Error()
	}

	rv := reflect.ValueOf(obj)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			break
		}
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = NormDisplayName(rv.Index(i).Interface())
		}
		return strings.Join(parts, ", ")
	case reflect.Map:
		keys := make([]string, 0, rv.Len())
		byKey := make(map[string]string, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := fmt.Sprintf("%v", iter.Key().Interface())
			keys = append(keys, k)
			byKey[k] = NormDisplayName(iter.Value().Interface())
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + "=" + byKey[k]
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Bool:
		return fmt.Sprintf("%v", obj)
	}

	return NormFuncName(obj)
}
