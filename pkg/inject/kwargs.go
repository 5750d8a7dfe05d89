package inject

// Kwargs is a named-argument bag, the explicit stand-in for keyword
// arguments in factory seeding and parameter filling.
type Kwargs map[string]any

// Clone returns a shallow copy. A nil bag clones to an empty one.
func (k Kwargs) Clone() Kwargs {
	out := make(Kwargs, len(k))
	for key, value := range k {
		out[key] = value
	}
	return out
}

// Merge returns a copy of k with other's entries layered on top.
func (k Kwargs) Merge(other Kwargs) Kwargs {
	out := k.Clone()
	for key, value := range other {
		out[key] = value
	}
	return out
}

// WithoutNil returns a copy with all nil-valued entries removed.
func (k Kwargs) WithoutNil() Kwargs {
	out := make(Kwargs, len(k))
	for key, value := range k {
		if value == nil {
			continue
		}
		out[key] = value
	}
	return out
}

// Pop removes and returns the entry under key.
func (k Kwargs) Pop(key string) (any, bool) {
	value, ok := k[key]
	if ok {
		delete(k, key)
	}
	return value, ok
}
