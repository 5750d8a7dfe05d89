package core

// Stringable is anything that can render itself for display.
// It mirrors fmt.Stringer nominally so library types state the capability
// explicitly instead of relying on duck typing at call sites.
type Stringable interface {
	String() string
}

// Named identifies itself by a stable name. Operations, registered
// variants, and error sources implement Named so diagnostics can refer to
// them without reflection.
type Named interface {
	Name() string
}
