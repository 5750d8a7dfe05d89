package core

import (
	"errors"
	"fmt"
	"strings"
)

// Kind categorizes toolkit errors. The value is the rendered error-kind
// prefix, e.g. "ValueError: (Lookup) no bucket contains 42".
type Kind string

const (
	// KindValue indicates a bad argument value.
	KindValue Kind = "ValueError"

	// KindKey indicates a lookup miss or an unknown key.
	KindKey Kind = "KeyError"

	// KindIndex indicates a wrong argument count or position.
	KindIndex Kind = "IndexError"

	// KindType indicates a value of an unexpected type.
	KindType Kind = "TypeError"

	// KindRuntime indicates a configuration or usage error detected at
	// call time.
	KindRuntime Kind = "RuntimeError"

	// KindNotImplemented indicates an unsupported operation.
	KindNotImplemented Kind = "NotImplementedError"

	// KindPermission indicates insufficient permissions.
	KindPermission Kind = "PermissionError"

	// KindFileNotExists indicates a path whose parent directory does not
	// exist either.
	KindFileNotExists Kind = "FileNotExistsError"

	// KindFileWasNotFound indicates a missing file under an existing
	// parent directory.
	KindFileWasNotFound Kind = "FileWasNotFoundError"

	// KindFileTypeMismatch indicates a path of the wrong file type.
	KindFileTypeMismatch Kind = "FileTypeMismatchError"

	// KindFileIsADirectory indicates a file operation on a directory.
	KindFileIsADirectory Kind = "FileIsADirectoryError"

	// KindEnumValueNotFound indicates an unknown enumeration or variant
	// name.
	KindEnumValueNotFound Kind = "EnumValueNotFoundError"

	// KindMismatch indicates two or more values that were required to be
	// equal but were not.
	KindMismatch Kind = "MismatchError"
)

// Sentinel errors, one per Kind, for errors.Is matching.
var (
	ErrValue             = errors.New("invalid value")
	ErrKey               = errors.New("key not found")
	ErrIndex             = errors.New("index out of range")
	ErrType              = errors.New("type mismatch")
	ErrRuntime           = errors.New("runtime configuration error")
	ErrNotImplemented    = errors.New("operation not supported")
	ErrPermission        = errors.New("permission denied")
	ErrFileNotExists     = errors.New("file does not exist")
	ErrFileWasNotFound   = errors.New("file was not found")
	ErrFileTypeMismatch  = errors.New("unexpected file type")
	ErrFileIsADirectory  = errors.New("path is a directory")
	ErrEnumValueNotFound = errors.New("enum value not found")
	ErrMismatch          = errors.New("values mismatch")
)

var kindSentinels = map[Kind]error{
	KindValue:             ErrValue,
	KindKey:               ErrKey,
	KindIndex:             ErrIndex,
	KindType:              ErrType,
	KindRuntime:           ErrRuntime,
	KindNotImplemented:    ErrNotImplemented,
	KindPermission:        ErrPermission,
	KindFileNotExists:     ErrFileNotExists,
	KindFileWasNotFound:   ErrFileWasNotFound,
	KindFileTypeMismatch:  ErrFileTypeMismatch,
	KindFileIsADirectory:  ErrFileIsADirectory,
	KindEnumValueNotFound: ErrEnumValueNotFound,
	KindMismatch:          ErrMismatch,
}

// FuncError is the structured error carried by every failure the toolkit
// reports. It records which operation raised it, a message template with
// {name} placeholders, an optional underlying reason, and arbitrary named
// context values merged into the template substitution.
type FuncError struct {
	// Kind categorizes the error.
	Kind Kind

	// Func is the resolved display name of the operation that raised the
	// error. See NormFuncName for the accepted inputs.
	Func string

	// Message is a human-readable template. Placeholders of the form
	// {name} are substituted from Details; {self} resolves to Func.
	Message string

	// Reason is the underlying error, if any.
	Reason error

	// Details holds named context values for template substitution.
	Details map[string]any
}

// NewError creates a structured error of the given kind. fn identifies the
// raising operation and may be a string, a Named, a fmt.Stringer, or any
// function or type value.
func NewError(kind Kind, fn any, message string) *FuncError {
	return &FuncError{
		Kind:    kind,
		Func:    NormFuncName(fn),
		Message: message,
		Details: make(map[string]any),
	}
}

// NewValueError creates a KindValue error.
func NewValueError(fn any, message string) *FuncError {
	return NewError(KindValue, fn, message)
}

// NewKeyError creates a KindKey error.
func NewKeyError(fn any, message string) *FuncError {
	return NewError(KindKey, fn, message)
}

// NewIndexError creates a KindIndex error.
func NewIndexError(fn any, message string) *FuncError {
	return NewError(KindIndex, fn, message)
}

// NewTypeError creates a KindType error.
func NewTypeError(fn any, message string) *FuncError {
	return NewError(KindType, fn, message)
}

// NewRuntimeError creates a KindRuntime error.
func NewRuntimeError(fn any, message string) *FuncError {
	return NewError(KindRuntime, fn, message)
}

// NewNotImplementedError creates a KindNotImplemented error.
func NewNotImplementedError(fn any, message string) *FuncError {
	return NewError(KindNotImplemented, fn, message)
}

// NewPermissionError creates a KindPermission error.
func NewPermissionError(fn any, message string) *FuncError {
	return NewError(KindPermission, fn, message)
}

// NewEnumValueNotFoundError creates a KindEnumValueNotFound error.
func NewEnumValueNotFoundError(fn any, message string) *FuncError {
	return NewError(KindEnumValueNotFound, fn, message)
}

// WithReason attaches an underlying cause. Non-error values are rendered
// through NormDisplayName and kept as a plain error.
func (e *FuncError) WithReason(reason any) *FuncError {
	switch r := reason.(type) {
	case nil:
		e.Reason = nil
	case error:
		e.Reason = r
	default:
		e.Reason = errors.New(NormDisplayName(r))
	}
	return e
}

// WithDetail adds a named context value used for template substitution.
func (e *FuncError) WithDetail(key string, value any) *FuncError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// Error implements the error interface, rendering
// "Kind: (func) message" with placeholders substituted.
func (e *FuncError) Error() string {
	msg := e.substitute(e.Message)

	var b strings.Builder
	b.WriteString(string(e.Kind))
	b.WriteString(": ")
	if e.Func != "" {
		fmt.Fprintf(&b, "(%s) ", e.Func)
	}
	b.WriteString(msg)

	if e.Reason != nil {
		fmt.Fprintf(&b, " (%s)", e.substitute(e.Reason.Error()))
	}

	return b.String()
}

// substitute replaces {name} placeholders from Details and {self} with the
// raising operation's name.
func (e *FuncError) substitute(s string) string {
	if !strings.Contains(s, "{") {
		return s
	}

	s = strings.ReplaceAll(s, "{self}", e.Func)
	for key, value := range e.Details {
		s = strings.ReplaceAll(s, "{"+key+"}", NormDisplayName(value))
	}

	return s
}

// Unwrap returns the underlying reason, if any.
func (e *FuncError) Unwrap() error {
	return e.Reason
}

// Is reports whether the error matches a per-kind sentinel or another
// FuncError of the same kind.
func (e *FuncError) Is(target error) bool {
	if target == nil {
		return false
	}

	if sentinel, ok := kindSentinels[e.Kind]; ok && target == sentinel {
		return true
	}

	if fe, ok := target.(*FuncError); ok {
		return e.Kind == fe.Kind
	}

	return false
}

// NewMismatchError creates a KindMismatch error. The compared items are
// deduplicated by display name so the message reports only distinct
// values, available to the template as {items}.
func NewMismatchError(fn any, items []any, message string) *FuncError {
	if message == "" {
		message = "all items must be equal ({items})"
	}

	return NewError(KindMismatch, fn, message).
		WithDetail("items", reduceItems(items))
}

// CheckMismatch returns nil when every item collapses to a single distinct
// display value, and a KindMismatch error otherwise.
func CheckMismatch(fn any, items ...any) error {
	if len(reduceItems(items)) <= 1 {
		return nil
	}
	return NewMismatchError(fn, items, "")
}

// CheckMismatchRef compares a value against a reference.
func CheckMismatchRef(fn any, base, ref any) error {
	return CheckMismatch(fn, base, ref)
}

// reduceItems maps items to display names, dropping duplicates while
// preserving first-seen order.
func reduceItems(items []any) []string {
	seen := make(map[string]bool, len(items))
	reduced := make([]string, 0, len(items))

	for _, item := range items {
		name := NormDisplayName(item)
		if seen[name] {
			continue
		}
		seen[name] = true
		reduced = append(reduced, name)
	}

	return reduced
}
