package inject

import (
	"github.com/vidtools/toolkit/pkg/core"
)

// HasKwargs is implemented by receivers that carry a stored bag of named
// arguments applied to their method calls.
type HasKwargs interface {
	Kwargs() Kwargs
}

// FillParams returns the call kwargs with every declared parameter name
// that is absent from the call filled from the receiver's stored bag.
// Entries the caller set explicitly always win. A receiver with a nil bag
// is a runtime configuration error.
func FillParams(recv HasKwargs, call Kwargs, params ...string) (Kwargs, error) {
	bag := recv.Kwargs()
	if bag == nil {
		return nil, core.NewRuntimeError("FillParams", "receiver has no kwargs bag").
			WithReason(recv)
	}

	out := call.Clone()
	for _, p := range params {
		if _, ok := out[p]; ok {
			continue
		}
		if v, ok := bag[p]; ok {
			out[p] = v
		}
	}

	return out, nil
}

// FillParamsAll behaves like FillParams and additionally merges the
// receiver's remaining bag entries (those not matching a declared
// parameter) on top of the call kwargs.
func FillParamsAll(recv HasKwargs, call Kwargs, params ...string) (Kwargs, error) {
	out, err := FillParams(recv, call, params...)
	if err != nil {
		return nil, err
	}

	declared := make(map[string]bool, len(params))
	for _, p := range params {
		declared[p] = true
	}

	for key, value := range recv.Kwargs() {
		if declared[key] {
			continue
		}
		out[key] = value
	}

	return out, nil
}

// WrapParams lifts FillParams (or FillParamsAll when addRemaining is set)
// over a method: the returned function fills the call kwargs from the
// receiver's bag before delegating.
func WrapParams[T HasKwargs, R any](
	fn func(T, Kwargs) (R, error),
	addRemaining bool,
	params ...string,
) func(T, Kwargs) (R, error) {
	return func(recv T, call Kwargs) (R, error) {
		var zero R

		fill := FillParams
		if addRemaining {
			fill = FillParamsAll
		}

		filled, err := fill(recv, call, params...)
		if err != nil {
			return zero, err
		}

		return fn(recv, filled)
	}
}
