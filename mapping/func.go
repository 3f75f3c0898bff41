package mapping

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrNotAFunction  = errors.New("provided converter is not a function")
	ErrNotAConverter = errors.New("provided function is not a recognizable converter")
	ErrValueMismatch = errors.New("converter received a value of the wrong type")
)

// Func adapts a typed converter function into the boxed Convert shape.
//
// Supported interfaces:
//   - func(src Type) (dst Type)
//   - func(src Type) (dst Type, error)
//
// The adapted Convert fails with ErrValueMismatch when invoked with a
// value that is not assignable to the function's input type. Converters
// that must accept values from both sides of a duck-typed comparison
// should be written directly against the Convert shape instead.
func Func(fn any) (Convert, error) {
	fnVal := reflect.ValueOf(fn)
	if !fnVal.IsValid() || fnVal.Kind() != reflect.Func {
		return nil, ErrNotAFunction
	}

	fnType := fnVal.Type()
	if fnType.NumIn() != 1 || fnType.IsVariadic() {
		return nil, ErrNotAConverter
	}

	hasErr := false

	switch fnType.NumOut() {
	default:
		return nil, ErrNotAConverter

	case 1:
		if isError(fnType.Out(0)) {
			return nil, ErrNotAConverter
		}

	case 2:
		if !isError(fnType.Out(1)) {
			return nil, ErrNotAConverter
		}

		hasErr = true
	}

	in := fnType.In(0)

	return func(value any) (any, error) {
		arg, err := argFor(in, value)
		if err != nil {
			return nil, err
		}

		out := fnVal.Call([]reflect.Value{arg})

		if hasErr && !out[1].IsNil() {
			return nil, out[1].Interface().(error)
		}

		return out[0].Interface(), nil
	}, nil
}

func argFor(in reflect.Type, value any) (reflect.Value, error) {
	if value == nil {
		switch in.Kind() {
		case reflect.Ptr, reflect.Interface:
			return reflect.Zero(in), nil
		default:
			return reflect.Value{}, fmt.Errorf("%w: null is not a %s", ErrValueMismatch, in)
		}
	}

	rv := reflect.ValueOf(value)
	if !rv.Type().AssignableTo(in) {
		return reflect.Value{}, fmt.Errorf("%w: %s is not a %s", ErrValueMismatch, rv.Type(), in)
	}

	return rv, nil
}

func isError(t reflect.Type) bool {
	if t == nil {
		return false
	}

	terr := reflect.TypeOf((*error)(nil)).Elem()

	return t.Implements(terr)
}
