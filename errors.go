package dataobject

import (
	"errors"
	"fmt"
)

var (
	// ErrNilTarget reports a copy target that is absent or not a
	// writable pointer. Raised before any property work begins.
	ErrNilTarget = errors.New("copy target must be a non-nil pointer")

	// ErrMissingTarget reports a source property with no writable
	// correspondent on the copy target. Raised during planning, before
	// any mutation.
	ErrMissingTarget = errors.New("no writable target property")
)

// ConvertError reports a converter or assignment failure during the
// execution phase of a copy. Pairs written before the failure remain
// written: the target is partially updated and must be discarded.
type ConvertError struct {
	SourceName string
	TargetName string
	Err        error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("convert %q to %q: %v", e.SourceName, e.TargetName, e.Err)
}

func (e *ConvertError) Unwrap() error {
	return e.Err
}
