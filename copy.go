package dataobject

import (
	"fmt"
	"reflect"
)

// CopyTo copies every non-excluded comparable property of self onto
// other, which must be a non-nil pointer to a struct.
//
// The copy runs in two phases. Planning resolves a writable target
// property for every source property first; if any property fails to
// resolve, the operation aborts with ErrMissingTarget before any
// mutation, leaving other untouched. Execution then converts and
// assigns pair by pair in planning order; a converter or assignment
// failure halts immediately with a *ConvertError, and all pairs already
// written remain written. The copy is deliberately non-atomic: after a
// ConvertError the target is partially updated and must be discarded by
// the caller.
func CopyTo(self, other any, opts ...Option) error {
	cfg := newConfig(opts)

	if other == nil {
		return ErrNilTarget
	}

	if rv := reflect.ValueOf(other); rv.Kind() != reflect.Ptr || rv.IsNil() {
		return ErrNilTarget
	}

	props := cfg.included(ComparableProperties(self))
	targetProps := ComparableProperties(other)

	plan := make([]resolution, 0, len(props))

	for _, p := range props {
		res, ok := resolve(p, cfg.table, targetProps, resolveCopy)
		if !ok {
			return fmt.Errorf("property %q: %w", p.Name, ErrMissingTarget)
		}

		plan = append(plan, res)
	}

	for _, pair := range plan {
		value, err := pair.entry.Apply(pair.source.Get())
		if err != nil {
			return &ConvertError{
				SourceName: pair.source.Name,
				TargetName: pair.target.Name,
				Err:        err,
			}
		}

		if err := pair.target.Set(value); err != nil {
			return &ConvertError{
				SourceName: pair.source.Name,
				TargetName: pair.target.Name,
				Err:        err,
			}
		}
	}

	return nil
}
