package dataobject

import (
	"fmt"
	"reflect"

	"github.com/lord-saumagen/DataObjectExtension/scalar"
)

// Descriptor describes one comparable scalar property of a live value.
// Descriptors are built fresh at the start of every engine call from the
// caller's objects and are never cached across calls.
type Descriptor struct {
	// Name is the property name, unique within the owning shape.
	Name string

	// Kind is the comparable-scalar classification of the declared type
	// (of the pointed-to type for pointer properties).
	Kind scalar.KindEnum

	// Type is the declared field type, pointer wrapper included.
	Type reflect.Type

	// CanRead and CanWrite are the capability flags of this property on
	// the concrete value it was built from.
	CanRead  bool
	CanWrite bool

	field reflect.Value
}

// Get returns the boxed scalar value of the property. A nil pointer
// property reads as nil (absent).
func (d Descriptor) Get() any {
	v := d.field
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil
		}

		v = v.Elem()
	}

	return v.Interface()
}

// Set assigns a boxed scalar value to the property. Pointer properties
// accept nil (the pointer is cleared) and plain scalars (a new value is
// allocated). Scalars of a different but same-class type bridge through
// a reflect conversion; anything else is an error.
func (d Descriptor) Set(value any) error {
	if !d.CanWrite {
		return fmt.Errorf("property %q is not writable", d.Name)
	}

	target := d.field

	if target.Kind() == reflect.Ptr {
		if value == nil {
			target.Set(reflect.Zero(target.Type()))
			return nil
		}

		converted, err := bridgeValue(reflect.ValueOf(value), target.Type().Elem())
		if err != nil {
			return err
		}

		elem := reflect.New(target.Type().Elem())
		elem.Elem().Set(converted)
		target.Set(elem)

		return nil
	}

	if value == nil {
		return fmt.Errorf("cannot assign null to non-pointer property %q", d.Name)
	}

	converted, err := bridgeValue(reflect.ValueOf(value), target.Type())
	if err != nil {
		return err
	}

	target.Set(converted)

	return nil
}

// bridgeValue adapts a scalar value to the dst type. Conversions are
// allowed only within a representation class (numeric to numeric,
// string-kind to string-kind, bool to bool) so that no cross-class
// surprise like int-to-string rune conversion can occur.
func bridgeValue(rv reflect.Value, dst reflect.Type) (reflect.Value, error) {
	src := rv.Type()

	if src == dst || src.AssignableTo(dst) {
		return rv, nil
	}

	switch {
	case scalar.Numeric(src) && scalar.Numeric(dst):
		return rv.Convert(dst), nil
	case src.Kind() == reflect.String && dst.Kind() == reflect.String:
		return rv.Convert(dst), nil
	case src.Kind() == reflect.Bool && dst.Kind() == reflect.Bool:
		return rv.Convert(dst), nil
	}

	return reflect.Value{}, fmt.Errorf("cannot assign %s to %s", src, dst)
}

// ComparableProperties enumerates the readable comparable scalar
// properties of value in declaration order. Only exported struct fields
// of a scalar kind qualify; a single pointer level is looked through and
// double pointers are excluded. Values that are not structs (or pointers
// to structs) have no comparable properties.
//
// The order is stable and deterministic for a given declared shape, and
// value is never mutated.
func ComparableProperties(value any) []Descriptor {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}

		rv = rv.Elem()
	}

	if !rv.IsValid() || rv.Kind() != reflect.Struct {
		return nil
	}

	rt := rv.Type()

	var props []Descriptor

	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}

		base := f.Type
		if base.Kind() == reflect.Ptr {
			base = base.Elem()
			if base.Kind() == reflect.Ptr {
				continue
			}
		}

		kind := scalar.FromReflectType(base)
		if !kind.IsValid() {
			continue
		}

		fv := rv.Field(i)
		props = append(props, Descriptor{
			Name:     f.Name,
			Kind:     kind,
			Type:     f.Type,
			CanRead:  true,
			CanWrite: fv.CanSet(),
			field:    fv,
		})
	}

	return props
}
