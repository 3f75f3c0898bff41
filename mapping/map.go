// Package mapping defines the ordered source->target property name
// correspondences, with optional value converters, that steer the
// data-object engine when two shapes do not line up by name alone.
package mapping

import (
	"errors"
	"fmt"
	"strings"
)

// Convert transforms one boxed scalar value into another. It is expected
// to be total over the values its mapping can encounter; a returned error
// halts a copy operation and soft-fails a comparison.
type Convert func(value any) (any, error)

var ErrHalfMapped = errors.New("mapping requires both names or neither")

// Map is a single source->target property name pair with an optional
// value converter. The zero Map is the empty sentinel meaning "no
// explicit mapping applies".
type Map struct {
	SourceName string
	TargetName string
	Convert    Convert // nil means identity
}

// NewMap builds a validated Map. Both names must be present, or both
// blank (which yields the empty sentinel). A Map with exactly one name
// is rejected with ErrHalfMapped. convert may be nil for identity.
func NewMap(sourceName, targetName string, convert Convert) (Map, error) {
	if blank(sourceName) != blank(targetName) {
		return Map{}, fmt.Errorf("%w: source %q, target %q", ErrHalfMapped, sourceName, targetName)
	}

	return Map{SourceName: sourceName, TargetName: targetName, Convert: convert}, nil
}

// IsEmpty reports whether m is the "no explicit mapping applies"
// sentinel. A Map is empty iff either name is blank.
func (m Map) IsEmpty() bool {
	return blank(m.SourceName) || blank(m.TargetName)
}

// Apply runs the converter over value, defaulting to identity when no
// converter was supplied.
func (m Map) Apply(value any) (any, error) {
	if m.Convert == nil {
		return value, nil
	}

	return m.Convert(value)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
