package scalar

import "github.com/davecgh/go-spew/spew"

// NullToken is the canonical digest token for an absent value.
const NullToken = "null"

// Format renders a boxed scalar value into its canonical digest token.
// Rendering is by literal value, not identity, so two values that print
// the same contribute the same token regardless of which type declared
// the property they came from.
func Format(v any) string {
	if v == nil {
		return NullToken
	}

	return spew.Sprintf("%v", v)
}
