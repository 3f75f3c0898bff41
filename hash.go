package dataobject

import "fmt"

// CreateHash computes the change-detection digest of value's comparable
// properties. Properties are visited in declaration order, excluded ones
// are skipped, and each remaining property contributes the canonical
// token of its logical value: the raw value, or the converted value when
// a non-empty mapping entry governs the property.
//
// The digest is byte-for-byte reproducible for fixed input values,
// mapping table and exclusion predicate, and depends only on literal
// property values, so two values of unrelated declared shapes hash
// equal when their comparable properties line up.
func CreateHash(value any, opts ...Option) ([]byte, error) {
	cfg := newConfig(opts)

	var d digester

	for _, p := range cfg.included(ComparableProperties(value)) {
		logical := p.Get()

		if entry, ok := cfg.table.Lookup(p.Name); ok {
			converted, err := entry.Apply(logical)
			if err != nil {
				return nil, fmt.Errorf("property %q: %w", p.Name, err)
			}

			logical = converted
		}

		d.add(logical)
	}

	return d.sum(), nil
}
