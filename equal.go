package dataobject

import "bytes"

// IsEqualTo reports whether self and other hold equal comparable
// property values under the supplied mapping table and exclusion
// predicate. The two values need not share a declared type: equality is
// judged per property, by name or by explicit mapping, which makes this
// a duck-type equivalence check.
//
// Every non-excluded comparable property of self must resolve to a
// readable comparable property on other; a single unresolvable property
// short-circuits the whole comparison to false. When a mapping entry
// governs a pair, both sides pass through the same converter before
// digesting, so a lossy-but-consistent conversion still compares equal.
// Converter failures also yield false — the comparator never raises.
//
// Note that swapping self and other without also inverting the mapping
// table can change the result: the table is read source-side only.
func IsEqualTo(self, other any, opts ...Option) bool {
	cfg := newConfig(opts)

	props := cfg.included(ComparableProperties(self))
	targetProps := ComparableProperties(other)

	pairs := make([]resolution, 0, len(props))

	for _, p := range props {
		res, ok := resolve(p, cfg.table, targetProps, resolveCompare)
		if !ok {
			return false
		}

		pairs = append(pairs, res)
	}

	var selfDigest, otherDigest digester

	for _, pair := range pairs {
		selfVal, err := pair.entry.Apply(pair.source.Get())
		if err != nil {
			return false
		}

		otherVal, err := pair.entry.Apply(pair.target.Get())
		if err != nil {
			return false
		}

		selfDigest.add(selfVal)
		otherDigest.add(otherVal)
	}

	return bytes.Equal(selfDigest.sum(), otherDigest.sum())
}
