package dataobject

import "github.com/lord-saumagen/DataObjectExtension/mapping"

// resolveMode selects the constraints the resolver applies to candidate
// target properties.
type resolveMode int

const (
	resolveCompare resolveMode = iota // target must be a readable comparable scalar
	resolveCopy                       // target must additionally be writable
)

// resolution is one planned source->target property pairing. entry is
// the governing mapping-table entry, or the empty sentinel when the pair
// was identity-matched.
type resolution struct {
	source Descriptor
	target Descriptor
	entry  mapping.Map
}

// resolve determines the target property corresponding to src among
// targetProps. The mapping table is consulted before the identity rule:
// an explicit mapping always overrides identity matching, even when a
// same-named property exists on the target.
func resolve(src Descriptor, table mapping.Table, targetProps []Descriptor, mode resolveMode) (resolution, bool) {
	name := src.Name

	entry, mapped := table.Lookup(name)
	if mapped {
		name = entry.TargetName
	} else {
		entry = mapping.Map{}
	}

	for _, tp := range targetProps {
		if tp.Name != name {
			continue
		}

		if !tp.CanRead || (mode == resolveCopy && !tp.CanWrite) {
			continue
		}

		return resolution{source: src, target: tp, entry: entry}, true
	}

	return resolution{}, false
}
