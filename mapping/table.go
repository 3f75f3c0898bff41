package mapping

import "fmt"

// Table is an ordered sequence of Map entries. Lookups are first match
// wins: duplicate source names are permitted and only the first
// encountered entry governs.
type Table []Map

// NewTable validates every entry the way NewMap does and returns the
// assembled table. Empty sentinel entries are allowed and are skipped by
// Lookup.
func NewTable(maps ...Map) (Table, error) {
	for i, m := range maps {
		if blank(m.SourceName) != blank(m.TargetName) {
			return nil, fmt.Errorf("entry %d: %w: source %q, target %q",
				i, ErrHalfMapped, m.SourceName, m.TargetName)
		}
	}

	return Table(maps), nil
}

// Lookup returns the first non-empty entry whose SourceName equals
// sourceName, and whether one was found.
func (t Table) Lookup(sourceName string) (Map, bool) {
	if blank(sourceName) {
		return Map{}, false
	}

	for _, m := range t {
		if !m.IsEmpty() && m.SourceName == sourceName {
			return m, true
		}
	}

	return Map{}, false
}
