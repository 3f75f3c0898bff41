package dataobject

import "github.com/lord-saumagen/DataObjectExtension/mapping"

// Exclusion is a caller-supplied predicate removing specific properties
// from consideration. It is evaluated once per property per call and
// must not mutate shared state.
type Exclusion func(Descriptor) bool

// Option adjusts the configuration of a single engine call. Zero or
// more Options can be passed to CreateHash, IsEqualTo and CopyTo.
type Option func(cfg *config)

// OptionTable supplies an explicit mapping table for the call.
func OptionTable(t mapping.Table) Option {
	return func(cfg *config) {
		cfg.table = t
	}
}

// OptionExclude supplies an exclusion predicate for the call.
func OptionExclude(pred Exclusion) Option {
	return func(cfg *config) {
		cfg.exclude = pred
	}
}

type config struct {
	table   mapping.Table
	exclude Exclusion
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// included filters props through the exclusion predicate, preserving
// order.
func (c *config) included(props []Descriptor) []Descriptor {
	if c.exclude == nil {
		return props
	}

	kept := make([]Descriptor, 0, len(props))

	for _, p := range props {
		if c.exclude(p) {
			continue
		}

		kept = append(kept, p)
	}

	return kept
}
