package mapping

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// TableFile represents the root of a YAML mapping-table definition.
// This is the authoritative, human-reviewed mapping configuration for a
// pair of shapes.
type TableFile struct {
	// Version of the table schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Maps is the ordered list of source->target pairs.
	Maps []MapDef `yaml:"maps"`
}

// MapDef is a single pair definition. Convert optionally names a
// converter registered in a ConvertRegistry.
type MapDef struct {
	Source  string `yaml:"source"`
	Target  string `yaml:"target"`
	Convert string `yaml:"convert,omitempty"`
}

// Parse parses YAML bytes into a TableFile.
func Parse(data []byte) (*TableFile, error) {
	var tf TableFile

	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse table file: %w", err)
	}

	return &tf, nil
}

var (
	ErrDuplicateConvert = errors.New("converter name already registered")
	ErrUnknownConvert   = errors.New("converter name is not registered")
)

// ConvertRegistry holds named converters available to table files. The
// actual implementations live in caller code; the registry only binds
// names used in YAML to functions.
type ConvertRegistry struct {
	converts map[string]Convert
}

// NewConvertRegistry creates a new empty converter registry.
func NewConvertRegistry() *ConvertRegistry {
	return &ConvertRegistry{converts: make(map[string]Convert)}
}

// Register binds name to fn. Duplicate names are rejected.
func (r *ConvertRegistry) Register(name string, fn Convert) error {
	if _, ok := r.converts[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateConvert, name)
	}

	r.converts[name] = fn

	return nil
}

// Lookup returns the converter bound to name.
func (r *ConvertRegistry) Lookup(name string) (Convert, bool) {
	fn, ok := r.converts[name]
	return fn, ok
}

// Build resolves a parsed table file against the registry, validating
// every entry the way NewMap does. reg may be nil when no entry names a
// converter.
func Build(tf *TableFile, reg *ConvertRegistry) (Table, error) {
	if tf == nil {
		return nil, errors.New("table file is nil")
	}

	table := make(Table, 0, len(tf.Maps))

	for i, def := range tf.Maps {
		var conv Convert

		if def.Convert != "" {
			if reg == nil {
				return nil, fmt.Errorf("entry %d: %w: %q", i, ErrUnknownConvert, def.Convert)
			}

			fn, ok := reg.Lookup(def.Convert)
			if !ok {
				return nil, fmt.Errorf("entry %d: %w: %q", i, ErrUnknownConvert, def.Convert)
			}

			conv = fn
		}

		m, err := NewMap(def.Source, def.Target, conv)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}

		table = append(table, m)
	}

	return table, nil
}

// Load is the Parse + Build convenience for callers holding raw YAML.
func Load(data []byte, reg *ConvertRegistry) (Table, error) {
	tf, err := Parse(data)
	if err != nil {
		return nil, err
	}

	return Build(tf, reg)
}
