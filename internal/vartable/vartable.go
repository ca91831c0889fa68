// Package vartable provides the immutable lookup table of known simulator
// state variables and their declared data kinds. The table is loaded once
// per run and consulted read-only during type inference.
package vartable

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"control-generator/internal/common"
)

// Kind is the declared data kind of a state variable.
type Kind int

const (
	// KindUnknown means the identifier is not present in the table.
	KindUnknown Kind = iota
	// KindBoolean marks on/off state variables backing toggle controls.
	KindBoolean
	// KindNumeric marks numeric state variables backing incrementer controls.
	KindNumeric
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return common.UnknownStr
	case KindBoolean:
		return "boolean"
	case KindNumeric:
		return "numeric"
	default:
		return common.UnknownStr
	}
}

// Table is an immutable mapping from variable identifier to declared kind.
type Table struct {
	kinds map[string]Kind
}

// New builds a Table from the given identifier-to-kind entries.
func New(entries map[string]Kind) *Table {
	kinds := make(map[string]Kind, len(entries))
	for name, kind := range entries {
		kinds[name] = kind
	}

	return &Table{kinds: kinds}
}

// Lookup returns the declared kind for an identifier.
// Absent identifiers yield KindUnknown; that is a signal, not an error.
func (t *Table) Lookup(ident string) Kind {
	if t == nil {
		return KindUnknown
	}

	if kind, ok := t.kinds[ident]; ok {
		return kind
	}

	return KindUnknown
}

// Contains returns true if the identifier is declared in the table.
func (t *Table) Contains(ident string) bool {
	return t.Lookup(ident) != KindUnknown
}

// Len returns the number of declared variables.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.kinds)
}

// variablesFile is the on-disk shape of the variables input.
// The "variables" key accepts two forms:
//   - a map of identifier to kind ("bool"/"number")
//   - a legacy flat list of identifiers
type variablesFile struct {
	Variables variablesValue `yaml:"variables"`
}

type variablesValue struct {
	entries map[string]Kind
}

// UnmarshalYAML accepts either the kind map or the legacy list form.
func (v *variablesValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		var m map[string]string

		err := node.Decode(&m)
		if err != nil {
			return err
		}

		entries := make(map[string]Kind, len(m))

		for name, kindStr := range m {
			kind, err := parseKind(kindStr)
			if err != nil {
				return fmt.Errorf("variable %s: %w", name, err)
			}

			entries[name] = kind
		}

		v.entries = entries

		return nil

	case yaml.SequenceNode:
		var list []string

		err := node.Decode(&list)
		if err != nil {
			return err
		}

		entries := make(map[string]Kind, len(list))
		for _, name := range list {
			entries[name] = legacyKind(name)
		}

		v.entries = entries

		return nil

	default:
		return fmt.Errorf("expected map or list of variables, got %v", node.Kind)
	}
}

// parseKind maps a declared kind string onto a Kind.
func parseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "bool", "boolean":
		return KindBoolean, nil
	case "number", "numeric", "f64":
		return KindNumeric, nil
	default:
		return KindUnknown, fmt.Errorf("unrecognized variable kind %q", s)
	}
}

// legacyKind derives the kind for list-form entries from the base-name
// marker. Wheel control bases end in _KB and back numeric variables;
// everything else backs an on/off variable.
func legacyKind(name string) Kind {
	if strings.HasSuffix(name, "_KB") {
		return KindNumeric
	}

	return KindBoolean
}

// Parse parses YAML (or JSON) variables data into a Table.
func Parse(data []byte) (*Table, error) {
	var vf variablesFile

	err := yaml.Unmarshal(data, &vf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse variables: %w", err)
	}

	return New(vf.Variables.entries), nil
}

// LoadFile loads and parses a variables file from the given path.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read variables file %s: %w", path, err)
	}

	return Parse(data)
}
