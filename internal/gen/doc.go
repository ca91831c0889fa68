// Package gen provides deterministic YAML rendering for control definitions.
//
// Output is built from yaml.Node trees rather than marshaled structs so key
// order, comment labels, and two-space indentation stay stable across runs —
// generated files are diffed and committed, so byte-identical regeneration
// matters.
package gen
