// Package plan implements the grouping engine and type inference: the single
// ordered pass that turns a raw event batch into control groups, and the
// per-group decision between stateful toggle, incrementer, and plain event.
//
// Both passes are deterministic pure functions over in-memory data. Output
// order follows first appearance of each (base, kind) key in the input, so
// re-running on identical inputs yields byte-identical definitions.
package plan
