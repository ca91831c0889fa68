// Package diagnostic collects structured findings from grouping, type
// inference, and output generation. Non-fatal conditions (unknown variables,
// orphaned event halves, ignored overrides) are reported here instead of
// aborting the run; only structural failures become errors.
package diagnostic
