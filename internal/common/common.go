// Package common provides small shared helpers used across the generator.
package common

import "sort"

// UnknownStr is the fallback name for out-of-range enum values.
const UnknownStr = "unknown"

// SortedKeys returns the keys of a string-keyed map in sorted order,
// for deterministic iteration.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
