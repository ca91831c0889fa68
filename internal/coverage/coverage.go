// Package coverage implements the checklist-versus-corpus comparison: which
// expected events already appear in the generated output, and what fraction
// that amounts to.
package coverage

import (
	"math"
	"strings"
)

// Serialized key forms an event name can appear under in generated YAML.
var eventKeys = []string{
	"event_name:",
	"off_event_name:",
	"up_event_name:",
	"down_event_name:",
}

// Entry is the per-checklist-item result.
type Entry struct {
	Event string
	Found bool
}

// Result aggregates a coverage check over one checklist.
type Result struct {
	Entries []Entry
	Found   int
	Total   int
}

// Percent returns the coverage percentage rounded to one decimal place.
func (r Result) Percent() float64 {
	if r.Total == 0 {
		return 0
	}

	pct := float64(r.Found) / float64(r.Total) * 100

	return math.Round(pct*10) / 10
}

// FoundSet returns the found events as a lookup set, for marking entries in
// the source checklist. Mutating the checklist is the caller's job; this
// package only compares.
func (r Result) FoundSet() map[string]bool {
	set := make(map[string]bool, len(r.Entries))
	for _, e := range r.Entries {
		if e.Found {
			set[e.Event] = true
		}
	}

	return set
}

// Check compares each checklist event name against the serialized corpus by
// exact substring search. It is a pure read-only pass: no checklist entry is
// modified and the corpus is never parsed.
func Check(checklist []string, corpus string) Result {
	return check(checklist, func(event string) bool {
		return strings.Contains(corpus, event)
	})
}

// CheckKeyed is the stricter variant for YAML corpora: an event counts as
// present only when it is the value of one of the serialized event keys, so
// a mention inside a comment or a longer name does not count.
func CheckKeyed(checklist []string, corpus string) Result {
	return check(checklist, func(event string) bool {
		for _, key := range eventKeys {
			if containsKeyed(corpus, key, event) {
				return true
			}
		}

		return false
	})
}

func check(checklist []string, found func(string) bool) Result {
	r := Result{Total: len(checklist)}

	for _, event := range checklist {
		ok := event != "" && found(event)
		if ok {
			r.Found++
		}

		r.Entries = append(r.Entries, Entry{Event: event, Found: ok})
	}

	return r
}

// containsKeyed reports whether event appears as the value following key.
func containsKeyed(corpus, key, event string) bool {
	rest := corpus

	for {
		i := strings.Index(rest, key)
		if i < 0 {
			return false
		}

		rest = rest[i+len(key):]

		line := rest
		if nl := strings.IndexByte(line, '\n'); nl >= 0 {
			line = line[:nl]
		}

		if strings.TrimSpace(line) == event {
			return true
		}
	}
}
