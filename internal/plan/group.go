package plan

import (
	"control-generator/internal/category"
	"control-generator/internal/classify"
)

// groupKey identifies one group. Base alone is not enough: a button and a
// switch can share a prefix and must stay distinct.
type groupKey struct {
	base string
	kind classify.Kind
}

// BuildGroups runs the grouping engine over an ordered raw event batch.
// Entries already marked present are excluded before grouping. The first
// appearance of a (base, kind) key fixes that group's position in the output
// order, so identical inputs always produce identically ordered groups.
//
// A duplicate event name within the batch replaces the earlier occurrence
// (last one wins); duplicates are a caller error tolerated for robustness.
func BuildGroups(entries []category.EventEntry) []*Group {
	var (
		ordered []*Group
		byKey   = map[groupKey]*Group{}
		seenAt  = map[string]int{}
	)

	for _, e := range entries {
		if e.Present {
			continue
		}

		c := classify.Classify(e.Event)
		key := groupKey{base: c.Base, kind: c.Kind}

		g, ok := byKey[key]
		if !ok {
			g = &Group{Base: c.Base, Kind: c.Kind}
			byKey[key] = g
			ordered = append(ordered, g)
		}

		if i, dup := seenAt[e.Event]; dup {
			g.Events[i] = e
		} else {
			seenAt[e.Event] = len(g.Events)
			g.Events = append(g.Events, e)
		}

		g.Overrides = g.Overrides.Merge(e.Overrides)

		switch c.Role {
		case classify.ButtonDown, classify.SwitchLeft, classify.WheelDown:
			g.Down = e.Event
		case classify.ButtonUp, classify.WheelUp:
			g.Up = e.Event
		case classify.SwitchRight:
			g.Right = e.Event
		case classify.GroundButton:
			g.Ground = e.Event
		case classify.Plain:
			// Standalone event, no role slot.
		}
	}

	return ordered
}

// CountEvents returns the total number of events across all groups.
// Every non-filtered input event lands in exactly one group.
func CountEvents(groups []*Group) int {
	n := 0
	for _, g := range groups {
		n += len(g.Events)
	}

	return n
}
