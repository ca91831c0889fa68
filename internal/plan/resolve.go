package plan

import (
	"fmt"

	"control-generator/internal/category"
	"control-generator/internal/classify"
	"control-generator/internal/diagnostic"
	"control-generator/internal/vartable"
)

// Default step size for incrementers without an explicit override.
const defaultIncrement = 1.0

// ResolveOptions configures type inference.
type ResolveOptions struct {
	// VarPrefix is prepended to a group's base identifier to form the
	// candidate variable identifier (e.g. "MD11_").
	VarPrefix string

	// VarRefPrefix is the reference prefix used in emitted definitions
	// (e.g. "L:").
	VarRefPrefix string

	// Category names the input batch in diagnostics.
	Category string
}

// DefaultResolveOptions returns the conventional option values.
func DefaultResolveOptions() ResolveOptions {
	return ResolveOptions{
		VarPrefix:    "MD11_",
		VarRefPrefix: "L:",
	}
}

// Resolve applies type inference to each group, consulting the variable
// table, and produces the ordered definition sequence. Groups whose base
// resolves to a boolean variable become toggles; numeric wheel groups become
// incrementers; everything else falls back to one plain event definition per
// member event, so no input event is ever dropped.
//
// A group with a right-hand press never becomes a toggle: both switch sides
// are presses, so neither can serve as the off trigger, and a toggle would
// have no slot for the right event.
//
// Caller-supplied overrides take precedence over inferred values. Override
// keys irrelevant to the resolved kind are no-ops reported as infos.
func Resolve(groups []*Group, table *vartable.Table, opts ResolveOptions) ([]Definition, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}

	var defs []Definition
	for _, g := range groups {
		defs = append(defs, resolveGroup(g, table, opts, diags)...)
	}

	return defs, diags
}

// resolveGroup produces the definitions for a single group.
func resolveGroup(g *Group, table *vartable.Table, opts ResolveOptions, diags *diagnostic.Diagnostics) []Definition {
	candidate := opts.VarPrefix + g.Base
	kind := table.Lookup(candidate)
	varRef := opts.VarRefPrefix + candidate

	switch {
	case kind == vartable.KindBoolean && g.Down != "" && g.Right == "":
		return []Definition{resolveToggle(g, varRef, opts, diags)}

	case kind == vartable.KindNumeric && g.Kind == classify.KindWheel && g.Down != "" && g.Up != "":
		return []Definition{resolveIncrement(g, varRef)}

	default:
		if kind != vartable.KindUnknown {
			diags.AddInfo("variable_unused",
				fmt.Sprintf("variable %s is %s but the group shape does not fit; emitting plain events", candidate, kind),
				opts.Category, g.Base)
		}

		return resolveEvents(g, opts, diags)
	}
}

// resolveToggle builds a stateful toggle from a button or wheel group backed
// by a boolean variable.
func resolveToggle(g *Group, varRef string, opts ResolveOptions, diags *diagnostic.Diagnostics) Definition {
	def := Definition{
		Kind:      DefToggle,
		Type:      TypeToggleSwitch,
		VarName:   varRef,
		VarUnits:  "Bool",
		VarType:   "bool",
		EventName: g.Down,
		Overrides: remainingOverrides(g.Overrides),
	}

	if g.Up != "" {
		def.OffEventName = g.Up
	} else {
		// On-only toggle: the control can be switched on but never off.
		diags.AddInfo("toggle_on_only",
			"no up event in group; toggle has no off trigger",
			opts.Category, g.Base)
	}

	if g.Overrides.Type != "" {
		def.Type = g.Overrides.Type
	}

	if g.Overrides.IncrementBy != nil {
		diags.AddInfo("override_ignored",
			"increment_by override is only meaningful on incrementers",
			opts.Category, g.Base)
	}

	return def
}

// resolveIncrement builds an incrementer from a wheel group backed by a
// numeric variable. The step size defaults to 1 unless overridden.
func resolveIncrement(g *Group, varRef string) Definition {
	step := defaultIncrement
	if g.Overrides.IncrementBy != nil {
		step = *g.Overrides.IncrementBy
	}

	def := Definition{
		Kind:          DefIncrement,
		Type:          TypeNumIncrement,
		VarName:       varRef,
		VarUnits:      "Number",
		VarType:       "f64",
		UpEventName:   g.Up,
		DownEventName: g.Down,
		IncrementBy:   &step,
		Overrides:     remainingOverrides(g.Overrides),
	}

	if g.Overrides.Type != "" {
		def.Type = g.Overrides.Type
	}

	return def
}

// resolveEvents is the fallback: one plain event definition per member
// event, keeping total coverage of the input even without a known variable.
func resolveEvents(g *Group, opts ResolveOptions, diags *diagnostic.Diagnostics) []Definition {
	if g.Up != "" && g.Down == "" {
		diags.AddWarning("orphan_event",
			"group has an up event but no down event",
			opts.Category, g.Base)
	}

	typ := TypeEvent
	if g.Overrides.Type != "" {
		typ = g.Overrides.Type
	}

	if g.Overrides.IncrementBy != nil {
		diags.AddInfo("override_ignored",
			"increment_by override is only meaningful on incrementers",
			opts.Category, g.Base)
	}

	defs := make([]Definition, 0, len(g.Events))
	for _, e := range g.Events {
		defs = append(defs, Definition{
			Kind:      DefEvent,
			Type:      typ,
			EventName: e.Event,
			Overrides: remainingOverrides(g.Overrides),
		})
	}

	return defs
}

// remainingOverrides clears the override keys consumed by inference
// (type and increment step) and returns the rest for serialization.
func remainingOverrides(o category.Overrides) category.Overrides {
	o.Type = ""
	o.IncrementBy = nil

	return o
}
