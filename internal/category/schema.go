package category

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// PresentMarker is the external convention marking an event entry as already
// satisfied by previously generated output. Marked entries are filtered out
// before grouping and restored when the category file is rewritten.
const PresentMarker = " // present"

// Category represents one declarative category file: an ordered list of raw
// event names (with optional per-event overrides) for one panel or subsystem.
type Category struct {
	// Name of the category (e.g. "center_panel").
	Name string `yaml:"category,omitempty" json:"category,omitempty"`

	// Description shown in the generated module header.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Events is the ordered raw event list. Order is significant: it fixes
	// the output order of the generated control groups.
	Events []EventEntry `yaml:"events" json:"events"`

	// PresentCount and TotalCount are bookkeeping fields rewritten after
	// each generation pass.
	PresentCount int `yaml:"present_count,omitempty" json:"present_count,omitempty"`
	TotalCount   int `yaml:"total_count,omitempty" json:"total_count,omitempty"`
}

// EventEntry is one raw event: a name, an already-present flag, and optional
// caller-supplied overrides that take precedence over inferred values.
//
// YAML formats supported:
//   - Plain string: "CTR_FUEL_BT_LEFT_BUTTON_DOWN"
//   - Marked string: "CTR_FUEL_BT_LEFT_BUTTON_DOWN // present"
//   - Object: {event: CTR_FUEL_BT_LEFT_BUTTON_DOWN, type: NumSet, add_by: 1}
type EventEntry struct {
	// Event is the raw event name.
	Event string

	// Present is true when the entry carried the present marker.
	Present bool

	// Overrides holds any caller-supplied override values.
	Overrides Overrides
}

// Override keys with dedicated handling. Anything else lands in Extra.
const (
	keyEvent         = "event"
	keyType          = "type"
	keyUnreliable    = "unreliable"
	keyUseCalculator = "use_calculator"
	keyAddBy         = "add_by"
	keyMultiplyBy    = "multiply_by"
	keyIncrementBy   = "increment_by"
	keyCancelHEvents = "cancel_h_events"
)

// Overrides is caller-supplied data merged onto the final control definition
// without further validation beyond kind compatibility. Pointer fields
// distinguish "not set" from explicit zero values.
type Overrides struct {
	// Type replaces the inferred definition type outright.
	Type string

	// Unreliable flags the backing variable as unreliable.
	Unreliable *bool

	// UseCalculator forces calculator-code execution for the events.
	UseCalculator *bool

	// AddBy and MultiplyBy adjust the variable value written by the control.
	AddBy      *float64
	MultiplyBy *float64

	// IncrementBy sets the step size of an incrementer. Meaningful only on
	// increment definitions; a no-op elsewhere.
	IncrementBy *float64

	// CancelHEvents suppresses companion H: events.
	CancelHEvents *bool

	// Extra carries any remaining key/value pairs verbatim.
	Extra map[string]any
}

// IsZero returns true if no override value is set.
func (o Overrides) IsZero() bool {
	return o.Type == "" &&
		o.Unreliable == nil &&
		o.UseCalculator == nil &&
		o.AddBy == nil &&
		o.MultiplyBy == nil &&
		o.IncrementBy == nil &&
		o.CancelHEvents == nil &&
		len(o.Extra) == 0
}

// Merge returns the result of applying other on top of o. Values set in
// other win; unset fields keep o's values.
func (o Overrides) Merge(other Overrides) Overrides {
	out := o

	if other.Type != "" {
		out.Type = other.Type
	}

	if other.Unreliable != nil {
		out.Unreliable = other.Unreliable
	}

	if other.UseCalculator != nil {
		out.UseCalculator = other.UseCalculator
	}

	if other.AddBy != nil {
		out.AddBy = other.AddBy
	}

	if other.MultiplyBy != nil {
		out.MultiplyBy = other.MultiplyBy
	}

	if other.IncrementBy != nil {
		out.IncrementBy = other.IncrementBy
	}

	if other.CancelHEvents != nil {
		out.CancelHEvents = other.CancelHEvents
	}

	if len(other.Extra) > 0 {
		if out.Extra == nil {
			out.Extra = make(map[string]any, len(other.Extra))
		} else {
			merged := make(map[string]any, len(out.Extra)+len(other.Extra))
			for k, v := range out.Extra {
				merged[k] = v
			}
			out.Extra = merged
		}

		for k, v := range other.Extra {
			out.Extra[k] = v
		}
	}

	return out
}

// UnmarshalYAML accepts the plain string, marked string, and object entry forms.
func (e *EventEntry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string

		err := node.Decode(&s)
		if err != nil {
			return err
		}

		name, present := splitPresentMarker(s)
		*e = EventEntry{Event: name, Present: present}

		return nil

	case yaml.MappingNode:
		var m map[string]any

		err := node.Decode(&m)
		if err != nil {
			return err
		}

		name, ok := m[keyEvent].(string)
		if !ok || name == "" {
			return fmt.Errorf("event entry object requires a non-empty %q key", keyEvent)
		}

		name, present := splitPresentMarker(name)
		delete(m, keyEvent)

		overrides, err := overridesFromMap(m)
		if err != nil {
			return fmt.Errorf("event %s: %w", name, err)
		}

		*e = EventEntry{Event: name, Present: present, Overrides: overrides}

		return nil

	default:
		return fmt.Errorf("expected string or object for event entry, got %v", node.Kind)
	}
}

// MarshalYAML emits the same form the entry was read in: a scalar for plain
// entries (marker re-appended when present) and an object when overrides exist.
func (e EventEntry) MarshalYAML() (any, error) {
	if e.Overrides.IsZero() {
		if e.Present {
			return e.Event + PresentMarker, nil
		}

		return e.Event, nil
	}

	name := e.Event
	if e.Present {
		name += PresentMarker
	}

	m := map[string]any{keyEvent: name}
	e.Overrides.fillMap(m)

	return m, nil
}

// MarshalJSON emits the same forms as MarshalYAML, for categories and
// checklists maintained as JSON.
func (e EventEntry) MarshalJSON() ([]byte, error) {
	v, err := e.MarshalYAML()
	if err != nil {
		return nil, err
	}

	return json.Marshal(v)
}

// splitPresentMarker strips the present marker from an event name.
func splitPresentMarker(s string) (name string, present bool) {
	s = strings.TrimSpace(s)
	if trimmed, ok := strings.CutSuffix(s, strings.TrimSpace(PresentMarker)); ok {
		return strings.TrimSpace(trimmed), true
	}

	return s, false
}

// overridesFromMap builds Overrides from decoded object keys.
func overridesFromMap(m map[string]any) (Overrides, error) {
	var o Overrides

	for key, val := range m {
		switch key {
		case keyType:
			s, ok := val.(string)
			if !ok {
				return o, fmt.Errorf("override %s: expected string, got %T", key, val)
			}

			o.Type = s

		case keyUnreliable, keyUseCalculator, keyCancelHEvents:
			b, ok := val.(bool)
			if !ok {
				return o, fmt.Errorf("override %s: expected bool, got %T", key, val)
			}

			switch key {
			case keyUnreliable:
				o.Unreliable = &b
			case keyUseCalculator:
				o.UseCalculator = &b
			case keyCancelHEvents:
				o.CancelHEvents = &b
			}

		case keyAddBy, keyMultiplyBy, keyIncrementBy:
			f, err := toFloat(val)
			if err != nil {
				return o, fmt.Errorf("override %s: %w", key, err)
			}

			switch key {
			case keyAddBy:
				o.AddBy = &f
			case keyMultiplyBy:
				o.MultiplyBy = &f
			case keyIncrementBy:
				o.IncrementBy = &f
			}

		default:
			if o.Extra == nil {
				o.Extra = map[string]any{}
			}

			o.Extra[key] = val
		}
	}

	return o, nil
}

// fillMap writes the set override values into m under their canonical keys.
func (o Overrides) fillMap(m map[string]any) {
	if o.Type != "" {
		m[keyType] = o.Type
	}

	if o.Unreliable != nil {
		m[keyUnreliable] = *o.Unreliable
	}

	if o.UseCalculator != nil {
		m[keyUseCalculator] = *o.UseCalculator
	}

	if o.AddBy != nil {
		m[keyAddBy] = *o.AddBy
	}

	if o.MultiplyBy != nil {
		m[keyMultiplyBy] = *o.MultiplyBy
	}

	if o.IncrementBy != nil {
		m[keyIncrementBy] = *o.IncrementBy
	}

	if o.CancelHEvents != nil {
		m[keyCancelHEvents] = *o.CancelHEvents
	}

	for k, v := range o.Extra {
		m[k] = v
	}
}

// toFloat coerces YAML numeric values to float64.
func toFloat(val any) (float64, error) {
	switch v := val.(type) {
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	default:
		return 0, fmt.Errorf("expected number, got %T", val)
	}
}
