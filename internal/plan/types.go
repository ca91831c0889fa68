package plan

import (
	"control-generator/internal/category"
	"control-generator/internal/classify"
	"control-generator/internal/common"
)

// Group aggregates the raw events belonging to one logical control.
// Groups are keyed by (base identifier, control kind): a role mismatch on a
// shared prefix opens a distinct group instead of merging.
type Group struct {
	// Base is the identifier shared by the group's events.
	Base string

	// Kind is the physical control kind.
	Kind classify.Kind

	// Events holds the group's entries in arrival order.
	Events []category.EventEntry

	// Role slots. A slot is empty when the input carried no event for it
	// (an orphan half of a pair is still grouped, its sibling absent).
	Down   string
	Up     string
	Right  string
	Ground string

	// Overrides is the merge of all member entries' overrides,
	// later entries winning.
	Overrides category.Overrides
}

// Len returns the number of events in the group.
func (g *Group) Len() int {
	return len(g.Events)
}

// DefinitionKind is the output control type.
type DefinitionKind int

const (
	// DefEvent is a plain momentary event with no variable attached.
	DefEvent DefinitionKind = iota
	// DefToggle is a stateful toggle backed by a boolean variable.
	DefToggle
	// DefIncrement is an incrementer backed by a numeric variable.
	DefIncrement
)

// String returns a human-readable representation of the definition kind.
func (k DefinitionKind) String() string {
	switch k {
	case DefEvent:
		return "event"
	case DefToggle:
		return "toggle"
	case DefIncrement:
		return "increment"
	default:
		return common.UnknownStr
	}
}

// Serialized type tags for the supported definition kinds.
const (
	TypeEvent        = "event"
	TypeToggleSwitch = "ToggleSwitch"
	TypeNumIncrement = "NumIncrement"
)

// Definition is the final output unit, ready for serialization.
// A toggle always carries a boolean variable reference; an increment always
// carries a numeric variable reference and a step size; a plain event
// carries no variable.
type Definition struct {
	// Kind is the inferred (or overridden) definition kind.
	Kind DefinitionKind

	// Type is the serialized type tag. An explicit type override replaces
	// the inferred tag verbatim.
	Type string

	// VarName is the referenced state variable (e.g. "L:MD11_CTR_FUEL_BT"),
	// empty for plain events.
	VarName  string
	VarUnits string
	VarType  string

	// Event name fields. Toggles use EventName (on) and OffEventName;
	// incrementers use UpEventName and DownEventName; plain events use
	// EventName alone.
	EventName     string
	OffEventName  string
	UpEventName   string
	DownEventName string

	// IncrementBy is the step size, set on incrementers only.
	IncrementBy *float64

	// Overrides holds the remaining caller-supplied values to serialize
	// after the built-in fields. Consumed keys (type, increment step) are
	// cleared here.
	Overrides category.Overrides
}
