package classify

import (
	"strings"

	"control-generator/internal/common"
)

// Event name suffixes recognized by the classifier. Each physical control
// exposes its interactions through a fixed suffix grammar; the part before
// the suffix plus the control marker (_BT, _SW, _GRD, _KB) is the base
// identifier shared by all events of one control.
const (
	suffixGroundDown  = "_GRD_LEFT_BUTTON_DOWN"
	suffixWheelUp     = "_KB_WHEEL_UP"
	suffixWheelDown   = "_KB_WHEEL_DOWN"
	suffixSwitchLeft  = "_SW_LEFT_BUTTON_DOWN"
	suffixSwitchRight = "_SW_RIGHT_BUTTON_DOWN"
	suffixButtonDown  = "_BT_LEFT_BUTTON_DOWN"
	suffixButtonUp    = "_BT_LEFT_BUTTON_UP"

	markerGround = "_GRD"
	markerWheel  = "_KB"
	markerSwitch = "_SW"
	markerButton = "_BT"
)

//go:generate go tool stringer -type=Role -output=role_string.go

// Role is the interaction role a single event plays within its control.
type Role int

const (
	GroundButton Role = iota
	WheelUp
	WheelDown
	SwitchLeft
	SwitchRight
	ButtonDown
	ButtonUp
	Plain
)

// Kind is the physical interaction category of a control.
type Kind int

const (
	KindButton Kind = iota
	KindSwitch
	KindWheel
	KindGroundButton
)

// String returns the serialized name of the control kind.
func (k Kind) String() string {
	switch k {
	case KindButton:
		return "button"
	case KindSwitch:
		return "switch"
	case KindWheel:
		return "wheel"
	case KindGroundButton:
		return "ground_button"
	default:
		return common.UnknownStr
	}
}

// Classification is the result of classifying one raw event name.
type Classification struct {
	// Base is the identifier shared by all events of the same control.
	Base string
	// Kind is the control kind implied by the event's suffix.
	Kind Kind
	// Role is the interaction role of this particular event.
	Role Role
}

// Classify determines the control role of a raw event name and derives the
// base identifier used for grouping. Matching is most-specific-first since
// several suffixes share tails (a ground button also ends in LEFT_BUTTON_DOWN).
// Unrecognized names fall through to a standalone momentary event whose base
// is the whole name; no input is ever rejected.
func Classify(event string) Classification {
	switch {
	case strings.HasSuffix(event, suffixGroundDown):
		// Base keeps the _GRD marker so the ground control never
		// collides with its non-ground sibling.
		return Classification{
			Base: strings.TrimSuffix(event, suffixGroundDown) + markerGround,
			Kind: KindGroundButton,
			Role: GroundButton,
		}

	case strings.HasSuffix(event, suffixWheelUp):
		// The base retains everything up to and including _KB. For
		// brightness wheels that includes the _BRT qualifier, so two
		// brightness wheels on the same panel stay distinct.
		return Classification{
			Base: strings.TrimSuffix(event, "_WHEEL_UP"),
			Kind: KindWheel,
			Role: WheelUp,
		}

	case strings.HasSuffix(event, suffixWheelDown):
		return Classification{
			Base: strings.TrimSuffix(event, "_WHEEL_DOWN"),
			Kind: KindWheel,
			Role: WheelDown,
		}

	case strings.HasSuffix(event, suffixSwitchRight):
		// RIGHT presses map onto the LEFT switch's base so both sides
		// of one physical switch merge into a single group.
		return Classification{
			Base: strings.TrimSuffix(event, suffixSwitchRight) + markerSwitch,
			Kind: KindSwitch,
			Role: SwitchRight,
		}

	case strings.HasSuffix(event, suffixSwitchLeft):
		return Classification{
			Base: strings.TrimSuffix(event, suffixSwitchLeft) + markerSwitch,
			Kind: KindSwitch,
			Role: SwitchLeft,
		}

	case strings.HasSuffix(event, suffixButtonDown):
		// _BT stays in the base so buttons and switches sharing a
		// prefix remain distinct groups.
		return Classification{
			Base: strings.TrimSuffix(event, suffixButtonDown) + markerButton,
			Kind: KindButton,
			Role: ButtonDown,
		}

	case strings.HasSuffix(event, suffixButtonUp):
		return Classification{
			Base: strings.TrimSuffix(event, suffixButtonUp) + markerButton,
			Kind: KindButton,
			Role: ButtonUp,
		}

	default:
		return Classification{
			Base: event,
			Kind: KindButton,
			Role: Plain,
		}
	}
}
