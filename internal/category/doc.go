// Package category provides the declarative input schema: category event
// lists with optional per-event overrides, checklist files, and the
// "// present" marker convention.
//
// YAML is the canonical on-disk form; JSON files parse unchanged since YAML
// is a superset. Event entries come in two shapes, mirroring how the lists
// are maintained by hand:
//
//	events:
//	  - CTR_FUEL_BT_LEFT_BUTTON_DOWN
//	  - CTR_FUEL_BT_LEFT_BUTTON_UP // present
//	  - event: PED_DU1_BRT_KB_WHEEL_UP
//	    type: NumSet
//	    increment_by: 5
//
// Duplicate event names within one batch are a caller error; the last entry
// wins during grouping, matching the single-pass accumulation contract.
package category
