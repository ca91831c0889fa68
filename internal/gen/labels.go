package gen

import "strings"

// Control markers that terminate the readable part of an event name.
var labelMarkers = []string{"_BT_", "_SW_", "_KB_", "_GRD_"}

// CommentName derives a readable control label from an event name for the
// comment above each emitted group, e.g.
// "PED_CPT_RADIO_PNL_VHF1_BT_LEFT_BUTTON_DOWN" becomes "Cpt Radio Pnl Vhf1".
// Names without the expected shape are returned unchanged.
func CommentName(eventName string) string {
	// Drop the leading panel token; the module header names the panel.
	_, rest, found := strings.Cut(eventName, "_")
	if !found {
		return eventName
	}

	cut := -1

	for _, marker := range labelMarkers {
		if i := strings.Index(rest, marker); i >= 0 && (cut < 0 || i < cut) {
			cut = i
		}
	}

	if cut < 0 {
		return eventName
	}

	return titleWords(rest[:cut])
}

// titleWords turns "CPT_RADIO_PNL_VHF1" into "Cpt Radio Pnl Vhf1".
func titleWords(s string) string {
	words := strings.Split(s, "_")

	for i, w := range words {
		if w == "" {
			continue
		}

		lower := strings.ToLower(w)
		words[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}

	return strings.Join(words, " ")
}
