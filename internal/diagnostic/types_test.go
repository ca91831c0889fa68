package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticsCollect(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddInfo("toggle_on_only", "no up event in group", "overhead_panel", "OVHD_APU_SW")
	d.AddWarning("orphan_event", "up event without down event", "overhead_panel", "FGS_HDG_BT")
	assert.True(t, d.IsValid())

	d.AddError("bad_input", "unreadable entry", "overhead_panel", "")
	assert.True(t, d.HasErrors())
	assert.False(t, d.IsValid())

	err := d.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad_input")
}

func TestDiagnosticsMerge(t *testing.T) {
	var a, b Diagnostics

	a.AddInfo("i", "one", "", "")
	b.AddError("e", "two", "", "")
	b.AddInfo("i", "three", "", "")

	a.Merge(b)

	assert.Len(t, a.Infos, 2)
	assert.Len(t, a.Errors, 1)
	assert.True(t, a.HasErrors())
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{
		Severity: SeverityWarning,
		Code:     "orphan_event",
		Message:  "up event without down event",
		Category: "overhead_panel",
		Event:    "FGS_HDG_BT",
	}

	assert.Equal(t,
		"[overhead_panel] FGS_HDG_BT: [orphan_event] up event without down event",
		d.String())

	bare := Diagnostic{Message: "plain"}
	assert.Equal(t, "plain", bare.String())
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(9).String())
}
