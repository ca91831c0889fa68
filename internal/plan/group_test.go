package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"control-generator/internal/category"
	"control-generator/internal/classify"
)

func entries(names ...string) []category.EventEntry {
	out := make([]category.EventEntry, len(names))
	for i, n := range names {
		out[i] = category.EventEntry{Event: n}
	}

	return out
}

func TestBuildGroupsButtonPair(t *testing.T) {
	groups := BuildGroups(entries(
		"GSC_ELEC_BT_LEFT_BUTTON_DOWN",
		"GSC_ELEC_BT_LEFT_BUTTON_UP",
	))

	require.Len(t, groups, 1)

	g := groups[0]
	assert.Equal(t, "GSC_ELEC_BT", g.Base)
	assert.Equal(t, classify.KindButton, g.Kind)
	assert.Equal(t, "GSC_ELEC_BT_LEFT_BUTTON_DOWN", g.Down)
	assert.Equal(t, "GSC_ELEC_BT_LEFT_BUTTON_UP", g.Up)
	assert.Len(t, g.Events, 2)
}

func TestBuildGroupsSwitchSidesMerge(t *testing.T) {
	groups := BuildGroups(entries(
		"OVHD_APU_SW_LEFT_BUTTON_DOWN",
		"OVHD_APU_SW_RIGHT_BUTTON_DOWN",
	))

	require.Len(t, groups, 1)

	g := groups[0]
	assert.Equal(t, "OVHD_APU_SW", g.Base)
	assert.Equal(t, classify.KindSwitch, g.Kind)
	assert.Equal(t, "OVHD_APU_SW_LEFT_BUTTON_DOWN", g.Down)
	assert.Equal(t, "OVHD_APU_SW_RIGHT_BUTTON_DOWN", g.Right)
}

func TestBuildGroupsFirstAppearanceOrder(t *testing.T) {
	groups := BuildGroups(entries(
		"PED_DU1_BRT_KB_WHEEL_UP",
		"GSC_ELEC_BT_LEFT_BUTTON_DOWN",
		"ANNUN_LT_TEST",
		"PED_DU1_BRT_KB_WHEEL_DOWN",
		"GSC_ELEC_BT_LEFT_BUTTON_UP",
	))

	require.Len(t, groups, 3)
	assert.Equal(t, "PED_DU1_BRT_KB", groups[0].Base)
	assert.Equal(t, "GSC_ELEC_BT", groups[1].Base)
	assert.Equal(t, "ANNUN_LT_TEST", groups[2].Base)
}

func TestBuildGroupsSkipsPresentEntries(t *testing.T) {
	in := entries(
		"GSC_ELEC_BT_LEFT_BUTTON_DOWN",
		"GSC_ELEC_BT_LEFT_BUTTON_UP",
	)
	in[1].Present = true

	groups := BuildGroups(in)

	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Events, 1)
	assert.Empty(t, groups[0].Up)
}

func TestBuildGroupsDuplicateLastWins(t *testing.T) {
	five := 5.0
	in := []category.EventEntry{
		{Event: "PED_DU1_BRT_KB_WHEEL_UP"},
		{Event: "PED_DU1_BRT_KB_WHEEL_DOWN"},
		{Event: "PED_DU1_BRT_KB_WHEEL_UP", Overrides: category.Overrides{IncrementBy: &five}},
	}

	groups := BuildGroups(in)

	require.Len(t, groups, 1)

	g := groups[0]
	require.Len(t, g.Events, 2)
	assert.Equal(t, "PED_DU1_BRT_KB_WHEEL_UP", g.Events[0].Event)
	require.NotNil(t, g.Events[0].Overrides.IncrementBy)
	assert.Equal(t, 5.0, *g.Events[0].Overrides.IncrementBy)
	require.NotNil(t, g.Overrides.IncrementBy)
	assert.Equal(t, 5.0, *g.Overrides.IncrementBy)
}

func TestBuildGroupsButtonAndGroundStayDistinct(t *testing.T) {
	groups := BuildGroups(entries(
		"CTR_PARK_GRD_LEFT_BUTTON_DOWN",
		"CTR_PARK_BT_LEFT_BUTTON_DOWN",
	))

	require.Len(t, groups, 2)
	assert.Equal(t, "CTR_PARK_GRD", groups[0].Base)
	assert.Equal(t, classify.KindGroundButton, groups[0].Kind)
	assert.Equal(t, "CTR_PARK_BT", groups[1].Base)
	assert.Equal(t, classify.KindButton, groups[1].Kind)
}

func TestCountEventsMatchesInput(t *testing.T) {
	in := entries(
		"OVHD_APU_SW_LEFT_BUTTON_DOWN",
		"OVHD_APU_SW_RIGHT_BUTTON_DOWN",
		"PED_DU1_BRT_KB_WHEEL_UP",
		"ANNUN_LT_TEST",
	)

	groups := BuildGroups(in)

	assert.Equal(t, len(in), CountEvents(groups))
}
