package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckHalfFound(t *testing.T) {
	corpus := "event_name: EVT_A\n"

	r := Check([]string{"EVT_A", "EVT_B"}, corpus)

	assert.Equal(t, 1, r.Found)
	assert.Equal(t, 2, r.Total)
	assert.Equal(t, 50.0, r.Percent())
	assert.Equal(t, []Entry{
		{Event: "EVT_A", Found: true},
		{Event: "EVT_B", Found: false},
	}, r.Entries)
}

func TestCheckEmptyChecklist(t *testing.T) {
	r := Check(nil, "event_name: EVT_A\n")

	assert.Equal(t, 0, r.Total)
	assert.Equal(t, 0.0, r.Percent())
	assert.Empty(t, r.FoundSet())
}

func TestCheckPercentRounding(t *testing.T) {
	r := Check([]string{"A", "B", "C"}, "A\nB\n")

	// 2/3 rounds to one decimal.
	assert.Equal(t, 66.7, r.Percent())
}

func TestCheckSubstringMatches(t *testing.T) {
	// Plain check is a substring search: a shorter name contained in a
	// longer one still counts.
	r := Check([]string{"GSC_ELEC"}, "event_name: GSC_ELEC_BT_LEFT_BUTTON_DOWN\n")

	assert.Equal(t, 1, r.Found)
}

func TestCheckKeyedRequiresExactValue(t *testing.T) {
	corpus := `# GSC_ELEC mentioned in a comment
event_name: GSC_ELEC_BT_LEFT_BUTTON_DOWN
off_event_name: GSC_ELEC_BT_LEFT_BUTTON_UP
down_event_name: PED_DU1_BRT_KB_WHEEL_DOWN
`

	r := CheckKeyed([]string{
		"GSC_ELEC_BT_LEFT_BUTTON_DOWN",
		"GSC_ELEC_BT_LEFT_BUTTON_UP",
		"PED_DU1_BRT_KB_WHEEL_DOWN",
		"GSC_ELEC",
		"PED_DU1_BRT_KB",
	}, corpus)

	assert.Equal(t, 3, r.Found)
	assert.Equal(t, 5, r.Total)
	assert.Equal(t, 60.0, r.Percent())

	set := r.FoundSet()
	assert.True(t, set["GSC_ELEC_BT_LEFT_BUTTON_UP"])
	assert.False(t, set["GSC_ELEC"])
}

func TestCheckKeyedScansPastNonMatches(t *testing.T) {
	corpus := "event_name: OTHER\nevent_name: EVT_A\n"

	r := CheckKeyed([]string{"EVT_A"}, corpus)

	assert.Equal(t, 1, r.Found)
}

func TestCheckIgnoresEmptyNames(t *testing.T) {
	r := Check([]string{""}, "anything")

	assert.Equal(t, 0, r.Found)
	assert.Equal(t, 1, r.Total)
}
