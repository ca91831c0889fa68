package category

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadFileDefaultsNameFromStem(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "overhead_panel.yaml", "events:\n  - OVHD_APU_SW_LEFT_BUTTON_DOWN\n")

	cat, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "overhead_panel", cat.Name)
	assert.Equal(t, "Overhead Panel", cat.Description)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "center_panel.json", "{}")
	writeTempFile(t, dir, "audio_panel.yaml", "")
	writeTempFile(t, dir, "variables.json", "{}")
	writeTempFile(t, dir, "notes.txt", "")

	files, err := ListFiles(dir)
	require.NoError(t, err)

	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, "audio_panel.yaml"), files[0])
	assert.Equal(t, filepath.Join(dir, "center_panel.json"), files[1])
}

func TestWriteFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "pedestal.yaml", `
category: pedestal
events:
  - PED_FUEL_BT_LEFT_BUTTON_DOWN
  - event: PED_DU1_BRT_KB_WHEEL_UP
    increment_by: 5
`)

	cat, err := LoadFile(path)
	require.NoError(t, err)

	cat.MarkPresent(map[string]bool{"PED_FUEL_BT_LEFT_BUTTON_DOWN": true})
	require.NoError(t, WriteFile(cat, path))

	reloaded, err := LoadFile(path)
	require.NoError(t, err)

	require.Len(t, reloaded.Events, 2)
	assert.True(t, reloaded.Events[0].Present)
	assert.Equal(t, "PED_FUEL_BT_LEFT_BUTTON_DOWN", reloaded.Events[0].Event)
	require.NotNil(t, reloaded.Events[1].Overrides.IncrementBy)
	assert.Equal(t, 5.0, *reloaded.Events[1].Overrides.IncrementBy)
	assert.Equal(t, 1, reloaded.PresentCount)
	assert.Equal(t, 2, reloaded.TotalCount)
}

func TestWriteFileKeepsJSONForm(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "center_panel.json",
		`{"category": "center_panel", "events": ["CTR_FUEL_BT_LEFT_BUTTON_DOWN", {"event": "PED_DU1_BRT_KB_WHEEL_UP", "increment_by": 5}]}`)

	cat, err := LoadFile(path)
	require.NoError(t, err)

	cat.MarkPresent(map[string]bool{"CTR_FUEL_BT_LEFT_BUTTON_DOWN": true})
	require.NoError(t, WriteFile(cat, path))

	// The rewritten file must still be valid JSON.
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "center_panel", doc["category"])

	reloaded, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, reloaded.Events, 2)
	assert.True(t, reloaded.Events[0].Present)
	require.NotNil(t, reloaded.Events[1].Overrides.IncrementBy)
	assert.Equal(t, 5.0, *reloaded.Events[1].Overrides.IncrementBy)
}

func TestChecklist(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "fmc_cdu.json",
		`{"category": "fmc_cdu", "events": ["EVT_A", "EVT_B // present"]}`)

	cl, err := LoadChecklist(path)
	require.NoError(t, err)

	assert.Equal(t, "fmc_cdu", cl.Category)
	assert.Equal(t, []string{"EVT_A", "EVT_B"}, cl.Names())

	n := cl.SetPresent(map[string]bool{"EVT_A": true})
	assert.Equal(t, 1, n)
	assert.True(t, cl.Events[0].Present)
	assert.False(t, cl.Events[1].Present)

	require.NoError(t, WriteChecklist(cl, path))

	// Checklist rewrites keep the JSON form of the source file.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, new(map[string]any)))

	reloaded, err := LoadChecklist(path)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.EventCount)
	assert.True(t, reloaded.Events[0].Present)
}
