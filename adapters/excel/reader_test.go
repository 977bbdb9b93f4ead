package excel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trialstat/domain/core"
)

func trialRows() [][]string {
	return [][]string{
		{"parameter", "block", "is_control", "value"},
		{"plant_height_cm", "P0", "true", "41.5"},
		{"plant_height_cm", "P0", "true", "42.3"},
		{"plant_height_cm", "P1", "false", "44.0"},
		{"plant_height_cm", "P1", "false", "45.2"},
		{"yield_t_ha", "P0", "true", "5.1"},
		{"yield_t_ha", "P1", "false", "5.9"},
	}
}

func TestGroupRows_GroupsByParameterAndBlock(t *testing.T) {
	data, err := groupRows(trialRows())
	require.NoError(t, err)

	assert.Equal(t, 6, data.RowCount)
	assert.Equal(t, 0, data.Skipped)
	require.Equal(t, []core.ParameterKey{"plant_height_cm", "yield_t_ha"}, data.Parameters)

	height := data.Sets["plant_height_cm"]
	require.Len(t, height.Groups, 2)
	assert.Equal(t, "P0", height.Groups[0].Code)
	assert.True(t, height.Groups[0].IsControl)
	assert.Equal(t, []float64{41.5, 42.3}, height.Groups[0].Values)
	assert.Equal(t, []float64{44.0, 45.2}, height.Groups[1].Values)

	yield := data.Sets["yield_t_ha"]
	require.Len(t, yield.Groups, 2)
	assert.Equal(t, 0, yield.ControlIndex())
}

func TestGroupRows_SkipsBadValues(t *testing.T) {
	rows := trialRows()
	rows = append(rows,
		[]string{"yield_t_ha", "P1", "false", "not-a-number"},
		[]string{"yield_t_ha", "", "false", "5.0"},
		[]string{"yield_t_ha", "P1", "false", ""},
	)

	data, err := groupRows(rows)
	require.NoError(t, err)

	assert.Equal(t, 6, data.RowCount)
	assert.Equal(t, 3, data.Skipped)
}

func TestGroupRows_ControlColumnOptional(t *testing.T) {
	rows := [][]string{
		{"Parameter", "Block", "Value"},
		{"yield_t_ha", "A", "5.1"},
		{"yield_t_ha", "B", "5.9"},
	}

	data, err := groupRows(rows)
	require.NoError(t, err)

	gs := data.Sets["yield_t_ha"]
	assert.Equal(t, -1, gs.ControlIndex())
}

func TestGroupRows_MissingRequiredColumn(t *testing.T) {
	rows := [][]string{
		{"parameter", "value"},
		{"yield_t_ha", "5.1"},
	}

	_, err := groupRows(rows)
	require.Error(t, err)
}

func TestReadData_CSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trial.csv")
	content := "parameter,block,is_control,value\n" +
		"plant_height_cm,P0,true,41.5\n" +
		"plant_height_cm,P1,false,44.0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	reader := NewDataReader(path, "Sheet1")
	data, err := reader.ReadData()
	require.NoError(t, err)

	assert.Equal(t, 2, data.RowCount)
	sets := data.GroupSets()
	require.Len(t, sets, 1)
	assert.Equal(t, core.ParameterKey("plant_height_cm"), sets[0].Parameter)
}

func TestReadData_MissingFile(t *testing.T) {
	reader := NewDataReader("/nonexistent/trial.xlsx", "Sheet1")
	_, err := reader.ReadData()
	require.Error(t, err)
}
