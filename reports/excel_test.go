package reports

import (
	"path/filepath"
	"testing"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveXlsx(t *testing.T) {
	file := filepath.Join(t.TempDir(), "AAPL_2024-03-01.xlsx")
	require.NoError(t, SaveXlsx(file, sampleSeries("AAPL")))

	x, err := excelize.OpenFile(file)
	require.NoError(t, err)

	assert.Equal(t, "date", x.GetCellValue("AAPL", "A1"))
	assert.Equal(t, "label", x.GetCellValue("AAPL", "E1"))
	assert.Equal(t, "2024-03-04", x.GetCellValue("AAPL", "A3"))
	assert.Equal(t, "175.1", x.GetCellValue("AAPL", "C3"))
	assert.Equal(t, "Mar 4", x.GetCellValue("AAPL", "E3"))
	assert.Equal(t, -1, indexOf(x.GetSheetMap(), "Sheet1"))
}

func TestCells(t *testing.T) {
	got := cells([]string{"2024-03-01", "1.5", "", "Mar 1", "20240301"})
	assert.Equal(t, []interface{}{"2024-03-01", 1.5, "", "Mar 1", float64(20240301)}, got)
}

func TestSheetName(t *testing.T) {
	tests := []struct {
		symbol string
		want   string
	}{
		{"AAPL", "AAPL"},
		{"BRK/B", "BRK_B"},
		{"", "Sheet1"},
		{"   ", "Sheet1"},
		{"ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789", "ABCDEFGHIJKLMNOPQRSTUVWXYZ01234"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sheetName(tt.symbol))
	}
}

func indexOf(m map[int]string, name string) int {
	for k, v := range m {
		if v == name {
			return k
		}
	}
	return -1
}
