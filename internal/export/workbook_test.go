package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/tarekzhran/inspection-reports/internal/models"
)

func testEntry(count int) models.SheetEntry {
	return models.SheetEntry{
		Date:         "2025-03-15",
		Time:         "10:30",
		Inspector:    "الطارق زهران",
		Location:     "مستشفى طنطا العام",
		CountAbsence: count,
	}
}

func TestAppendCreatesWorkbookWithHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entries.xlsx")
	w := NewWorkbookWriter(path, zap.NewNop())

	require.NoError(t, w.Append(testEntry(2)))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, headers, rows[0])
	assert.Equal(t, []string{"2025-03-15", "10:30", "الطارق زهران", "مستشفى طنطا العام", "2"}, rows[1])
}

func TestAppendGrowsExistingWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entries.xlsx")
	w := NewWorkbookWriter(path, zap.NewNop())

	require.NoError(t, w.Append(testEntry(1)))
	require.NoError(t, w.Append(testEntry(2)))
	require.NoError(t, w.Append(testEntry(3)))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 4, "header plus three entries")

	assert.Equal(t, "1", rows[1][4])
	assert.Equal(t, "2", rows[2][4])
	assert.Equal(t, "3", rows[3][4])
}
