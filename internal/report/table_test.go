package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tarekzhran/inspection-reports/internal/models"
)

func entry(n int, name, position string) models.AbsenceEntry {
	return models.AbsenceEntry{SequenceNumber: n, EmployeeName: name, Position: position}
}

func TestBuildRowsPadsToSixLines(t *testing.T) {
	rows := BuildRows([]models.AbsenceEntry{
		entry(1, "أحمد علي", "فني أشعة"),
		entry(2, "زينب حسن", "ممرضة"),
	})

	assert.Len(t, rows, MinTableRows)

	assert.Equal(t, 1, rows[0].Index)
	assert.Equal(t, "أحمد علي", rows[0].Name)
	assert.Equal(t, "فني أشعة", rows[0].Position)
	assert.False(t, rows[0].Empty)

	// Padding rows continue the numbering and carry no data.
	for i := 2; i < MinTableRows; i++ {
		assert.Equal(t, i+1, rows[i].Index)
		assert.True(t, rows[i].Empty)
		assert.Empty(t, rows[i].Name)
	}
}

func TestBuildRowsAnnotations(t *testing.T) {
	rows := BuildRows([]models.AbsenceEntry{
		entry(1, "أ", ""),
		entry(2, "ب", ""),
		entry(3, "ج", ""),
		entry(4, "د", ""),
	})

	assert.Equal(t, "مرفق كشف يبدأ برقم 1", rows[0].Annotation)
	assert.Equal(t, "مرفق كشف برقم", rows[1].Annotation)
	assert.Equal(t, "مرفق كشف برقم", rows[2].Annotation)
	assert.Equal(t, "مرفق كشف ينتهي برقم 4", rows[3].Annotation)

	// Padding rows carry the generic annotation.
	assert.Equal(t, "مرفق كشف برقم", rows[4].Annotation)
	assert.Equal(t, "مرفق كشف برقم", rows[5].Annotation)
}

func TestBuildRowsNoPaddingBeyondSix(t *testing.T) {
	var absences []models.AbsenceEntry
	for i := 1; i <= 9; i++ {
		absences = append(absences, entry(i, "موظف", "وظيفة"))
	}

	rows := BuildRows(absences)
	assert.Len(t, rows, 9)
	assert.Equal(t, "مرفق كشف ينتهي برقم 9", rows[8].Annotation)
}

func TestBuildRowsEmptyInput(t *testing.T) {
	rows := BuildRows(nil)

	assert.Len(t, rows, MinTableRows)
	for i, row := range rows {
		assert.Equal(t, i+1, row.Index)
		assert.True(t, row.Empty)
	}
}

func TestBuildRowsCaseCounts(t *testing.T) {
	rows := BuildRows([]models.AbsenceEntry{
		{SequenceNumber: 1, EmployeeName: "أ"},
		{SequenceNumber: 2, EmployeeName: "ب", CaseStart: 12, CaseEnd: 40},
		{SequenceNumber: 3, EmployeeName: "ج", CaseStart: 5, CaseEnd: 5},
	})

	assert.Equal(t, "1", rows[0].CaseCount, "no range means a single case")
	assert.Equal(t, "29", rows[1].CaseCount)
	assert.Equal(t, "1", rows[2].CaseCount)
}
