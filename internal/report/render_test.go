package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tarekzhran/inspection-reports/internal/models"
)

func testRenderer() *Renderer {
	return NewRenderer(DefaultConfig(), zap.NewNop())
}

func TestRenderReportWithAbsences(t *testing.T) {
	record := models.InspectionRecord{
		InspectorName: "Test",
		Location:      "Clinic A",
		Date:          "2025-03-15",
		Time:          "10:30",
		Absences: []models.AbsenceEntry{
			{SequenceNumber: 1, EmployeeName: "Ahmed", Position: "Nurse"},
		},
	}

	doc, err := testRenderer().Render(record)
	require.NoError(t, err)

	assert.True(t, doc.HasAbsences)
	assert.Equal(t, 1, doc.AbsenceCount)
	assert.Equal(t, "السبت، 15 مارس، 2025", doc.FormattedDate)
	assert.Equal(t, "10:30", doc.FormattedTime)
	assert.Len(t, doc.Rows, MinTableRows)

	assert.Contains(t, doc.HTML, "Test")
	assert.Contains(t, doc.HTML, "Clinic A")
	assert.Contains(t, doc.HTML, "Ahmed")
	assert.Contains(t, doc.HTML, "Nurse")
	assert.Contains(t, doc.HTML, "عدد الحالات:- 1")
	assert.Contains(t, doc.HTML, resultWithAbsences)
	assert.Contains(t, doc.HTML, opinionReferral)
	assert.NotContains(t, doc.HTML, opinionFiled)
}

func TestRenderReportWithoutAbsences(t *testing.T) {
	record := models.InspectionRecord{
		InspectorName: "مفتش",
		Location:      "جهة",
		Date:          "2025-03-15",
		Time:          "09:00",
	}

	doc, err := testRenderer().Render(record)
	require.NoError(t, err)

	assert.False(t, doc.HasAbsences)
	assert.Equal(t, 0, doc.AbsenceCount)
	assert.Contains(t, doc.HTML, "عدد الحالات:- لا يوجد")
	assert.Contains(t, doc.HTML, resultNoAbsences)
	assert.Contains(t, doc.HTML, opinionFiled)
	assert.NotContains(t, doc.HTML, opinionReferral)
}

// Every user-controlled string must reach the document escaped. A name that
// is literally a script tag shows up as text, never as markup.
func TestRenderEscapesUserInput(t *testing.T) {
	record := models.InspectionRecord{
		InspectorName: `<script>alert("x")</script>`,
		Location:      `<img src=x onerror=alert(1)>`,
		Date:          "2025-03-15",
		Time:          "10:30",
		Absences: []models.AbsenceEntry{
			{SequenceNumber: 1, EmployeeName: "<b>bold</b>", Position: "<i>pos</i>"},
		},
	}

	doc, err := testRenderer().Render(record)
	require.NoError(t, err)

	assert.NotContains(t, doc.HTML, "<script>")
	assert.NotContains(t, doc.HTML, "<img")
	assert.NotContains(t, doc.HTML, "<b>bold</b>")
	assert.Contains(t, doc.HTML, "&lt;script&gt;")
}

func TestRenderCarriesConfiguredBoilerplate(t *testing.T) {
	cfg := Config{
		MinistryName:   "مديرية اختبارية",
		DepartmentName: "إدارة اختبارية",
		ReportTitle:    "عنوان",
		ReportSubtitle: "عنوان فرعي",
		ManagerName:    "مدير",
	}
	r := NewRenderer(cfg, zap.NewNop())

	doc, err := r.Render(models.InspectionRecord{
		InspectorName: "مفتش",
		Location:      "جهة",
		Date:          "2025-03-15",
		Time:          "08:00",
	})
	require.NoError(t, err)

	for _, want := range []string{cfg.MinistryName, cfg.DepartmentName, cfg.ReportTitle, cfg.ReportSubtitle, cfg.ManagerName} {
		assert.Contains(t, doc.HTML, want)
	}
}

func TestRenderUnparseableDateDegrades(t *testing.T) {
	doc, err := testRenderer().Render(models.InspectionRecord{
		InspectorName: "مفتش",
		Location:      "جهة",
		Date:          "not-a-date",
		Time:          "08:00",
	})
	require.NoError(t, err)

	assert.Equal(t, DateUnspecified, doc.FormattedDate)
	assert.Contains(t, doc.HTML, DateUnspecified)
}

func TestRenderTableBodyRowCount(t *testing.T) {
	record := models.InspectionRecord{
		InspectorName: "مفتش",
		Location:      "جهة",
		Date:          "2025-03-15",
		Time:          "08:00",
	}
	for i := 1; i <= 8; i++ {
		record.Absences = append(record.Absences, models.AbsenceEntry{
			SequenceNumber: i, EmployeeName: "موظف", Position: "وظيفة",
		})
	}

	doc, err := testRenderer().Render(record)
	require.NoError(t, err)

	body := doc.HTML[strings.Index(doc.HTML, "<tbody>"):strings.Index(doc.HTML, "</tbody>")]
	assert.Equal(t, 8, strings.Count(body, "<tr>"))
}
