package report

import (
	"fmt"
	"strconv"

	"github.com/tarekzhran/inspection-reports/internal/models"
)

// MinTableRows is the number of pre-printed lines on the physical form.
// The rendered table is padded with empty rows up to this count, continuing
// the numbering; purely a print-layout requirement.
const MinTableRows = 6

// Attached-list annotations for the table's notes column.
const (
	annotationFirst   = "مرفق كشف يبدأ برقم 1"
	annotationLastFmt = "مرفق كشف ينتهي برقم %d"
	annotationGeneric = "مرفق كشف برقم"
)

// BuildRows maps the absence entries to the table-row model in sequence
// order: index, position, name, derived case count and the footer
// annotation, then pads to MinTableRows.
func BuildRows(absences []models.AbsenceEntry) []models.TableRow {
	rows := make([]models.TableRow, 0, MinTableRows)

	for i, a := range absences {
		annotation := annotationGeneric
		switch {
		case i == 0:
			annotation = annotationFirst
		case i == len(absences)-1:
			annotation = fmt.Sprintf(annotationLastFmt, len(absences))
		}
		rows = append(rows, models.TableRow{
			Index:      i + 1,
			Position:   a.Position,
			Name:       a.EmployeeName,
			CaseCount:  strconv.Itoa(a.CaseCount()),
			Annotation: annotation,
		})
	}

	for i := len(absences) + 1; i <= MinTableRows; i++ {
		rows = append(rows, models.TableRow{
			Index:      i,
			Annotation: annotationGeneric,
			Empty:      true,
		})
	}

	return rows
}
