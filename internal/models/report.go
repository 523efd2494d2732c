package models

import (
	"strings"
	"time"
)

// InspectionRecord represents one completed inspection visit, ready for
// rendering and submission. It is an immutable snapshot of the form state.
type InspectionRecord struct {
	InspectorName string         `json:"inspector_name"`
	Location      string         `json:"location"`
	Date          string         `json:"date"` // YYYY-MM-DD
	Time          string         `json:"time"` // HH:MM, 24-hour
	Absences      []AbsenceEntry `json:"absences"`
}

// AbsenceEntry represents one employee's absence line item.
// SequenceNumber is derived from position in the record (1-based) and is
// recomputed on every add or remove; it is never stored independently.
type AbsenceEntry struct {
	SequenceNumber int    `json:"sequence_number"`
	EmployeeName   string `json:"employee_name"`
	Position       string `json:"position"`
	CaseStart      int    `json:"case_start,omitempty"`
	CaseEnd        int    `json:"case_end,omitempty"`
}

// CaseCount returns the derived number of cases covered by the entry's
// case-number range, clamped to a minimum of 1 for a plain entry.
func (e AbsenceEntry) CaseCount() int {
	if e.CaseStart == 0 && e.CaseEnd == 0 {
		return 1
	}
	n := e.CaseEnd - e.CaseStart + 1
	if n < 0 {
		return 0
	}
	return n
}

// HasBlankName reports whether the entry would be dropped before rendering.
func (e AbsenceEntry) HasBlankName() bool {
	return strings.TrimSpace(e.EmployeeName) == ""
}

// ReportDocument is the rendered projection of one InspectionRecord.
type ReportDocument struct {
	HTML          string     `json:"html"`
	HasAbsences   bool       `json:"has_absences"`
	AbsenceCount  int        `json:"absence_count"`
	FormattedDate string     `json:"formatted_date"`
	FormattedTime string     `json:"formatted_time"`
	Rows          []TableRow `json:"rows"`
}

// TableRow is one row of the rendered absence table. Empty rows pad the
// table to the physical form's six pre-printed lines.
type TableRow struct {
	Index      int    `json:"index"`
	Position   string `json:"position"`
	Name       string `json:"name"`
	CaseCount  string `json:"case_count"`
	Annotation string `json:"annotation"`
	Empty      bool   `json:"empty"`
}

// ArchivedReport is a rendered report persisted for later retrieval.
type ArchivedReport struct {
	ID           string    `json:"id"`
	Fingerprint  string    `json:"fingerprint"`
	Snapshot     string    `json:"snapshot"` // InspectionRecord JSON
	HTML         string    `json:"html"`
	HasAbsences  bool      `json:"has_absences"`
	AbsenceCount int       `json:"absence_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// SheetEntry is one summary row forwarded to the sheets endpoint, and the
// shape archived locally for the recent-entries listing.
type SheetEntry struct {
	ID           int64     `json:"id"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Inspector    string    `json:"inspector"`
	Location     string    `json:"location"`
	CountAbsence int       `json:"count_absence"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// FormSnapshot is the best-effort "restore last report?" convenience copy,
// stored per client key.
type FormSnapshot struct {
	ClientKey string    `json:"client_key"`
	Payload   string    `json:"payload"` // InspectionRecord JSON
	SavedAt   time.Time `json:"saved_at"`
}

// Directory field names served by the suggestion provider.
const (
	FieldInspector = "inspector"
	FieldLocation  = "location"
	FieldEmployee  = "employee"
	FieldPosition  = "position"
)
