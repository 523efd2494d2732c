// Package form maintains the mutable inspection form state: the four scalar
// inspection fields and the ordered list of absence entries. Entries are
// identified by position only; any add or remove renumbers the list back to
// a contiguous 1..N run before the next read.
package form

import (
	"strings"
	"time"

	"github.com/tarekzhran/inspection-reports/internal/models"
)

// State holds one in-progress inspection form. It is mutated from a single
// goroutine in response to discrete user events; renumbering always
// completes before a subsequent Snapshot or Validate reads sequence numbers.
type State struct {
	InspectorName string
	Location      string
	Date          string
	Time          string

	entries []models.AbsenceEntry

	now func() time.Time
}

// New creates a form with date and time defaulted to the current moment,
// matching the behavior of a freshly initialized form.
func New() *State {
	s := &State{now: time.Now}
	s.Reset()
	return s
}

// NewAt creates a form with an injected clock. Used by tests.
func NewAt(now func() time.Time) *State {
	s := &State{now: now}
	s.Reset()
	return s
}

// Reset clears all fields and entries and re-defaults date/time to "now".
func (s *State) Reset() {
	n := s.now()
	s.InspectorName = ""
	s.Location = ""
	s.Date = n.Format("2006-01-02")
	s.Time = n.Format("15:04")
	s.entries = nil
}

// AddEntry appends a blank absence entry and returns its 1-based position,
// which callers use to transfer input focus to the new row.
func (s *State) AddEntry() int {
	s.entries = append(s.entries, models.AbsenceEntry{
		SequenceNumber: len(s.entries) + 1,
	})
	return len(s.entries)
}

// RemoveEntry deletes the entry at the given 1-based position and renumbers
// all subsequent entries. Out-of-bounds positions are a no-op.
func (s *State) RemoveEntry(position int) {
	if position < 1 || position > len(s.entries) {
		return
	}
	s.entries = append(s.entries[:position-1], s.entries[position:]...)
	s.renumber()
}

// SetEntry overwrites the fields of the entry at the given 1-based position,
// preserving its sequence number. Out-of-bounds positions are a no-op.
func (s *State) SetEntry(position int, entry models.AbsenceEntry) {
	if position < 1 || position > len(s.entries) {
		return
	}
	entry.SequenceNumber = position
	s.entries[position-1] = entry
}

// EntryCount returns the number of rows currently in the form, including
// blank ones not yet filled in.
func (s *State) EntryCount() int {
	return len(s.entries)
}

// Entries returns a copy of the current rows in display order.
func (s *State) Entries() []models.AbsenceEntry {
	out := make([]models.AbsenceEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *State) renumber() {
	for i := range s.entries {
		s.entries[i].SequenceNumber = i + 1
	}
}

// Snapshot collects the live field values into an immutable record: scalar
// fields are trimmed, rows with a blank name are dropped, and surviving
// entries are renumbered 1..N. It never fails; missing fields degrade to
// empty strings and are caught by validation.
func (s *State) Snapshot() models.InspectionRecord {
	record := models.InspectionRecord{
		InspectorName: strings.TrimSpace(s.InspectorName),
		Location:      strings.TrimSpace(s.Location),
		Date:          strings.TrimSpace(s.Date),
		Time:          strings.TrimSpace(s.Time),
	}
	for _, e := range s.entries {
		if e.HasBlankName() {
			continue
		}
		e.EmployeeName = strings.TrimSpace(e.EmployeeName)
		e.Position = strings.TrimSpace(e.Position)
		e.SequenceNumber = len(record.Absences) + 1
		record.Absences = append(record.Absences, e)
	}
	return record
}

// Restore repopulates the form from a previously saved record, used by the
// "restore last report?" flow. Blank-name rows in the saved data are kept so
// the user sees the form exactly as they left it.
func (s *State) Restore(record models.InspectionRecord) {
	s.InspectorName = record.InspectorName
	s.Location = record.Location
	s.Date = record.Date
	s.Time = record.Time
	s.entries = make([]models.AbsenceEntry, len(record.Absences))
	copy(s.entries, record.Absences)
	s.renumber()
	if len(s.entries) == 0 {
		s.AddEntry()
	}
}
