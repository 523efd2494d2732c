package form

import (
	"errors"
	"regexp"
	"time"

	"github.com/tarekzhran/inspection-reports/internal/models"
)

// Validation errors, in the order they are checked. Each maps to the form
// field that should receive input focus, see FieldFor.
var (
	ErrMissingInspector = errors.New("inspector name is required")
	ErrMissingLocation  = errors.New("location is required")
	ErrMissingDate      = errors.New("inspection date is required")
	ErrInvalidDate      = errors.New("inspection date is not a valid date")
	ErrMissingTime      = errors.New("inspection time is required")
	ErrInvalidTime      = errors.New("inspection time must be HH:MM")
	ErrDateInFuture     = errors.New("inspection date cannot be in the future")
	ErrDateTooOld       = errors.New("inspection date is more than a year old")

	// ErrNeedsConfirmation is returned when every entered absence row had a
	// blank name: the caller must ask the user whether to continue with zero
	// absences and re-validate with AllowEmptyAbsences set.
	ErrNeedsConfirmation = errors.New("all absence rows are blank, confirmation required")

	// ErrUserCancelled marks a declined confirmation. Not a fault; the
	// caller re-enables the form without a further message.
	ErrUserCancelled = errors.New("cancelled by user")
)

var timePattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// Options carries the validation context a snapshot alone cannot provide.
type Options struct {
	// RawRowCount is the number of absence rows before blank-name filtering.
	RawRowCount int
	// AllowEmptyAbsences skips the zero-absence confirmation, set after the
	// user explicitly confirmed continuing with no valid entries.
	AllowEmptyAbsences bool
}

// Validate decides whether a snapshot may proceed to rendering. Checks run
// in a fixed order and stop at the first failure.
func Validate(record models.InspectionRecord, opts Options, now time.Time) error {
	if record.InspectorName == "" {
		return ErrMissingInspector
	}
	if record.Location == "" {
		return ErrMissingLocation
	}
	if record.Date == "" {
		return ErrMissingDate
	}
	date, err := time.ParseInLocation("2006-01-02", record.Date, now.Location())
	if err != nil {
		return ErrInvalidDate
	}
	if record.Time == "" {
		return ErrMissingTime
	}
	if !timePattern.MatchString(record.Time) {
		return ErrInvalidTime
	}
	if date.After(now) {
		return ErrDateInFuture
	}
	if date.Before(now.AddDate(-1, 0, 0)) {
		return ErrDateTooOld
	}
	for _, e := range record.Absences {
		if e.CaseStart != 0 || e.CaseEnd != 0 {
			if e.CaseEnd < e.CaseStart {
				return ErrInvalidCaseRange
			}
		}
	}
	if len(record.Absences) == 0 && opts.RawRowCount > 0 && !opts.AllowEmptyAbsences {
		return ErrNeedsConfirmation
	}
	return nil
}

// ErrInvalidCaseRange rejects an entry whose case-number range ends before
// it starts.
var ErrInvalidCaseRange = errors.New("case range end is before its start")

// FieldFor names the form field that should receive focus for a validation
// error, or "" when no single field is at fault.
func FieldFor(err error) string {
	switch {
	case errors.Is(err, ErrMissingInspector):
		return "inspectorName"
	case errors.Is(err, ErrMissingLocation):
		return "location"
	case errors.Is(err, ErrMissingDate), errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrDateInFuture), errors.Is(err, ErrDateTooOld):
		return "date"
	case errors.Is(err, ErrMissingTime), errors.Is(err, ErrInvalidTime):
		return "time"
	case errors.Is(err, ErrInvalidCaseRange):
		return "caseStart"
	}
	return ""
}

// MessageFor returns the localized user-facing message for a validation
// error. Wording follows the printed form's language.
func MessageFor(err error) string {
	switch {
	case errors.Is(err, ErrMissingInspector):
		return "يرجى إدخال اسم القائم بالمرور"
	case errors.Is(err, ErrMissingLocation):
		return "يرجى إدخال اسم الجهة"
	case errors.Is(err, ErrMissingDate), errors.Is(err, ErrInvalidDate):
		return "يرجى إدخال تاريخ المرور"
	case errors.Is(err, ErrMissingTime), errors.Is(err, ErrInvalidTime):
		return "يرجى إدخال وقت المرور"
	case errors.Is(err, ErrDateInFuture):
		return "لا يمكن أن يكون تاريخ المرور في المستقبل"
	case errors.Is(err, ErrDateTooOld):
		return "تاريخ المرور قديم جداً"
	case errors.Is(err, ErrInvalidCaseRange):
		return "نطاق أرقام الحالات غير صحيح"
	case errors.Is(err, ErrNeedsConfirmation):
		return "جميع صفوف الغياب فارغة، هل تريد المتابعة بدون حالات غياب؟"
	case errors.Is(err, ErrUserCancelled):
		return ""
	}
	return "حدث خطأ في التحقق من صحة البيانات"
}
