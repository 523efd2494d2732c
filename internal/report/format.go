// Package report renders a validated inspection snapshot into the
// administrative report document: the Arabic-formatted header fields, the
// absence table padded to the printed form's six lines, the opinion
// paragraph and the signature blocks.
package report

import (
	"fmt"
	"regexp"
	"time"
)

// Arabic calendar tables, Sunday-first to match the printed form.
var (
	arabicDays = [7]string{
		"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت",
	}
	arabicMonths = [12]string{
		"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
		"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
	}
)

// DateUnspecified is the placeholder rendered for an unparseable date.
// Rendering degrades to it instead of failing the whole report.
const DateUnspecified = "تاريخ غير محدد"

var timeFormat = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// FormatArabicDate formats an ISO date as "<day>، <d> <month>، <year>"
// using the Arabic day and month names.
func FormatArabicDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return DateUnspecified
	}
	return fmt.Sprintf("%s، %d %s، %d",
		arabicDays[int(t.Weekday())], t.Day(), arabicMonths[int(t.Month())-1], t.Year())
}

// FormatTime passes a valid HH:MM time through verbatim and substitutes
// "00:00" for anything else.
func FormatTime(t string) string {
	if !timeFormat.MatchString(t) {
		return "00:00"
	}
	return t
}
