package report

import "testing"

func TestFormatArabicDate(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		// 2025-03-15 is a Saturday.
		{date: "2025-03-15", want: "السبت، 15 مارس، 2025"},
		// 2025-01-01 is a Wednesday.
		{date: "2025-01-01", want: "الأربعاء، 1 يناير، 2025"},
		// 2024-12-29 is a Sunday.
		{date: "2024-12-29", want: "الأحد، 29 ديسمبر، 2024"},
		{date: "", want: DateUnspecified},
		{date: "15/03/2025", want: DateUnspecified},
		{date: "2025-13-40", want: DateUnspecified},
	}

	for _, tt := range tests {
		if got := FormatArabicDate(tt.date); got != tt.want {
			t.Errorf("FormatArabicDate(%q) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "09:30", want: "09:30"},
		{in: "9:30", want: "9:30"},
		{in: "23:59", want: "23:59"},
		{in: "", want: "00:00"},
		{in: "24:00", want: "00:00"},
		{in: "nine", want: "00:00"},
	}

	for _, tt := range tests {
		if got := FormatTime(tt.in); got != tt.want {
			t.Errorf("FormatTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
