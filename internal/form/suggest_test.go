package form

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestMatchesSubstringAndWordPrefix(t *testing.T) {
	corpus := []string{
		"مستشفى طنطا العام",
		"مستشفى المبرة",
		"مركز صحة الحي الشرقي",
		"إدارة طنطا الصحية",
	}

	tests := []struct {
		query string
		want  []string
	}{
		{query: "طنطا", want: []string{"مستشفى طنطا العام", "إدارة طنطا الصحية"}},
		{query: "مستشفى", want: []string{"مستشفى طنطا العام", "مستشفى المبرة"}},
		{query: "الشرقي", want: []string{"مركز صحة الحي الشرقي"}},
		{query: "لا شيء", want: nil},
		{query: "", want: nil},
		{query: "   ", want: nil},
	}

	for _, tt := range tests {
		got := Suggest(tt.query, corpus)
		assert.Equal(t, tt.want, got, "query %q", tt.query)
	}
}

func TestSuggestIsCaseInsensitive(t *testing.T) {
	corpus := []string{"Cairo General", "cairo clinic", "Alexandria"}
	got := Suggest("CAIRO", corpus)
	assert.Equal(t, []string{"Cairo General", "cairo clinic"}, got)
}

func TestSuggestCapsResults(t *testing.T) {
	corpus := make([]string, 20)
	for i := range corpus {
		corpus[i] = fmt.Sprintf("مستشفى رقم %d", i+1)
	}

	got := Suggest("مستشفى", corpus)
	assert.Len(t, got, MaxSuggestions)
	assert.Equal(t, "مستشفى رقم 1", got[0])
	assert.Equal(t, "مستشفى رقم 8", got[7])
}

func TestNavigatorWrapsBothDirections(t *testing.T) {
	n := NewNavigator(3)
	assert.Equal(t, -1, n.Active())

	n.Next()
	assert.Equal(t, 0, n.Active())
	n.Next()
	n.Next()
	assert.Equal(t, 2, n.Active())
	n.Next()
	assert.Equal(t, 0, n.Active(), "down from last wraps to first")

	n.Dismiss()
	n.Prev()
	assert.Equal(t, 2, n.Active(), "up with no highlight jumps to last")
	n.Prev()
	assert.Equal(t, 1, n.Active())
}

func TestNavigatorSelect(t *testing.T) {
	n := NewNavigator(2)

	_, ok := n.Select()
	assert.False(t, ok, "enter with no highlight selects nothing")

	n.Next()
	idx, ok := n.Select()
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	n.Dismiss()
	_, ok = n.Select()
	assert.False(t, ok)
}

func TestNavigatorEmptyListIsInert(t *testing.T) {
	n := NewNavigator(0)
	n.Next()
	n.Prev()
	assert.Equal(t, -1, n.Active())
	_, ok := n.Select()
	assert.False(t, ok)
}
