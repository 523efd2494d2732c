package form

import "strings"

// MaxSuggestions caps the number of matches returned for one query.
const MaxSuggestions = 8

// Suggest returns the corpus entries matching the query, in corpus order,
// capped at MaxSuggestions. A match is a case-insensitive substring match or
// a word-prefix match on any whitespace-separated word. An empty query
// matches nothing.
func Suggest(query string, corpus []string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []string
	for _, item := range corpus {
		if matches(q, item) {
			out = append(out, item)
			if len(out) == MaxSuggestions {
				break
			}
		}
	}
	return out
}

func matches(q, item string) bool {
	lower := strings.ToLower(item)
	if strings.Contains(lower, q) {
		return true
	}
	for _, word := range strings.Fields(lower) {
		if strings.HasPrefix(word, q) {
			return true
		}
	}
	return false
}

// Navigator is the keyboard-navigation state machine over a suggestion
// list: a highlighted index stepped by up/down, committed by enter and
// dismissed by escape. It is independent of any rendering.
type Navigator struct {
	count  int
	active int // -1 when nothing is highlighted
}

// NewNavigator creates a navigator over n suggestions with no highlight.
func NewNavigator(n int) *Navigator {
	return &Navigator{count: n, active: -1}
}

// Next moves the highlight down, wrapping to the first entry.
func (n *Navigator) Next() {
	if n.count == 0 {
		return
	}
	n.active = (n.active + 1) % n.count
}

// Prev moves the highlight up, wrapping to the last entry.
func (n *Navigator) Prev() {
	if n.count == 0 {
		return
	}
	if n.active <= 0 {
		n.active = n.count - 1
		return
	}
	n.active--
}

// Active returns the highlighted index, or -1 when nothing is highlighted.
func (n *Navigator) Active() int {
	return n.active
}

// Select commits the highlighted entry. It returns the selected index and
// whether a selection was made; enter with no highlight selects nothing.
func (n *Navigator) Select() (int, bool) {
	if n.active < 0 || n.active >= n.count {
		return 0, false
	}
	return n.active, true
}

// Dismiss clears the highlight, as escape does.
func (n *Navigator) Dismiss() {
	n.active = -1
}
