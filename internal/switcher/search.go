package switcher

import (
	"sort"
	"strings"
)

// matchFunc reports whether one candidate field satisfies the query.
type matchFunc func(text string) bool

// containsMatcher is plain case-insensitive containment.
func containsMatcher(query string) matchFunc {
	query = strings.ToLower(query)
	return func(text string) bool {
		return strings.Contains(strings.ToLower(text), query)
	}
}

// subsequenceMatcher admits text containing every query character in
// order, gaps allowed. "ffx" matches "Firefox".
func subsequenceMatcher(query string) matchFunc {
	// Compare rune by rune so multi-byte query characters line up with
	// the range over text.
	runes := []rune(strings.ToLower(query))
	return func(text string) bool {
		queryIdx := 0
		for _, char := range strings.ToLower(text) {
			if queryIdx < len(runes) && char == runes[queryIdx] {
				queryIdx++
			}
		}
		return queryIdx == len(runes)
	}
}

// Filter returns the entries admitted by the query, most recently focused
// first. A match on any searchable field admits the whole entry; the empty
// query admits everything. The sort is stable, so entries sharing a focus
// rank keep their snapshot order.
func Filter(entries []Entry, query string, fuzzy bool) []Entry {
	match := containsMatcher(query)
	if fuzzy {
		match = subsequenceMatcher(query)
	}

	var out []Entry
	for _, e := range entries {
		if e.matches(match) {
			out = append(out, e)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FocusHistoryID < out[j].FocusHistoryID
	})
	return out
}

func (e Entry) matches(match matchFunc) bool {
	return match(e.Class) ||
		match(e.Name) ||
		match(e.Title) ||
		match(e.InitialClass) ||
		match(e.InitialTitle)
}
