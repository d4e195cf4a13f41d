// Package search filters and annotates the journal archive for display.
package search

import (
	"sort"
	"strings"
	"unicode"

	"github.com/Jodansky/mindtext-journal/internal/domain"
)

const rankedKeywordLimit = 8

// Span is a slice of display text; IsMatch marks it for emphasis.
type Span struct {
	Text    string `json:"text"`
	IsMatch bool   `json:"isMatch"`
}

// RankedKeywords counts keyword occurrences across all entries and returns
// the top 8 by count, ties broken by first appearance.
func RankedKeywords(entries []domain.Entry) []string {
	counts := make(map[string]int)
	var order []string
	for _, e := range entries {
		for _, k := range e.Keywords {
			if counts[k] == 0 {
				order = append(order, k)
			}
			counts[k]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > rankedKeywordLimit {
		order = order[:rankedKeywordLimit]
	}
	return order
}

// Filter returns entries sorted newest first. A non-empty query keeps
// entries whose combined text contains it, or whose keywords contain it
// as a substring. Matching is case-insensitive.
func Filter(entries []domain.Entry, query string) []domain.Entry {
	sorted := make([]domain.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return sorted
	}

	kept := sorted[:0]
	for _, e := range sorted {
		if Matches(e, q) {
			kept = append(kept, e)
		}
	}
	return kept
}

// Matches reports whether a single entry matches the already-lowercased
// query.
func Matches(e domain.Entry, q string) bool {
	haystack := strings.ToLower(e.UserText + " " + e.AssistantText)
	if strings.Contains(haystack, q) {
		return true
	}
	for _, k := range e.Keywords {
		// Substring, not exact: "grat" matches "gratitude".
		if strings.Contains(strings.ToLower(k), q) {
			return true
		}
	}
	return false
}

// Highlight splits text into spans, flagging every case-insensitive
// occurrence of query. An empty query yields the whole text as a single
// unmatched span. Matching works on runes, so case folds that change
// byte length (e.g. İ → i) still line up with the original text.
func Highlight(text, query string) []Span {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || text == "" {
		return []Span{{Text: text}}
	}

	runes := []rune(text)
	lower := make([]rune, len(runes))
	for i, r := range runes {
		lower[i] = unicode.ToLower(r)
	}
	target := []rune(q)

	var spans []Span
	flush := func(from, to int, match bool) {
		if from < to {
			spans = append(spans, Span{Text: string(runes[from:to]), IsMatch: match})
		}
	}

	start := 0
	for i := 0; i+len(target) <= len(runes); {
		if !runesEqual(lower[i:i+len(target)], target) {
			i++
			continue
		}
		flush(start, i, false)
		flush(i, i+len(target), true)
		i += len(target)
		start = i
	}
	flush(start, len(runes), false)

	if len(spans) == 0 {
		return []Span{{Text: text}}
	}
	return spans
}

func runesEqual(a, b []rune) bool {
	for i := range b {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
