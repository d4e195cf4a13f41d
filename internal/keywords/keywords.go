// Package keywords derives a small set of significant words from entry text.
// The policy is intentionally naive: no stemming, no ranking beyond
// first-occurrence order.
package keywords

import "strings"

const maxKeywords = 12

var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "but": {}, "by": {}, "for": {}, "if": {}, "in": {},
	"into": {}, "is": {}, "it": {}, "near": {}, "of": {}, "on": {},
	"or": {}, "such": {}, "that": {}, "the": {}, "their": {}, "then": {},
	"there": {}, "these": {}, "they": {}, "this": {}, "to": {}, "was": {},
	"will": {}, "with": {},
}

// Extract lower-cases text, treats every character outside [a-z0-9] as a
// separator, and returns tokens longer than 3 characters that are not stop
// words, deduplicated in first-occurrence order, capped at 12.
func Extract(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}

	seen := make(map[string]struct{})
	out := make([]string, 0, maxKeywords)
	for _, word := range strings.Fields(b.String()) {
		if len(word) <= 3 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		out = append(out, word)
		if len(out) == maxKeywords {
			break
		}
	}
	return out
}
