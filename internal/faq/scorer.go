package faq

import (
	"sort"
	"strings"
)

// DefaultSearchLimit is the top-K cutoff for relevance search.
const DefaultSearchLimit = 3

const (
	questionMatchScore = 5
	keywordMatchScore  = 2
	answerMatchScore   = 1
)

// Rank scores the corpus against the query and returns the top-K matches,
// best first. Scoring is additive: a question containing the query scores 5,
// each keyword contained in the query scores 2, an answer containing the
// query scores 1. All comparisons are case-insensitive substring checks.
// Zero-score FAQs are dropped; ties keep corpus order (stable sort).
func Rank(query string, corpus []FAQ, limit int) []FAQ {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	queryLower := strings.ToLower(query)

	type scored struct {
		score int
		faq   FAQ
	}
	matches := make([]scored, 0, len(corpus))
	for _, f := range corpus {
		score := 0
		if strings.Contains(strings.ToLower(f.Question), queryLower) {
			score += questionMatchScore
		}
		for _, kw := range f.Keywords {
			if strings.Contains(queryLower, strings.ToLower(kw)) {
				score += keywordMatchScore
			}
		}
		if strings.Contains(strings.ToLower(f.Answer), queryLower) {
			score += answerMatchScore
		}
		if score > 0 {
			matches = append(matches, scored{score: score, faq: f})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]FAQ, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.faq)
	}
	return out
}
