// Package match wraps a token-order-insensitive string similarity scorer with
// threshold-filtered best-match and top-matches lookups over candidate lists.
package match

import (
	"sort"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Scorer computes a similarity score in [0,100] between two strings.
type Scorer func(a, b string) int

// TokenSortRatio is the default scorer. Word order does not affect the score.
func TokenSortRatio(a, b string) int {
	return fuzzy.TokenSortRatio(a, b)
}

// Match is a scored candidate. Index is the candidate's position in the input
// slice, which callers use to reach positionally aligned structures.
type Match struct {
	Value string
	Index int
	Score float64
}

// Matcher runs threshold-filtered similarity lookups. The zero value is not
// usable; construct with New.
type Matcher struct {
	score Scorer
}

// Option applies a configuration option to the Matcher.
type Option func(*Matcher)

// WithScorer replaces the similarity scorer. Any scorer returning values in
// [0,100] satisfies the contract.
func WithScorer(s Scorer) Option {
	return func(m *Matcher) {
		if s != nil {
			m.score = s
		}
	}
}

// New constructs a Matcher with the default token-sort scorer.
func New(opts ...Option) *Matcher {
	m := &Matcher{score: TokenSortRatio}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// BestMatch returns the single highest-scoring candidate at or above
// threshold. Ties resolve to the earliest candidate. ok is false when the
// candidate list is empty or nothing clears the threshold.
func (m *Matcher) BestMatch(query string, candidates []string, threshold float64) (Match, bool) {
	best := Match{Index: -1, Score: -1}
	for i, c := range candidates {
		s := float64(m.score(query, c))
		if s > best.Score {
			best = Match{Value: c, Index: i, Score: s}
		}
	}
	if best.Index < 0 || best.Score < threshold {
		return Match{}, false
	}
	return best, true
}

// TopMatches returns up to limit candidates scoring at or above threshold,
// ordered by descending score with candidate order breaking ties. A
// non-positive limit means unlimited. Empty candidates yield an empty slice.
func (m *Matcher) TopMatches(query string, candidates []string, threshold float64, limit int) []Match {
	matches := make([]Match, 0, len(candidates))
	for i, c := range candidates {
		s := float64(m.score(query, c))
		if s >= threshold {
			matches = append(matches, Match{Value: c, Index: i, Score: s})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
