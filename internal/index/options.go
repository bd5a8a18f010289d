package index

import "github.com/okian/jobmatch/internal/domain/match"

// Default thresholds and bounds. Thresholds are fuzzy scores in [0,100].
const (
	defaultTitleThreshold  = 70.0
	defaultActiveThreshold = 60.0
	defaultMaxTitleMatches = 50
	defaultCacheSize       = 4096
)

// Option applies a configuration option to a snapshot build.
type Option func(*Snapshot)

// WithTitleThreshold sets the minimum fuzzy score for personality lookups.
func WithTitleThreshold(t float64) Option {
	return func(s *Snapshot) {
		if t >= 0 && t <= 100 {
			s.titleThreshold = t
		}
	}
}

// WithActiveThreshold sets the looser threshold used by title search. It
// controls recall of whole postings, not personality inference precision.
func WithActiveThreshold(t float64) Option {
	return func(s *Snapshot) {
		if t >= 0 && t <= 100 {
			s.activeThreshold = t
		}
	}
}

// WithMaxTitleMatches caps fuzzy matches considered per query title.
func WithMaxTitleMatches(n int) Option {
	return func(s *Snapshot) {
		if n > 0 {
			s.maxTitleMatches = n
		}
	}
}

// WithCacheSize bounds the memoized personality lookup cache.
func WithCacheSize(n int) Option {
	return func(s *Snapshot) {
		if n > 0 {
			s.cacheSize = n
		}
	}
}

// WithMatcher replaces the fuzzy matcher, mainly for tests.
func WithMatcher(m *match.Matcher) Option {
	return func(s *Snapshot) {
		if m != nil {
			s.matcher = m
		}
	}
}
