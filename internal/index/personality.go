package index

import (
	"github.com/okian/jobmatch/internal/domain/personality"
)

// PersonalityByTitle infers a personality vector for an arbitrary job title
// by fuzzy-matching it against the indexed titles and taking the weighted
// average of the matched vectors, each weighted by its fuzzy score. Lookups
// are memoized per normalized title; maxTitleMatches and titleThreshold are
// fixed per snapshot, so the normalized title alone identifies a result.
//
// An empty index or no match at or above the threshold yields the all-default
// vector. Safe for concurrent use and idempotent for a given snapshot.
func (s *Snapshot) PersonalityByTitle(title string) personality.Vector {
	key := Normalize(title)
	if v, ok := s.cache.get(key); ok {
		return v
	}
	v := s.inferPersonality(key)
	s.cache.put(key, v)
	return v
}

func (s *Snapshot) inferPersonality(normTitle string) personality.Vector {
	if len(s.perTitles) == 0 {
		return personality.Default()
	}
	matches := s.matcher.TopMatches(normTitle, s.perTitles, s.titleThreshold, s.maxTitleMatches)
	if len(matches) == 0 {
		return personality.Default()
	}
	pairs := make([]personality.Weighted, 0, len(matches))
	for _, m := range matches {
		pairs = append(pairs, personality.Weighted{
			Vector: s.perVectors[m.Index],
			Weight: m.Score,
		})
	}
	return personality.WeightedAverage(pairs)
}
