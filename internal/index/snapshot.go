// Package index derives the queryable structures from a job corpus: an
// inverted skill index, a normalized title list for fuzzy search, and a
// title-to-personality index with memoized lookups. All three are built
// together into an immutable Snapshot; a rebuild produces a new Snapshot that
// the owner swaps atomically, so readers never observe a half-updated index.
package index

import (
	"sort"
	"strings"
	"time"

	"github.com/okian/jobmatch/internal/domain/match"
	"github.com/okian/jobmatch/internal/domain/model"
	"github.com/okian/jobmatch/internal/domain/personality"
)

// Snapshot holds the derived indexes for one corpus state. It is read-only
// after Build returns and safe for concurrent queries.
type Snapshot struct {
	jobs   []model.JobRecord
	titles []string // normalized, positionally aligned with jobs

	skillIndex map[string][]int // normalized skill token -> job positions

	// Personality index: jobs with a usable title, 1:1 pairs.
	perTitles  []string
	perVectors []personality.Vector

	matcher *match.Matcher
	cache   *memoCache

	titleThreshold  float64
	activeThreshold float64
	maxTitleMatches int
	cacheSize       int

	builtAt time.Time
}

// Build derives a Snapshot from jobs. The jobs slice is retained; callers
// must not mutate it afterwards. The memoized personality cache starts empty,
// which is what invalidates stale lookups across rebuilds.
func Build(jobs []model.JobRecord, opts ...Option) *Snapshot {
	s := &Snapshot{
		jobs:            jobs,
		titles:          make([]string, len(jobs)),
		skillIndex:      make(map[string][]int),
		matcher:         match.New(),
		titleThreshold:  defaultTitleThreshold,
		activeThreshold: defaultActiveThreshold,
		maxTitleMatches: defaultMaxTitleMatches,
		cacheSize:       defaultCacheSize,
		builtAt:         time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.cache = newMemoCache(s.cacheSize)

	seen := make(map[string]map[int]struct{})
	for pos, job := range jobs {
		s.titles[pos] = Normalize(job.Title)
		for _, skill := range job.Skills {
			token := Normalize(skill)
			if token == "" {
				continue
			}
			if seen[token] == nil {
				seen[token] = make(map[int]struct{})
			}
			if _, dup := seen[token][pos]; dup {
				continue // duplicate token within one posting
			}
			seen[token][pos] = struct{}{}
			s.skillIndex[token] = append(s.skillIndex[token], pos)
		}
		if s.titles[pos] != "" {
			s.perTitles = append(s.perTitles, s.titles[pos])
			s.perVectors = append(s.perVectors, job.Personality)
		}
	}
	return s
}

// Normalize lowercases and trims a free-text token.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Size returns the corpus size at build time.
func (s *Snapshot) Size() int {
	return len(s.jobs)
}

// Job returns the record at pos. Positions come from the candidate methods
// and are valid only against this snapshot.
func (s *Snapshot) Job(pos int) model.JobRecord {
	return s.jobs[pos]
}

// BuiltAt reports when the snapshot was derived.
func (s *Snapshot) BuiltAt() time.Time {
	return s.builtAt
}

// CacheStats returns cumulative memo-cache hits, misses and live entries.
func (s *Snapshot) CacheStats() (hits, misses int64, entries int) {
	h, m := s.cache.stats()
	return h, m, s.cache.size()
}

// InvalidateCache drops all memoized personality lookups. Build installs a
// fresh cache, so this is only needed when external personality data changes
// underneath a live snapshot.
func (s *Snapshot) InvalidateCache() {
	s.cache.invalidate()
}

// CandidatesBySkills returns job positions whose skill tokens contain any of
// the user's skills verbatim (after normalization). No skill signal, or no
// vocabulary overlap at all, widens to the full corpus: downstream scoring
// re-filters by actual skill similarity, so recall wins over precision here.
func (s *Snapshot) CandidatesBySkills(userSkills []string) []int {
	if len(userSkills) == 0 {
		return s.allPositions()
	}
	set := make(map[int]struct{})
	for _, us := range userSkills {
		for _, pos := range s.skillIndex[Normalize(us)] {
			set[pos] = struct{}{}
		}
	}
	if len(set) == 0 {
		return s.allPositions()
	}
	return sortedPositions(set)
}

// CandidatesByTitles returns job positions whose normalized title fuzzily
// matches any query title at or above the active threshold, capped at
// maxTitleMatches per query title. An empty query is explicit intent and
// yields an empty set, never a widened one.
func (s *Snapshot) CandidatesByTitles(titles []string) []int {
	set := make(map[int]struct{})
	for _, t := range titles {
		for _, m := range s.matcher.TopMatches(Normalize(t), s.titles, s.activeThreshold, s.maxTitleMatches) {
			set[m.Index] = struct{}{}
		}
	}
	return sortedPositions(set)
}

func (s *Snapshot) allPositions() []int {
	out := make([]int, len(s.jobs))
	for i := range out {
		out[i] = i
	}
	return out
}

func sortedPositions(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for pos := range set {
		out = append(out, pos)
	}
	sort.Ints(out)
	return out
}
