// Package scoring computes the weighted relevance of a job for a user from
// skill overlap, personality similarity and posting recency.
package scoring

import (
	"math"
	"time"

	"github.com/okian/jobmatch/internal/domain/match"
	"github.com/okian/jobmatch/internal/domain/model"
	"github.com/okian/jobmatch/internal/domain/personality"
)

// Default scoring configuration constants.
const (
	defaultSkillWeight       = 0.60
	defaultPersonalityWeight = 0.25
	defaultRecencyWeight     = 0.15
	defaultSkillThreshold    = 60.0
	recencyHorizonDays       = 365.0
	maxRelevance             = 100
)

// PersonalityLookup resolves a job title to an inferred personality vector.
// The index snapshot satisfies this.
type PersonalityLookup interface {
	PersonalityByTitle(title string) personality.Vector
}

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithWeights sets the blend weights. They should sum to 1.0; callers are
// expected to validate or warn, the scorer only uses them as given.
func WithWeights(skill, personalityW, recency float64) Option {
	return func(s *Scorer) {
		if skill >= 0 && personalityW >= 0 && recency >= 0 {
			s.wSkill = skill
			s.wPersonality = personalityW
			s.wRecency = recency
		}
	}
}

// WithSkillThreshold sets the fuzzy score a job skill must reach against the
// user's skills to count as matched. Deployment-tunable.
func WithSkillThreshold(t float64) Option {
	return func(s *Scorer) {
		if t >= 0 && t <= 100 {
			s.skillThreshold = t
		}
	}
}

// WithMatcher replaces the fuzzy matcher.
func WithMatcher(m *match.Matcher) Option {
	return func(s *Scorer) {
		if m != nil {
			s.matcher = m
		}
	}
}

// WithClock replaces the time source, for deterministic recency in tests.
func WithClock(now func() time.Time) Option {
	return func(s *Scorer) {
		if now != nil {
			s.now = now
		}
	}
}

// Scorer is a pure function bundle over already-built, read-only indexes.
type Scorer struct {
	wSkill         float64
	wPersonality   float64
	wRecency       float64
	skillThreshold float64
	matcher        *match.Matcher
	now            func() time.Time
}

// New constructs a Scorer with default weights and threshold.
func New(opts ...Option) *Scorer {
	s := &Scorer{
		wSkill:         defaultSkillWeight,
		wPersonality:   defaultPersonalityWeight,
		wRecency:       defaultRecencyWeight,
		skillThreshold: defaultSkillThreshold,
		matcher:        match.New(),
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Weights returns the configured blend weights in skill, personality,
// recency order.
func (s *Scorer) Weights() (skill, personalityW, recency float64) {
	return s.wSkill, s.wPersonality, s.wRecency
}

// SkillOverlap scores how many of the job's skills the user plausibly covers.
// Each job skill counts as matched when its best fuzzy match among the user's
// skills reaches the skill threshold; the result is matched over total job
// skills. Either side empty scores 0: a job without listed skills cannot be
// skill-matched, and a user without skills provides no signal.
func (s *Scorer) SkillOverlap(jobSkills, userSkills []string) float64 {
	if len(jobSkills) == 0 || len(userSkills) == 0 {
		return 0
	}
	matched := 0
	for _, js := range jobSkills {
		if js == "" {
			continue
		}
		if _, ok := s.matcher.BestMatch(js, userSkills, s.skillThreshold); ok {
			matched++
		}
	}
	return float64(matched) / float64(len(jobSkills))
}

// Recency scores a publish date on a linear 365-day decay. Missing or
// unparseable dates score 0 (maximally stale), never an error.
func (s *Scorer) Recency(publishDate *string) float64 {
	if publishDate == nil {
		return 0
	}
	ts, ok := parseDate(*publishDate)
	if !ok {
		return 0
	}
	days := s.now().UTC().Sub(ts).Hours() / 24
	return personality.Clamp01(1 - days/recencyHorizonDays)
}

// Relevance blends skill overlap, personality similarity and recency into an
// integer score in [0,100]. Personality similarity compares the user's vector
// against the lookup's inference for the job's title.
func (s *Scorer) Relevance(job model.JobRecord, lookup PersonalityLookup, userVec personality.Vector, userSkills []string) int {
	jobVec := lookup.PersonalityByTitle(job.Title)
	skill := s.SkillOverlap(job.Skills, userSkills)
	sim := personality.Similarity(jobVec, userVec)
	recency := s.Recency(job.PublishDate)

	final := s.wSkill*skill + s.wPersonality*sim + s.wRecency*recency
	rel := int(math.Round(final * 100))
	if rel < 0 {
		return 0
	}
	if rel > maxRelevance {
		return maxRelevance
	}
	return rel
}

// Date layouts seen in real corpora: RFC3339, naive timestamps, plain dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.UTC(), true
		}
	}
	return time.Time{}, false
}
