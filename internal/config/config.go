// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Defaults come from New; file and environment layers override them.
// - Thresholds are fuzzy scores in [0,100]; weights are fractions of 1.0.
package config

import "math"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// JobsFile and UsersFile locate the corpus documents.
	JobsFile  string `koanf:"jobs_file"`
	UsersFile string `koanf:"users_file"`

	// FuzzyTitleThreshold gates personality-by-title inference.
	FuzzyTitleThreshold float64 `koanf:"fuzzy_title_threshold"`

	// ActiveFuzzyTitleThreshold gates title-search candidate selection. It is
	// looser than the personality threshold since it controls recall of whole
	// postings.
	ActiveFuzzyTitleThreshold float64 `koanf:"active_fuzzy_title_threshold"`

	// SkillFuzzyThreshold gates per-skill matching in overlap scoring.
	// Deployment-tunable; known deployments run anywhere from 60 to 78.
	SkillFuzzyThreshold float64 `koanf:"skill_fuzzy_threshold"`

	// MaxTitleMatches caps fuzzy matches considered per query title.
	MaxTitleMatches int `koanf:"max_title_matches"`

	// Scoring blend weights. They should sum to 1.0.
	SkillWeight       float64 `koanf:"skill_weight"`
	PersonalityWeight float64 `koanf:"personality_weight"`
	RecencyWeight     float64 `koanf:"recency_weight"`

	// ScoringConcurrency bounds simultaneous in-flight scoring work.
	ScoringConcurrency int `koanf:"scoring_concurrency"`

	// PersonalityCacheSize bounds the memoized title-lookup cache.
	PersonalityCacheSize int `koanf:"personality_cache_size"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:                  "info",
		Addr:                      ":9080",
		JobsFile:                  "./data/jobs.json",
		UsersFile:                 "./data/users.json",
		FuzzyTitleThreshold:       70.0,
		ActiveFuzzyTitleThreshold: 60.0,
		SkillFuzzyThreshold:       60.0,
		MaxTitleMatches:           50,
		SkillWeight:               0.60,
		PersonalityWeight:         0.25,
		RecencyWeight:             0.15,
		ScoringConcurrency:        32,
		PersonalityCacheSize:      4096,
	}
}

// WeightsSumToOne reports whether the blend weights add up to 1.0 within a
// small tolerance. Not hard-enforced; callers log a warning when false.
func (c *Config) WeightsSumToOne() bool {
	sum := c.SkillWeight + c.PersonalityWeight + c.RecencyWeight
	return math.Abs(sum-1.0) < 1e-9
}
