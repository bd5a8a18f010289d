package config

import "errors"

// Validation errors for loaded configuration.
var (
	ErrEmptyAddr       = errors.New("addr must not be empty")
	ErrEmptyCorpusPath = errors.New("jobs_file and users_file must not be empty")
	ErrBadThreshold    = errors.New("thresholds must lie within [0,100]")
	ErrBadConcurrency  = errors.New("scoring_concurrency must be positive")
	ErrBadCacheSize    = errors.New("personality_cache_size must be positive")
	ErrBadTitleMatches = errors.New("max_title_matches must be positive")
	ErrNegativeWeight  = errors.New("scoring weights must not be negative")
)
