package config

import (
	"context"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if JOBMATCH_CONFIG is set
//  3. env (prefix JOBMATCH_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("JOBMATCH_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: JOBMATCH_ADDR, JOBMATCH_SKILL_FUZZY_THRESHOLD, ...
	// Keys keep their underscores to match the koanf tags on the struct.
	envProvider := env.Provider("JOBMATCH_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "jobmatch_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return ErrEmptyAddr
	case c.JobsFile == "" || c.UsersFile == "":
		return ErrEmptyCorpusPath
	case !thresholdOK(c.FuzzyTitleThreshold),
		!thresholdOK(c.ActiveFuzzyTitleThreshold),
		!thresholdOK(c.SkillFuzzyThreshold):
		return ErrBadThreshold
	case c.ScoringConcurrency <= 0:
		return ErrBadConcurrency
	case c.PersonalityCacheSize <= 0:
		return ErrBadCacheSize
	case c.MaxTitleMatches <= 0:
		return ErrBadTitleMatches
	case c.SkillWeight < 0 || c.PersonalityWeight < 0 || c.RecencyWeight < 0:
		return ErrNegativeWeight
	}
	return nil
}

func thresholdOK(t float64) bool {
	return t >= 0 && t <= 100
}
