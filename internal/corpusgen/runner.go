// Package corpusgen generates synthetic job and user corpora for local runs
// and load tests, and can smoke-probe a running service with them.
package corpusgen

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/okian/jobmatch/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0750
	filePermission      = 0600
)

// Run generates the corpus files and optionally probes a running service.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{StartTime: time.Now()}

	logger.Get().Info(ctx, "starting corpus generation",
		logger.Int("jobs", config.NumJobs),
		logger.Int("users", config.NumUsers),
		logger.String("jobsFile", config.JobsFile),
		logger.String("usersFile", config.UsersFile),
		logger.Any("smoke", config.Smoke))

	jobs := generateJobs(ctx, config, stats)
	users := generateUsers(ctx, config, stats)

	if err := saveDocuments(ctx, config.JobsFile, jobs); err != nil {
		return fmt.Errorf("saving jobs failed: %w", err)
	}
	if err := saveDocuments(ctx, config.UsersFile, users); err != nil {
		return fmt.Errorf("saving users failed: %w", err)
	}

	if config.Smoke {
		if err := runSmokeProbes(ctx, config, users, stats); err != nil {
			return fmt.Errorf("smoke probes failed: %w", err)
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(stats)
	return nil
}

// saveDocuments writes a JSON array of documents to filename.
func saveDocuments(ctx context.Context, filename string, docs []map[string]any) error {
	dir := filepath.Dir(filename)
	if dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal documents: %w", err)
	}
	if err := os.WriteFile(filename, data, filePermission); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}

	logger.Get().Info(ctx, "documents saved", logger.String("filename", filename), logger.Int("count", len(docs)))
	return nil
}

// displayFinalStats prints the final generation statistics.
func displayFinalStats(stats *Stats) {
	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("jobsGenerated", stats.JobsGenerated),
		logger.Int("usersGenerated", stats.UsersGenerated),
		logger.Int("probesSent", stats.ProbesSent),
		logger.Int("probesOK", stats.ProbesOK),
		logger.String("duration", stats.Duration.String()))
}
