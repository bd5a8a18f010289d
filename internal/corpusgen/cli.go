package corpusgen

import (
	"fmt"
	"os"

	"github.com/okian/jobmatch/pkg/logger"
)

// SetupLogging initializes the structured logger for the tool.
func SetupLogging(verbose bool) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if verbose {
		return logger.SetLevelString("debug")
	}
	return nil
}

// ShowHelp prints usage information for the corpus generator.
func ShowHelp() {
	os.Stdout.WriteString(`Jobmatch Corpus Generator
=========================

Generates synthetic job and user corpus files, and can smoke-probe a
running jobmatch service with the generated users.

Usage:
  go run cmd/gen-corpus/main.go [options]

Options:
  -jobs int
        Number of job documents to generate (default 1000)
  -users int
        Number of user profiles to generate (default 100)
  -jobs-file string
        Output path for job documents (default "./data/jobs.json")
  -users-file string
        Output path for user documents (default "./data/users.json")
  -smoke
        Probe a running service after generating
  -url string
        Base URL of the service for smoke probes (default "http://localhost:9080")
  -probes int
        Number of smoke probes to send (default 20)
  -timeout duration
        HTTP request timeout (default 30s)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Generate the default corpus under ./data
  go run cmd/gen-corpus/main.go

  # Generate a bigger corpus and smoke-test a local service
  go run cmd/gen-corpus/main.go -jobs 50000 -users 5000 -smoke
`)
}
