package corpusgen

import "time"

// Config holds configuration for corpus generation and the optional smoke run.
type Config struct {
	BaseURL   string        // Base URL of a running service, for smoke probes
	NumJobs   int           // Number of job postings to generate
	NumUsers  int           // Number of user profiles to generate
	Probes    int           // Number of smoke probes to send when Smoke is set
	Timeout   time.Duration // HTTP request timeout
	JobsFile  string        // Output file for job documents
	UsersFile string        // Output file for user documents
	Smoke     bool          // Probe a running service after generating
	Verbose   bool          // Enable verbose logging
}

// Stats holds generation and smoke statistics.
type Stats struct {
	JobsGenerated  int
	UsersGenerated int
	ProbesSent     int
	ProbesOK       int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
}
