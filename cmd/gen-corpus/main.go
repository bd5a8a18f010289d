package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/jobmatch/internal/corpusgen"
)

// Default configuration constants.
const (
	defaultNumJobs    = 1000
	defaultNumUsers   = 100
	defaultProbes     = 20
	defaultTimeout    = 30 * time.Second
	defaultRunTimeout = 10 * time.Minute
)

func main() {
	var (
		baseURL   = flag.String("url", "http://localhost:9080", "Base URL of the service for smoke probes")
		numJobs   = flag.Int("jobs", defaultNumJobs, "Number of job documents to generate")
		numUsers  = flag.Int("users", defaultNumUsers, "Number of user profiles to generate")
		probes    = flag.Int("probes", defaultProbes, "Number of smoke probes to send")
		timeout   = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		jobsFile  = flag.String("jobs-file", "./data/jobs.json", "Output path for job documents")
		usersFile = flag.String("users-file", "./data/users.json", "Output path for user documents")
		smoke     = flag.Bool("smoke", false, "Probe a running service after generating")
		verbose   = flag.Bool("verbose", false, "Enable verbose logging")
		help      = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		corpusgen.ShowHelp()
		return
	}

	if err := corpusgen.SetupLogging(*verbose); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &corpusgen.Config{
		BaseURL:   *baseURL,
		NumJobs:   *numJobs,
		NumUsers:  *numUsers,
		Probes:    *probes,
		Timeout:   *timeout,
		JobsFile:  *jobsFile,
		UsersFile: *usersFile,
		Smoke:     *smoke,
		Verbose:   *verbose,
	}

	if err := corpusgen.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Corpus generation failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
