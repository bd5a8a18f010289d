package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/okian/jobmatch/internal/domain/model"
	"github.com/okian/jobmatch/pkg/logger"
)

// FileCorpus reads job and user documents from JSON array files. Files are
// re-read on every load, so a rebuild picks up whatever the files contain at
// that moment. The file pair stands in for a document-store dump.
type FileCorpus struct {
	jobsPath  string
	usersPath string
	logger    logger.Logger
}

// FileOption applies a configuration option to the FileCorpus.
type FileOption func(*FileCorpus)

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) FileOption {
	return func(c *FileCorpus) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewFileCorpus creates a corpus backed by two JSON files.
func NewFileCorpus(jobsPath, usersPath string, opts ...FileOption) *FileCorpus {
	c := &FileCorpus{
		jobsPath:  jobsPath,
		usersPath: usersPath,
		logger:    logger.Get().Named("corpus"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LoadJobs reads and decodes every job document.
func (c *FileCorpus) LoadJobs(ctx context.Context) ([]model.JobRecord, error) {
	docs, err := readDocuments(c.jobsPath)
	if err != nil {
		return nil, fmt.Errorf("load jobs: %w", err)
	}
	jobs := make([]model.JobRecord, 0, len(docs))
	for _, doc := range docs {
		jobs = append(jobs, model.JobFromDocument(doc))
	}
	c.logger.Info(ctx, "loaded job corpus",
		logger.String("path", c.jobsPath),
		logger.Int("jobs", len(jobs)),
	)
	return jobs, nil
}

// LoadUsers reads and decodes every profile document.
func (c *FileCorpus) LoadUsers(ctx context.Context) (*UserDirectory, error) {
	docs, err := readDocuments(c.usersPath)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	dir := NewUserDirectory(docs)
	c.logger.Info(ctx, "loaded user profiles",
		logger.String("path", c.usersPath),
		logger.Int("users", dir.Count()),
	)
	return dir, nil
}

// readDocuments decodes a JSON array of objects from path.
func readDocuments(path string) ([]map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var docs []map[string]any
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return docs, nil
}

// StaticCorpus serves fixed document sets, mainly for tests and tooling.
type StaticCorpus struct {
	JobDocs  []map[string]any
	UserDocs []map[string]any
}

// LoadJobs decodes the fixed job documents.
func (c *StaticCorpus) LoadJobs(ctx context.Context) ([]model.JobRecord, error) {
	jobs := make([]model.JobRecord, 0, len(c.JobDocs))
	for _, doc := range c.JobDocs {
		jobs = append(jobs, model.JobFromDocument(doc))
	}
	return jobs, nil
}

// LoadUsers builds a directory from the fixed user documents.
func (c *StaticCorpus) LoadUsers(ctx context.Context) (*UserDirectory, error) {
	return NewUserDirectory(c.UserDocs), nil
}
