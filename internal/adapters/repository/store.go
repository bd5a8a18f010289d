// Package repository provides read access to the job corpus and user
// profiles. The persistence engine behind the corpus is out of scope; a
// Corpus implementation hands the service complete document sets, which is
// all the index lifecycle requires (one full load per rebuild).
package repository

import (
	"context"

	"github.com/okian/jobmatch/internal/domain/model"
)

// Corpus loads the full document sets backing one index build.
type Corpus interface {
	// LoadJobs returns every job record. Called once per rebuild.
	LoadJobs(ctx context.Context) ([]model.JobRecord, error)

	// LoadUsers returns the user directory current at load time.
	LoadUsers(ctx context.Context) (*UserDirectory, error)
}

// UserDirectory resolves user IDs to profiles. Read-only after construction.
// Profiles are reachable under both their id field and raw document _id,
// matching what upstream identity layers send.
type UserDirectory struct {
	byID  map[string]model.UserProfile
	count int
}

// NewUserDirectory builds a directory from raw profile documents.
func NewUserDirectory(docs []map[string]any) *UserDirectory {
	d := &UserDirectory{byID: make(map[string]model.UserProfile, len(docs))}
	for _, doc := range docs {
		u := model.UserFromDocument(doc)
		if u.ID != "" {
			d.byID[u.ID] = u
		}
		if raw, ok := doc["_id"].(string); ok && raw != "" {
			d.byID[raw] = u
		}
		d.count++
	}
	return d
}

// User returns the profile for id, or ErrUserNotFound.
func (d *UserDirectory) User(ctx context.Context, id string) (model.UserProfile, error) {
	u, ok := d.byID[id]
	if !ok {
		return model.UserProfile{}, ErrUserNotFound
	}
	return u, nil
}

// Count returns the number of loaded profiles.
func (d *UserDirectory) Count() int {
	return d.count
}
