// Package model contains domain models passed between layers.
package model

import "github.com/okian/jobmatch/internal/domain/personality"

// JobRecord is a job posting loaded from the corpus. Records are read-only
// for the lifetime of an index snapshot; a rebuild replaces them wholesale.
type JobRecord struct {
	ID          string
	Title       string
	Company     string
	ApplyLink   string
	Description string
	PublishDate *string // ISO8601, nil when the posting carries no date
	Locations   []string
	Skills      []string
	Education   []string
	Personality personality.Vector
}

// JobFromDocument converts a raw corpus document into a JobRecord. Field
// fallbacks mirror what upstream stores actually contain: id falls back to
// _id, publish_date to created_at/posted_at, locations to a scalar location.
func JobFromDocument(doc map[string]any) JobRecord {
	j := JobRecord{
		ID:          stringField(doc, "id", "_id"),
		Title:       stringField(doc, "title"),
		Company:     stringField(doc, "company"),
		ApplyLink:   stringField(doc, "apply_link"),
		Description: stringField(doc, "description"),
		Locations:   stringList(doc, "locations", "location"),
		Skills:      stringList(doc, "skills"),
		Education:   stringList(doc, "education"),
	}
	if pd := stringField(doc, "publish_date", "created_at", "posted_at"); pd != "" {
		j.PublishDate = &pd
	}
	j.Personality = personality.FromDocument(doc)
	return j
}

// stringField returns the first non-empty string value among keys.
func stringField(doc map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := doc[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// stringList returns the first present list among keys, coercing elements to
// strings and tolerating scalar values (wrapped into a one-element list).
func stringList(doc map[string]any, keys ...string) []string {
	for _, k := range keys {
		switch v := doc[k].(type) {
		case []any:
			out := make([]string, 0, len(v))
			for _, e := range v {
				if s, ok := e.(string); ok {
					out = append(out, s)
				}
			}
			return out
		case []string:
			return v
		case string:
			if v != "" {
				return []string{v}
			}
		}
	}
	return nil
}
