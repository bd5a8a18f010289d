package model

import "github.com/okian/jobmatch/internal/domain/personality"

// UserProfile is the read-only scoring input for a user. The personality
// vector is all-default when the profile never took the questionnaire.
type UserProfile struct {
	ID          string
	Skills      []string
	Personality personality.Vector
}

// UserFromDocument converts a raw profile document into a UserProfile.
// Malformed personality sub-fields degrade to defaults; they never error.
func UserFromDocument(doc map[string]any) UserProfile {
	return UserProfile{
		ID:          stringField(doc, "id", "_id"),
		Skills:      stringList(doc, "skills"),
		Personality: personality.FromDocument(doc),
	}
}
