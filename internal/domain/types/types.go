// Package types contains common types used across the application.
package types

// RecommendedJob is one scored result. It carries the job's public fields
// plus the computed relevance; the internal personality vector never leaves
// the scoring layer.
type RecommendedJob struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	ApplyLink   string   `json:"apply_link"`
	Description string   `json:"description"`
	PublishDate *string  `json:"publish_date"`
	Locations   []string `json:"locations"`
	Skills      []string `json:"skills"`
	Education   []string `json:"education"`
	Relevance   int      `json:"relevance"`
}

// Recommendation is the response shape shared by both retrieval modes.
// QueryTitles is only set for title search.
type Recommendation struct {
	UserID      string           `json:"user_id"`
	QueryTitles []string         `json:"query_titles,omitempty"`
	Count       int              `json:"count"`
	Results     []RecommendedJob `json:"results"`
}
