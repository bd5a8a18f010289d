package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/jobmatch/internal/domain/types"
)

// SearchDependencies defines the interface for title search.
type SearchDependencies interface {
	SearchByTitles(ctx context.Context, userID string, titles []string, topK int, minRelevance *int) (types.Recommendation, error)
}

// SearchHandler handles title search requests.
type SearchHandler struct {
	deps SearchDependencies
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(deps SearchDependencies) *SearchHandler {
	return &SearchHandler{deps: deps}
}

// searchRequest is the POST /search body. Titles may be empty, which is an
// explicit empty query and yields no results.
type searchRequest struct {
	Titles       []string `json:"titles"`
	TopK         int      `json:"top_k"`
	MinRelevance *int     `json:"min_relevance"`
}

// HandleSearch handles POST /search/{user_id} requests.
func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	userID, err := userIDFromPath(r, "/search/")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	rec, err := h.deps.SearchByTitles(r.Context(), userID, req.Titles, req.TopK, req.MinRelevance)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}
