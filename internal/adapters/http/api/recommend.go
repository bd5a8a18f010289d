package api

import (
	"context"
	"net/http"

	"github.com/okian/jobmatch/internal/domain/types"
)

// RecommendDependencies defines the interface for recommendation reads.
type RecommendDependencies interface {
	Recommend(ctx context.Context, userID string, topK int, minRelevance *int) (types.Recommendation, error)
}

// RecommendHandler handles recommendation requests.
type RecommendHandler struct {
	deps RecommendDependencies
}

// NewRecommendHandler creates a new recommendation handler.
func NewRecommendHandler(deps RecommendDependencies) *RecommendHandler {
	return &RecommendHandler{deps: deps}
}

// HandleRecommend handles GET /recommend/{user_id} requests.
// Optional query parameters: top_k (result cap), min_relevance (score floor).
func (h *RecommendHandler) HandleRecommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	userID, err := userIDFromPath(r, "/recommend/")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	query := r.URL.Query()
	topK, err := topKParam(query)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	minRelevance, err := minRelevanceParam(query)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	rec, err := h.deps.Recommend(r.Context(), userID, topK, minRelevance)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}
