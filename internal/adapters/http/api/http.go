// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/jobmatch/internal/adapters/repository"
	"github.com/okian/jobmatch/internal/domain/types"
	"github.com/okian/jobmatch/internal/index"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Recommend ranks jobs for a user via skill-index retrieval.
	Recommend(ctx context.Context, userID string, topK int, minRelevance *int) (types.Recommendation, error)

	// SearchByTitles ranks jobs matching the query titles for a user.
	SearchByTitles(ctx context.Context, userID string, titles []string, topK int, minRelevance *int) (types.Recommendation, error)

	// Rebuild reloads the corpus and swaps the index snapshot.
	Rebuild(ctx context.Context) error
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	recommendHandler *RecommendHandler
	searchHandler    *SearchHandler
	rebuildHandler   *RebuildHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		recommendHandler: NewRecommendHandler(deps),
		searchHandler:    NewSearchHandler(deps),
		rebuildHandler:   NewRebuildHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", Middleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", Middleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/recommend/", Middleware(s.recommendHandler.HandleRecommend, "recommend"))
	mux.HandleFunc("/search/", Middleware(s.searchHandler.HandleSearch, "search"))
	mux.HandleFunc("/rebuild", Middleware(s.rebuildHandler.HandleRebuild, "rebuild"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError translates domain sentinels to their HTTP shapes; anything
// unrecognized is a 500.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "user_not_found", err)
	case errors.Is(err, index.ErrNotBuilt):
		writeError(w, http.StatusServiceUnavailable, "index_not_built", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
