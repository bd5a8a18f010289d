package api

import (
	"context"
	"net/http"
)

// RebuildDependencies defines the interface for index rebuilds.
type RebuildDependencies interface {
	Rebuild(ctx context.Context) error
}

// RebuildHandler handles manual index rebuild requests.
type RebuildHandler struct {
	deps RebuildDependencies
}

// NewRebuildHandler creates a new rebuild handler.
func NewRebuildHandler(deps RebuildDependencies) *RebuildHandler {
	return &RebuildHandler{deps: deps}
}

// HandleRebuild handles POST /rebuild requests. The call blocks until the
// new snapshot is live; concurrent rebuilds serialize behind it.
func (h *RebuildHandler) HandleRebuild(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	if err := h.deps.Rebuild(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "rebuild_failed", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "rebuilt"})
}
