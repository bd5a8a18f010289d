package api

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// userIDFromPath extracts the trailing path segment after prefix.
// "/recommend/u1" with prefix "/recommend/" yields "u1".
func userIDFromPath(r *http.Request, prefix string) (string, error) {
	raw := strings.TrimPrefix(r.URL.Path, prefix)
	if raw == "" || strings.Contains(raw, "/") {
		return "", ErrBadPath
	}
	id, err := url.PathUnescape(raw)
	if err != nil || id == "" {
		return "", ErrBadPath
	}
	return id, nil
}

// topKParam parses an optional top_k query parameter. Absent or non-positive
// means no truncation.
func topKParam(values url.Values) (int, error) {
	raw := values.Get("top_k")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrBadRequest
	}
	return n, nil
}

// minRelevanceParam parses an optional min_relevance query parameter.
func minRelevanceParam(values url.Values) (*int, error) {
	raw := values.Get("min_relevance")
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, ErrBadRequest
	}
	return &n, nil
}
