package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"explorer/internal/domain"
	"explorer/internal/httputil"
)

// HealthCheck reports liveness
// GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// APIIndex describes the available endpoints
// GET /api
func APIIndex(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]any{
		"name":    "Explorer API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"health":         "GET /health",
			"folderTree":     "GET /api/v1/folders/tree",
			"folderChildren": "GET /api/v1/folders/children?parentId=:id",
			"folderDetails":  "GET /api/v1/folders/:id/details",
			"createFolder":   "POST /api/v1/folders",
			"searchFolders":  "GET /api/v1/folders/search?q=:query",
		},
	})
}

// NotFound answers requests that match no route with a 404 envelope.
// Register it on "/" so it catches every unmatched path.
func NotFound(w http.ResponseWriter, r *http.Request) {
	err := fmt.Errorf("%s %s: %w", r.Method, r.URL.Path, domain.ErrNotFound)
	handleError(w, slog.Default(), err, msgNotFound)
}
