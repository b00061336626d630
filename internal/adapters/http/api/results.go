// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/acervo/nivela/internal/adapters/repository"
)

// ResultDependencies defines the interface for result lookups.
type ResultDependencies interface {
	Results(ctx context.Context) []repository.Record
	Result(ctx context.Context, bookID string) (repository.Record, error)
}

// ResultsHandler handles stored-result requests.
type ResultsHandler struct {
	deps ResultDependencies
}

// NewResultsHandler creates a new results handler.
func NewResultsHandler(deps ResultDependencies) *ResultsHandler {
	return &ResultsHandler{deps: deps}
}

// HandleListResults handles GET /results requests.
func (h *ResultsHandler) HandleListResults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	records := h.deps.Results(r.Context())
	out := make([]recordResponse, len(records))
	for i, rec := range records {
		out[i] = recordToResponse(rec)
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleGetResult handles GET /results/{book_id} requests.
func (h *ResultsHandler) HandleGetResult(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameter after /results/
	bookID := strings.TrimPrefix(r.URL.Path, "/results/")
	if bookID == "" || strings.Contains(bookID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	rec, err := h.deps.Result(r.Context(), bookID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, recordToResponse(rec))
}
