// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/acervo/nivela/internal/adapters/batch"
	"github.com/acervo/nivela/internal/domain/model"
)

// BatchDependencies defines the interface for batch evaluation.
type BatchDependencies interface {
	EvaluateBatch(ctx context.Context, books []model.Book) []batch.Result
}

// BatchHandler handles batch evaluation requests.
type BatchHandler struct {
	deps BatchDependencies
}

// NewBatchHandler creates a new batch handler.
func NewBatchHandler(deps BatchDependencies) *BatchHandler {
	return &BatchHandler{deps: deps}
}

// HandlePostBatch handles POST /batch requests. Per-book failures are
// reported inline; the response is always one outcome per book, in
// input order.
func (h *BatchHandler) HandlePostBatch(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_batch"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%s: %w: %w", op, ErrBadRequest, err))
		return
	}
	if len(req.Books) == 0 {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%s: %w: empty batch", op, ErrBadRequest))
		return
	}
	for _, b := range req.Books {
		if err := b.validate(); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%s: %w: %w", op, ErrBadRequest, err))
			return
		}
	}

	books := make([]model.Book, len(req.Books))
	for i, b := range req.Books {
		books[i] = b.toBook()
	}

	results := h.deps.EvaluateBatch(r.Context(), books)

	outcomes := make([]outcomeResponse, len(results))
	for i, res := range results {
		out := outcomeResponse{BookID: res.Book.ID}
		if res.Err != nil {
			out.Error = res.Err.Error()
		} else {
			a := res.Assignment
			out.Assignment = &a
		}
		outcomes[i] = out
	}
	writeJSON(w, http.StatusOK, batchResponse{Outcomes: outcomes})
}
