// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/acervo/nivela/internal/domain/model"
	"github.com/acervo/nivela/internal/domain/rubric"
	"github.com/acervo/nivela/internal/domain/textmetrics"
)

// BookDependencies defines the interface for single-book evaluation.
type BookDependencies interface {
	Evaluate(ctx context.Context, book model.Book) (model.LevelAssignment, error)
}

// BooksHandler handles single-book evaluation requests.
type BooksHandler struct {
	deps BookDependencies
}

// NewBooksHandler creates a new books handler.
func NewBooksHandler(deps BookDependencies) *BooksHandler {
	return &BooksHandler{deps: deps}
}

// HandlePostBook handles POST /books requests.
func (h *BooksHandler) HandlePostBook(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_book"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%s: %w: %w", op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%s: %w: %w", op, ErrBadRequest, err))
		return
	}

	assignment, err := h.deps.Evaluate(r.Context(), req.toBook())
	if err != nil {
		switch {
		case errors.Is(err, textmetrics.ErrEmptyInput):
			writeError(w, http.StatusUnprocessableEntity, "empty_input", err)
		case errors.Is(err, rubric.ErrLevelNotFound):
			writeError(w, http.StatusInternalServerError, "rubric_lookup", err)
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, assignmentResponse{BookID: req.ID, Assignment: assignment})
}
