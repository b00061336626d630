// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/acervo/nivela/internal/adapters/batch"
	"github.com/acervo/nivela/internal/adapters/repository"
	"github.com/acervo/nivela/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	// Evaluate levels one book and stores the outcome.
	Evaluate(ctx context.Context, book model.Book) (model.LevelAssignment, error)

	// EvaluateBatch levels a batch, one outcome per book in input order.
	EvaluateBatch(ctx context.Context, books []model.Book) []batch.Result

	// Read operations expose stored results.
	Results(ctx context.Context) []repository.Record
	Result(ctx context.Context, bookID string) (repository.Record, error)
}

// Server wires HTTP routes for the leveling API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	booksHandler   *BooksHandler
	batchHandler   *BatchHandler
	resultsHandler *ResultsHandler
	exportHandler  *ExportHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		booksHandler:   NewBooksHandler(deps),
		batchHandler:   NewBatchHandler(deps),
		resultsHandler: NewResultsHandler(deps),
		exportHandler:  NewExportHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/books", MetricsMiddleware(s.booksHandler.HandlePostBook, "books"))
	mux.HandleFunc("/batch", MetricsMiddleware(s.batchHandler.HandlePostBatch, "batch"))
	mux.HandleFunc("/export.csv", MetricsMiddleware(s.exportHandler.HandleExport, "export"))
	mux.HandleFunc("/results", MetricsMiddleware(s.resultsHandler.HandleListResults, "results"))
	mux.HandleFunc("/results/", MetricsMiddleware(s.resultsHandler.HandleGetResult, "result"))
}

// bookRequest mirrors the request schema for POST /books.
type bookRequest struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

func (b bookRequest) validate() error {
	if strings.TrimSpace(b.ID) == "" {
		return errors.New("missing id")
	}
	return nil
}

func (b bookRequest) toBook() model.Book {
	return model.Book{ID: b.ID, Filename: b.Filename, Text: b.Text}
}

// batchRequest mirrors the request schema for POST /batch.
type batchRequest struct {
	Books []bookRequest `json:"books"`
}

// assignmentResponse is the success shape for a single leveled book.
type assignmentResponse struct {
	BookID     string                `json:"book_id"`
	Assignment model.LevelAssignment `json:"assignment"`
}

// outcomeResponse is the per-book shape inside a batch response. Exactly
// one of Assignment and Error is set.
type outcomeResponse struct {
	BookID     string                 `json:"book_id"`
	Assignment *model.LevelAssignment `json:"assignment,omitempty"`
	Error      string                 `json:"error,omitempty"`
}

type batchResponse struct {
	Outcomes []outcomeResponse `json:"outcomes"`
}

// recordResponse is the stored-result shape for GET /results.
type recordResponse struct {
	ResultID   string                 `json:"result_id"`
	BookID     string                 `json:"book_id"`
	Filename   string                 `json:"filename,omitempty"`
	Assignment *model.LevelAssignment `json:"assignment,omitempty"`
	Error      string                 `json:"error,omitempty"`
	CreatedAt  string                 `json:"created_at"`
}

func recordToResponse(rec repository.Record) recordResponse {
	return recordResponse{
		ResultID:   rec.ResultID,
		BookID:     rec.BookID,
		Filename:   rec.Filename,
		Assignment: rec.Assignment,
		Error:      rec.Err,
		CreatedAt:  rec.CreatedAt.UTC().Format(time.RFC3339),
	}
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
