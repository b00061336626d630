// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/acervo/nivela/internal/adapters/export"
	"github.com/acervo/nivela/internal/adapters/repository"
)

// ExportDependencies defines the interface for CSV export.
type ExportDependencies interface {
	Results(ctx context.Context) []repository.Record
}

// ExportHandler serves all stored results as the catalog CSV.
type ExportHandler struct {
	deps ExportDependencies
}

// NewExportHandler creates a new export handler.
func NewExportHandler(deps ExportDependencies) *ExportHandler {
	return &ExportHandler{deps: deps}
}

// HandleExport handles GET /export.csv requests.
func (h *ExportHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	rows := export.RowsFromRecords(h.deps.Results(r.Context()))

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="niveis.csv"`)
	// Headers are already written; a mid-stream failure cannot change the status.
	_ = export.WriteCSV(w, rows)
}
