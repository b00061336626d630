// Package export serializes leveling results for downstream consumers.
// Column names are the stable contract with the spreadsheet tooling used
// by the grading teams; do not rename them.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/acervo/nivela/internal/adapters/batch"
	"github.com/acervo/nivela/internal/adapters/repository"
)

// Headers of the result contract, in column order.
var Headers = []string{"ISBN", "Arquivo", "Nível", "Justificativa", "Evidências"}

// Row is one CSV line in the downstream contract.
type Row struct {
	ISBN          string
	Filename      string
	Level         string
	Justification string
	Evidence      string
}

// RowFromRecord converts a stored record. Failures render as level "?"
// with the error message as justification, matching the tooling's
// convention for unleveled books.
func RowFromRecord(rec repository.Record) Row {
	if rec.Assignment == nil {
		return Row{
			ISBN:          rec.BookID,
			Filename:      rec.Filename,
			Level:         "?",
			Justification: rec.Err,
		}
	}
	return Row{
		ISBN:          rec.BookID,
		Filename:      rec.Filename,
		Level:         string(rec.Assignment.Level),
		Justification: rec.Assignment.Justification,
		Evidence:      rec.Assignment.Evidence.Evidence(),
	}
}

// RowsFromRecords converts stored records in order.
func RowsFromRecords(recs []repository.Record) []Row {
	rows := make([]Row, len(recs))
	for i, rec := range recs {
		rows[i] = RowFromRecord(rec)
	}
	return rows
}

// RowsFromBatch converts batch results in input order.
func RowsFromBatch(results []batch.Result) []Row {
	rows := make([]Row, len(results))
	for i, r := range results {
		if r.Err != nil {
			rows[i] = Row{
				ISBN:          r.Book.ID,
				Filename:      r.Book.Filename,
				Level:         "?",
				Justification: r.Err.Error(),
			}
			continue
		}
		rows[i] = Row{
			ISBN:          r.Book.ID,
			Filename:      r.Book.Filename,
			Level:         string(r.Assignment.Level),
			Justification: r.Assignment.Justification,
			Evidence:      r.Assignment.Evidence.Evidence(),
		}
	}
	return rows
}

// WriteCSV writes the header plus one line per row.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Headers); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range rows {
		record := []string{r.ISBN, r.Filename, r.Level, r.Justification, r.Evidence}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
