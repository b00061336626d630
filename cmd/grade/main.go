// Command grade levels a directory of manuscripts and writes the catalog
// CSV. It is the batch-mode counterpart of the HTTP service, intended for
// acquisitions runs over a whole collection.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/acervo/nivela/internal/adapters/export"
	"github.com/acervo/nivela/internal/adapters/rubricio"
	app "github.com/acervo/nivela/internal/app"
	"github.com/acervo/nivela/internal/domain/model"
	"github.com/acervo/nivela/internal/isbn"
	"github.com/acervo/nivela/pkg/logger"
)

func main() {
	rubricPath := flag.String("rubric", "rubric.yaml", "path to the YAML rubric file")
	pattern := flag.String("glob", "manuscripts/**/*.txt", "glob pattern for manuscript files")
	outPath := flag.String("out", "niveis.csv", "output CSV path, - for stdout")
	workers := flag.Int("workers", 0, "batch workers, 0 for the default")
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.Named("grade")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rubricStore, err := rubricio.LoadFile(*rubricPath)
	if err != nil {
		log.Error(ctx, "failed to load rubric", logger.String("path", *rubricPath), logger.Error(err))
		os.Exit(1)
	}

	paths, err := doublestar.FilepathGlob(*pattern)
	if err != nil {
		log.Error(ctx, "bad glob pattern", logger.String("glob", *pattern), logger.Error(err))
		os.Exit(1)
	}
	if len(paths) == 0 {
		log.Warn(ctx, "no manuscripts matched", logger.String("glob", *pattern))
		os.Exit(0)
	}

	books := make([]model.Book, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			log.Error(ctx, "failed to read manuscript", logger.String("path", p), logger.Error(err))
			os.Exit(1)
		}
		base := filepath.Base(p)
		books = append(books, model.Book{
			ID:       isbn.FromFilename(base),
			Filename: base,
			Text:     string(data),
		})
	}

	opts := []app.Option{app.WithRubric(rubricStore), app.WithLogger(log)}
	if *workers > 0 {
		opts = append(opts, app.WithWorkerCount(*workers))
	}
	svc := app.New(opts...)
	if err := svc.Start(ctx); err != nil {
		log.Error(ctx, "failed to start service", logger.Error(err))
		os.Exit(1)
	}
	defer svc.Stop()

	results := svc.EvaluateBatch(ctx, books)

	out := os.Stdout
	if *outPath != "-" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Error(ctx, "failed to create output", logger.String("path", *outPath), logger.Error(err))
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	if err := export.WriteCSV(out, export.RowsFromBatch(results)); err != nil {
		log.Error(ctx, "failed to write catalog", logger.Error(err))
		os.Exit(1)
	}

	leveled, failed := 0, 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		} else {
			leveled++
		}
	}
	log.Info(ctx, "batch complete",
		logger.Int("manuscripts", len(books)),
		logger.Int("leveled", leveled),
		logger.Int("failed", failed),
	)
}
