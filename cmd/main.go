package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/acervo/nivela/internal/adapters/http/api"
	"github.com/acervo/nivela/internal/adapters/rubricio"
	app "github.com/acervo/nivela/internal/app"
	"github.com/acervo/nivela/internal/config"
	"github.com/acervo/nivela/internal/domain/refine"
	"github.com/acervo/nivela/pkg/logger"
	"github.com/acervo/nivela/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	loggerInstance := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Load the rubric before the service; nothing works without it.
	rubricStore, err := rubricio.LoadFile(cfg.RubricPath)
	if err != nil {
		loggerInstance.Error(ctx, "failed to load rubric", logger.String("path", cfg.RubricPath), logger.Error(err))
		return
	}

	// Create and start the service with configuration options
	svc := app.New(
		app.WithLogger(loggerInstance),
		app.WithRubric(rubricStore),
		app.WithWorkerCount(cfg.WorkerCount),
		app.WithSampleLimit(cfg.SampleLimit),
		app.WithLongWordMinLen(cfg.LongWordMinLen),
		app.WithExtraMarkers(cfg.ExtraConnectives),
		app.WithBandCuts(cfg.BandCuts),
		app.WithRefineWeights(refineWeights(cfg)),
		app.WithRefineBounds(refineBounds(cfg)),
	)
	if err := svc.Start(ctx); err != nil {
		loggerInstance.Error(ctx, "failed to start service", logger.Error(err))
		return
	}
	defer svc.Stop()

	// HTTP mux and routes.
	mux := http.NewServeMux()

	// Register business API routes with the service dependency.
	apiServer := api.NewServer(svc, svc)
	apiServer.Register(ctx, mux)

	// Prometheus metrics from the custom registry.
	mux.Handle("/metrics", metrics.Handler())

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	// Start the HTTP server
	go func() {
		loggerInstance.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			return
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	loggerInstance.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		loggerInstance.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	loggerInstance.Info(ctx, "server stopped")
}

// refineWeights converts the configuration profile to the domain type.
func refineWeights(cfg *config.Config) refine.Weights {
	return refine.Weights{
		TypeTokenRatio:    cfg.Refine.Weights.TypeTokenRatio,
		LongWordRatio:     cfg.Refine.Weights.LongWordRatio,
		CommasPerSentence: cfg.Refine.Weights.CommasPerSentence,
		ConnectiveDensity: cfg.Refine.Weights.ConnectiveDensity,
	}
}

// refineBounds converts the configuration profile to the domain type.
func refineBounds(cfg *config.Config) refine.Bounds {
	return refine.Bounds{
		TypeTokenRatio:    boundsRange(cfg.Refine.Bounds.TypeTokenRatio),
		LongWordRatio:     boundsRange(cfg.Refine.Bounds.LongWordRatio),
		CommasPerSentence: boundsRange(cfg.Refine.Bounds.CommasPerSentence),
		ConnectiveDensity: boundsRange(cfg.Refine.Bounds.ConnectiveDensity),
	}
}

func boundsRange(r config.Range) refine.Range {
	return refine.Range{Min: r.Min, Max: r.Max}
}
