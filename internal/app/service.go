// Package app provides the leveling service that wires the metric
// extractor, band classifier, letter refiner, and rubric store into the
// per-book pipeline consumed by the HTTP API and the batch CLI.
package app

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"time"

	"github.com/acervo/nivela/internal/adapters/batch"
	"github.com/acervo/nivela/internal/adapters/repository"
	"github.com/acervo/nivela/internal/domain/justify"
	"github.com/acervo/nivela/internal/domain/level"
	"github.com/acervo/nivela/internal/domain/model"
	"github.com/acervo/nivela/internal/domain/refine"
	"github.com/acervo/nivela/internal/domain/rubric"
	"github.com/acervo/nivela/internal/domain/textmetrics"
	"github.com/acervo/nivela/pkg/logger"
	"github.com/acervo/nivela/pkg/metrics"
)

// Service implements the leveling pipeline and its result bookkeeping.
type Service struct {
	mu sync.RWMutex

	// Core components, built at Start
	rubric     *rubric.Store
	extractor  *textmetrics.Extractor
	classifier *level.Classifier
	refiner    *refine.Refiner
	results    repository.Store
	pool       *batch.Pool

	// Configuration
	workerCount    int
	sampleLimit    int
	longWordMinLen int
	extraMarkers   []string
	bandCuts       []float64
	weights        refine.Weights
	bounds         refine.Bounds

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithRubric sets the rubric store. Required before Start.
func WithRubric(store *rubric.Store) Option {
	return func(s *Service) {
		s.rubric = store
	}
}

// WithWorkerCount sets the number of batch evaluation workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithSampleLimit caps the characters analyzed per book.
func WithSampleLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.sampleLimit = n
		}
	}
}

// WithLongWordMinLen sets the long-word character threshold.
func WithLongWordMinLen(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.longWordMinLen = n
		}
	}
}

// WithExtraMarkers extends the connective marker list.
func WithExtraMarkers(markers []string) Option {
	return func(s *Service) {
		s.extraMarkers = markers
	}
}

// WithBandCuts overrides the band thresholds.
func WithBandCuts(cuts []float64) Option {
	return func(s *Service) {
		if len(cuts) > 0 {
			s.bandCuts = cuts
		}
	}
}

// WithRefineWeights overrides the secondary-metric weights.
func WithRefineWeights(w refine.Weights) Option {
	return func(s *Service) {
		s.weights = w
	}
}

// WithRefineBounds overrides the normalization bounds.
func WithRefineBounds(b refine.Bounds) Option {
	return func(s *Service) {
		s.bounds = b
	}
}

// WithResultsStore sets a custom results store.
func WithResultsStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.results = store
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount: runtime.NumCPU() * 2,
		bandCuts:    level.DefaultCuts(),
		weights:     refine.DefaultWeights(),
		bounds:      refine.DefaultBounds(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start validates the configuration and builds the pipeline components.
// Threshold violations surface here, before any book is processed.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get().Named("leveling")
	}

	if s.rubric == nil {
		return ErrNoRubric
	}

	classifier, err := level.NewClassifier(level.WithCuts(s.bandCuts))
	if err != nil {
		return err
	}
	refiner, err := refine.NewRefiner(
		refine.WithWeights(s.weights),
		refine.WithBounds(s.bounds),
	)
	if err != nil {
		return err
	}

	extractorOpts := []textmetrics.Option{}
	if s.sampleLimit > 0 {
		extractorOpts = append(extractorOpts, textmetrics.WithSampleLimit(s.sampleLimit))
	}
	if s.longWordMinLen > 0 {
		extractorOpts = append(extractorOpts, textmetrics.WithLongWordMinLen(s.longWordMinLen))
	}
	if len(s.extraMarkers) > 0 {
		extractorOpts = append(extractorOpts, textmetrics.WithExtraMarkers(s.extraMarkers...))
	}

	s.classifier = classifier
	s.refiner = refiner
	s.extractor = textmetrics.NewExtractor(extractorOpts...)
	if s.results == nil {
		s.results = repository.NewMemStore()
	}
	s.pool = batch.NewPool(
		batch.WithWorkers(s.workerCount),
		batch.WithLogger(s.logger),
	)

	s.started = true
	metrics.UpdateWorkerCount(s.workerCount)
	s.logger.Info(ctx, "leveling service started",
		logger.Int("workers", s.workerCount),
		logger.Int("rubricLevels", s.rubric.Len()),
	)

	return nil
}

// Stop shuts the service down. Evaluation is synchronous, so there is
// nothing to drain; this only flips the state flag.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "leveling service stopped")
}

// Evaluate runs the full pipeline for one book and records the outcome.
// Per-book failures (ErrEmptyInput, ErrLevelNotFound) come back as typed
// errors; callers batching books should keep going on them.
func (s *Service) Evaluate(ctx context.Context, book model.Book) (model.LevelAssignment, error) {
	start := time.Now()
	defer func() {
		metrics.RecordEvaluationLatency(float64(time.Since(start).Milliseconds()))
	}()

	assignment, err := s.evaluate(ctx, book)

	rec := repository.Record{
		BookID:   book.ID,
		Filename: book.Filename,
	}
	if err != nil {
		rec.Err = err.Error()
		metrics.RecordEvaluationError(errorKind(err))
		s.logger.Warn(ctx, "book failed to evaluate",
			logger.String("bookID", book.ID),
			logger.Error(err),
		)
	} else {
		a := assignment
		rec.Assignment = &a
		metrics.RecordBookEvaluated()
		metrics.RecordLevelAssigned(string(assignment.Level))
	}
	s.results.Put(ctx, rec)
	metrics.UpdateResultsStored(s.results.Count(ctx))

	return assignment, err
}

// evaluate is the pure pipeline pass: metrics, band, letter, rubric,
// justification.
func (s *Service) evaluate(ctx context.Context, book model.Book) (model.LevelAssignment, error) {
	m, err := s.extractor.Extract(ctx, book.Text)
	if err != nil {
		return model.LevelAssignment{}, err
	}

	band := s.classifier.Band(m.AvgSentenceLength)
	letter := s.refiner.Refine(band, m)

	descriptor, err := s.rubric.Descriptor(ctx, letter)
	if err != nil {
		return model.LevelAssignment{}, err
	}

	return model.LevelAssignment{
		Level:         letter,
		Band:          band,
		Justification: justify.Build(descriptor, band, m),
		Evidence:      m,
	}, nil
}

// EvaluateBatch levels every book, preserving input order. One outcome is
// returned per book; failures never abort the batch.
func (s *Service) EvaluateBatch(ctx context.Context, books []model.Book) []batch.Result {
	return s.pool.Run(ctx, books, s.Evaluate)
}

// Results returns all stored outcomes in first-evaluation order.
func (s *Service) Results(ctx context.Context) []repository.Record {
	return s.results.List(ctx)
}

// Result returns the stored outcome for one book id.
func (s *Service) Result(ctx context.Context, bookID string) (repository.Record, error) {
	return s.results.Get(ctx, bookID)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":     s.started,
		"workerCount": s.workerCount,
	}
	if s.started {
		stats["resultsStored"] = s.results.Count(ctx)
		dist := s.results.Distribution(ctx)
		levels := make(map[string]int, len(dist))
		for l, n := range dist {
			levels[string(l)] = n
		}
		stats["levelDistribution"] = levels
	}
	return stats
}

// errorKind maps a per-book error to its metrics label.
func errorKind(err error) string {
	switch {
	case errors.Is(err, textmetrics.ErrEmptyInput):
		return "empty_input"
	case errors.Is(err, rubric.ErrLevelNotFound):
		return "rubric_lookup"
	default:
		return "other"
	}
}
