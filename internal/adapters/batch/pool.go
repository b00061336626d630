// Package batch fans a set of books across evaluation workers, collecting
// one outcome per book in input order.
package batch

import (
	"context"
	"runtime"
	"strconv"
	"sync"

	"github.com/acervo/nivela/internal/domain/model"
	"github.com/acervo/nivela/pkg/logger"
	"github.com/acervo/nivela/pkg/metrics"
)

// EvalFunc computes the outcome for a single book.
type EvalFunc func(ctx context.Context, book model.Book) (model.LevelAssignment, error)

// Result is one per-book outcome. Err carries the typed failure when the
// book could not be leveled; the rest of the batch is unaffected.
type Result struct {
	Book       model.Book
	Assignment model.LevelAssignment
	Err        error
}

// Pool runs batch evaluations across a fixed number of workers. Workers
// share nothing but the read-only evaluation function, so no coordination
// beyond the job feed is needed.
type Pool struct {
	workers int
	logger  logger.Logger
}

// Option applies a configuration option to the Pool.
type Option func(*Pool)

// WithWorkers sets the number of evaluation goroutines.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithLogger sets a custom logger for the pool.
func WithLogger(l logger.Logger) Option {
	return func(p *Pool) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewPool creates a pool with configuration options.
func NewPool(opts ...Option) *Pool {
	p := &Pool{
		workers: runtime.NumCPU(),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = logger.Get().Named("batch")
	}

	return p
}

// Run evaluates every book and returns one Result per input, in input
// order. A canceled context marks the not-yet-processed books with the
// context error instead of dropping them, so the one-outcome-per-book
// contract holds either way.
func (p *Pool) Run(ctx context.Context, books []model.Book, eval EvalFunc) []Result {
	results := make([]Result, len(books))
	if len(books) == 0 {
		return results
	}

	metrics.ObserveBatchSize(len(books))

	workers := p.workers
	if workers > len(books) {
		workers = len(books)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			log := p.logger.Named(name)
			for i := range jobs {
				book := books[i]
				if err := ctx.Err(); err != nil {
					results[i] = Result{Book: book, Err: err}
					continue
				}
				assignment, err := eval(ctx, book)
				if err != nil {
					log.Debug(ctx, "book failed to evaluate",
						logger.String("bookID", book.ID),
						logger.Error(err),
					)
					results[i] = Result{Book: book, Err: err}
					continue
				}
				results[i] = Result{Book: book, Assignment: assignment}
			}
		}("worker-" + strconv.Itoa(w))
	}

	for i := range books {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
