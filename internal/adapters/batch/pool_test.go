package batch_test

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/acervo/nivela/internal/adapters/batch"
	"github.com/acervo/nivela/internal/domain/model"
	"github.com/acervo/nivela/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

var errBroken = errors.New("broken book")

func TestPool(t *testing.T) {
	if err := logger.Init(); err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	Convey("Given a pool with a few workers", t, func() {
		pool := batch.NewPool(batch.WithWorkers(4))

		eval := func(_ context.Context, b model.Book) (model.LevelAssignment, error) {
			if b.Text == "" {
				return model.LevelAssignment{}, errBroken
			}
			return model.LevelAssignment{Level: "A", Justification: "book " + b.ID}, nil
		}

		Convey("When running a batch with one broken book", func() {
			books := []model.Book{
				{ID: "1", Text: "ok"},
				{ID: "2", Text: ""},
				{ID: "3", Text: "ok"},
			}
			results := pool.Run(ctx, books, eval)

			Convey("Then every book gets exactly one outcome in order", func() {
				So(results, ShouldHaveLength, 3)
				So(results[0].Book.ID, ShouldEqual, "1")
				So(results[1].Book.ID, ShouldEqual, "2")
				So(results[2].Book.ID, ShouldEqual, "3")
			})

			Convey("Then the broken book does not block the rest", func() {
				So(results[0].Err, ShouldBeNil)
				So(results[1].Err, ShouldWrap, errBroken)
				So(results[2].Err, ShouldBeNil)
				So(results[2].Assignment.Justification, ShouldEqual, "book 3")
			})
		})

		Convey("When running a large batch", func() {
			var books []model.Book
			for i := 0; i < 200; i++ {
				books = append(books, model.Book{ID: strconv.Itoa(i), Text: "ok"})
			}
			var calls atomic.Int64
			counted := func(ctx context.Context, b model.Book) (model.LevelAssignment, error) {
				calls.Add(1)
				return eval(ctx, b)
			}
			results := pool.Run(ctx, books, counted)

			Convey("Then order matches the input and every book was evaluated once", func() {
				So(calls.Load(), ShouldEqual, 200)
				for i, r := range results {
					So(r.Book.ID, ShouldEqual, strconv.Itoa(i))
					So(r.Err, ShouldBeNil)
				}
			})
		})

		Convey("When the batch is empty", func() {
			So(pool.Run(ctx, nil, eval), ShouldHaveLength, 0)
		})

		Convey("When the context is already canceled", func() {
			canceled, cancel := context.WithCancel(ctx)
			cancel()
			results := pool.Run(canceled, []model.Book{{ID: "1", Text: "ok"}}, eval)

			Convey("Then the book is marked with the context error", func() {
				So(results, ShouldHaveLength, 1)
				So(results[0].Err, ShouldWrap, context.Canceled)
			})
		})
	})
}
