package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/acervo/nivela/internal/domain/level"
	"github.com/acervo/nivela/internal/domain/model"
	"github.com/acervo/nivela/internal/domain/rubric"
	"github.com/acervo/nivela/internal/domain/textmetrics"
	"github.com/acervo/nivela/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "logger init:", err)
		os.Exit(1)
	}
	os.Exit(m.Run())
}

// newFullStore builds a rubric store covering every letter.
func newFullStore(t *testing.T) *rubric.Store {
	t.Helper()
	descriptors := make([]rubric.Descriptor, 0, 26)
	for _, l := range level.All() {
		descriptors = append(descriptors, rubric.Descriptor{
			Level:             l,
			SentenceStructure: "short patterned sentences for " + string(l),
			Vocabulary:        "familiar words for " + string(l),
			Imagery:           "concrete imagery for " + string(l),
		})
	}
	store, err := rubric.NewStore(descriptors)
	if err != nil {
		t.Fatalf("build rubric store: %v", err)
	}
	return store
}

// fullRubric starts a service backed by the complete rubric.
func fullRubric(t *testing.T) *Service {
	t.Helper()
	store := newFullStore(t)
	svc := New(WithRubric(store))
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("start service: %v", err)
	}
	return svc
}

func TestServiceStart(t *testing.T) {
	Convey("Given a service without a rubric", t, func() {
		svc := New()

		Convey("Start should fail", func() {
			So(svc.Start(context.Background()), ShouldWrap, ErrNoRubric)
		})
	})

	Convey("Given a service with invalid band cuts", t, func() {
		svc := New(
			WithRubric(newFullStore(t)),
			WithBandCuts([]float64{10, 6, 14, 19}),
		)

		Convey("Start should fail before any book is processed", func() {
			So(svc.Start(context.Background()), ShouldWrap, level.ErrInvalidThresholds)
		})
	})

	Convey("Given a fully configured service", t, func() {
		svc := New(WithRubric(newFullStore(t)), WithWorkerCount(2))

		Convey("Start should succeed and be idempotent", func() {
			So(svc.Start(context.Background()), ShouldBeNil)
			So(svc.Start(context.Background()), ShouldBeNil)
			svc.Stop()
		})
	})
}

func TestServiceEvaluate(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := fullRubric(t)
		ctx := context.Background()

		Convey("When evaluating a simple book", func() {
			book := model.Book{
				ID:       "bk-1",
				Filename: "9781234567897.txt",
				Text:     "The cat sat. The cat ran. The dog sat on the mat quickly.",
			}
			assignment, err := svc.Evaluate(ctx, book)

			Convey("It should land in the easiest band", func() {
				So(err, ShouldBeNil)
				So(assignment.Band, ShouldEqual, level.BandAD)
				So(assignment.Band.Contains(assignment.Level), ShouldBeTrue)
			})

			Convey("The justification should cite the rubric and evidence", func() {
				So(assignment.Justification, ShouldContainSubstring, "Assigned level "+string(assignment.Level))
				So(assignment.Justification, ShouldContainSubstring, "Rubric for level "+string(assignment.Level))
				So(assignment.Justification, ShouldContainSubstring, "avg_sentence_length=4.3")
			})

			Convey("The result should be stored and retrievable", func() {
				rec, err := svc.Result(ctx, "bk-1")
				So(err, ShouldBeNil)
				So(rec.Failed(), ShouldBeFalse)
				So(rec.Assignment.Level, ShouldEqual, assignment.Level)
			})
		})

		Convey("When evaluating an empty book", func() {
			book := model.Book{ID: "bk-empty", Text: "   \n\t  "}
			_, err := svc.Evaluate(ctx, book)

			Convey("It should return the empty input error", func() {
				So(err, ShouldWrap, textmetrics.ErrEmptyInput)
			})

			Convey("The failure should still be recorded", func() {
				rec, getErr := svc.Result(ctx, "bk-empty")
				So(getErr, ShouldBeNil)
				So(rec.Failed(), ShouldBeTrue)
				So(rec.Assignment, ShouldBeNil)
			})
		})

		Convey("When evaluating the same bytes twice", func() {
			book := model.Book{ID: "bk-det", Text: longerSample()}
			first, err1 := svc.Evaluate(ctx, book)
			second, err2 := svc.Evaluate(ctx, book)

			Convey("The outcome should be identical", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(second.Level, ShouldEqual, first.Level)
				So(second.Justification, ShouldEqual, first.Justification)
				So(second.Evidence, ShouldResemble, first.Evidence)
			})
		})
	})
}

func TestServiceEvaluateBatch(t *testing.T) {
	Convey("Given a started service and a batch with one empty book", t, func() {
		svc := fullRubric(t)
		ctx := context.Background()

		books := []model.Book{
			{ID: "b1", Text: "The sun is up. Birds sing. We play."},
			{ID: "b2", Text: ""},
			{ID: "b3", Text: longerSample()},
		}

		results := svc.EvaluateBatch(ctx, books)

		Convey("One outcome per book, in input order", func() {
			So(len(results), ShouldEqual, 3)
			So(results[0].Book.ID, ShouldEqual, "b1")
			So(results[1].Book.ID, ShouldEqual, "b2")
			So(results[2].Book.ID, ShouldEqual, "b3")
		})

		Convey("The empty book fails without aborting the batch", func() {
			So(results[0].Err, ShouldBeNil)
			So(errors.Is(results[1].Err, textmetrics.ErrEmptyInput), ShouldBeTrue)
			So(results[2].Err, ShouldBeNil)
		})

		Convey("All three outcomes are stored", func() {
			So(len(svc.Results(ctx)), ShouldEqual, 3)
		})
	})
}

func TestServiceStats(t *testing.T) {
	Convey("Given a started service with one evaluated book", t, func() {
		svc := fullRubric(t)
		ctx := context.Background()

		_, err := svc.Evaluate(ctx, model.Book{ID: "b1", Text: longerSample()})
		So(err, ShouldBeNil)

		Convey("GetStats should report storage and distribution", func() {
			stats := svc.GetStats()
			So(stats["started"], ShouldBeTrue)
			So(stats["resultsStored"], ShouldEqual, 1)

			dist, ok := stats["levelDistribution"].(map[string]int)
			So(ok, ShouldBeTrue)

			total := 0
			for _, n := range dist {
				total += n
			}
			So(total, ShouldEqual, 1)
		})
	})
}

func longerSample() string {
	return "Maria walked slowly through the quiet forest, listening carefully. " +
		"Although the path was narrow, she continued without hesitation because " +
		"her grandmother expected visitors before sunset. The ancient trees " +
		"whispered overhead, and golden light filtered between their branches. " +
		"However, something unusual caught her attention near the stream."
}
