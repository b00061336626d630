package rubric_test

import (
	"context"
	"testing"

	"github.com/acervo/nivela/internal/domain/level"
	"github.com/acervo/nivela/internal/domain/rubric"
	. "github.com/smartystreets/goconvey/convey"
)

func fullDescriptors() []rubric.Descriptor {
	var out []rubric.Descriptor
	for _, l := range level.All() {
		out = append(out, rubric.Descriptor{
			Level:             l,
			SentenceStructure: "structure for " + string(l),
			Vocabulary:        "vocabulary for " + string(l),
			Imagery:           "imagery for " + string(l),
		})
	}
	return out
}

func TestStore(t *testing.T) {
	ctx := context.Background()

	Convey("Given a complete A-Z rubric", t, func() {
		store, err := rubric.NewStore(fullDescriptors())
		So(err, ShouldBeNil)
		So(store.Len(), ShouldEqual, 26)

		Convey("Then lookups succeed for every letter", func() {
			for _, l := range level.All() {
				d, err := store.Descriptor(ctx, l)
				So(err, ShouldBeNil)
				So(d.Level, ShouldEqual, l)
			}
		})

		Convey("Then repeated lookups return equal descriptors", func() {
			a, err := store.Descriptor(ctx, "M")
			So(err, ShouldBeNil)
			b, err := store.Descriptor(ctx, "M")
			So(err, ShouldBeNil)
			So(a, ShouldResemble, b)
		})

		Convey("Then letters outside the scale fail", func() {
			_, err := store.Descriptor(ctx, "AA")
			So(err, ShouldWrap, rubric.ErrLevelNotFound)
		})
	})

	Convey("Given malformed rubric data", t, func() {
		Convey("When a level is missing", func() {
			descs := fullDescriptors()[1:] // drop A
			_, err := rubric.NewStore(descs)
			So(err, ShouldWrap, rubric.ErrIncompleteRubric)
		})

		Convey("When a level repeats", func() {
			descs := append(fullDescriptors(), rubric.Descriptor{Level: "B"})
			_, err := rubric.NewStore(descs)
			So(err, ShouldWrap, rubric.ErrDuplicateLevel)
		})

		Convey("When a level letter is invalid", func() {
			descs := fullDescriptors()
			descs[0].Level = "a"
			_, err := rubric.NewStore(descs)
			So(err, ShouldWrap, rubric.ErrIncompleteRubric)
		})

		Convey("When the rubric is empty", func() {
			_, err := rubric.NewStore(nil)
			So(err, ShouldWrap, rubric.ErrIncompleteRubric)
		})
	})
}
