package rubricio_test

import (
	"context"
	"strings"
	"testing"

	"github.com/acervo/nivela/internal/adapters/rubricio"
	"github.com/acervo/nivela/internal/domain/level"
	"github.com/acervo/nivela/internal/domain/rubric"
	. "github.com/smartystreets/goconvey/convey"
)

func fullRubricYAML() string {
	var sb strings.Builder
	sb.WriteString("levels:\n")
	for _, l := range level.All() {
		sb.WriteString("  - level: " + string(l) + "\n")
		sb.WriteString("    sentence_structure: structure " + string(l) + "\n")
		sb.WriteString("    vocabulary: vocabulary " + string(l) + "\n")
		sb.WriteString("    imagery: imagery " + string(l) + "\n")
	}
	return sb.String()
}

func TestLoad(t *testing.T) {
	Convey("Given a complete YAML rubric", t, func() {
		store, err := rubricio.Load(strings.NewReader(fullRubricYAML()))
		So(err, ShouldBeNil)
		So(store.Len(), ShouldEqual, 26)

		Convey("Then descriptors round-trip with trimmed fields", func() {
			d, err := store.Descriptor(context.Background(), "C")
			So(err, ShouldBeNil)
			So(d.SentenceStructure, ShouldEqual, "structure C")
			So(d.Vocabulary, ShouldEqual, "vocabulary C")
			So(d.Imagery, ShouldEqual, "imagery C")
		})
	})

	Convey("Given lowercase level letters", t, func() {
		doc := strings.ReplaceAll(fullRubricYAML(), "- level: A", "- level: a")
		store, err := rubricio.Load(strings.NewReader(doc))
		So(err, ShouldBeNil)

		d, err := store.Descriptor(context.Background(), "A")
		So(err, ShouldBeNil)
		So(d.Level, ShouldEqual, level.Level("A"))
	})

	Convey("Given malformed rubric documents", t, func() {
		Convey("When the YAML does not parse", func() {
			_, err := rubricio.Load(strings.NewReader("levels: ["))
			So(err, ShouldWrap, rubricio.ErrParseRubric)
		})

		Convey("When the document has no levels", func() {
			_, err := rubricio.Load(strings.NewReader("levels: []\n"))
			So(err, ShouldWrap, rubricio.ErrParseRubric)
		})

		Convey("When a level is missing", func() {
			full := fullRubricYAML()
			doc := full[:strings.Index(full, "  - level: Z")]
			_, err := rubricio.Load(strings.NewReader(doc))
			So(err, ShouldWrap, rubric.ErrIncompleteRubric)
		})
	})
}

func TestLoadFile(t *testing.T) {
	Convey("Given a missing rubric file", t, func() {
		_, err := rubricio.LoadFile("does-not-exist.yaml")
		So(err, ShouldWrap, rubricio.ErrReadRubric)
	})
}
