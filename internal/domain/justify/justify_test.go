package justify_test

import (
	"strings"
	"testing"

	"github.com/acervo/nivela/internal/domain/justify"
	"github.com/acervo/nivela/internal/domain/level"
	"github.com/acervo/nivela/internal/domain/model"
	"github.com/acervo/nivela/internal/domain/rubric"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBuild(t *testing.T) {
	Convey("Given a descriptor and metrics", t, func() {
		d := rubric.Descriptor{
			Level:             "G",
			SentenceStructure: "short patterned sentences",
			Vocabulary:        "familiar high-frequency words",
			Imagery:           "pictures carry most meaning",
		}
		m := model.TextMetrics{
			AvgSentenceLength: 8.2,
			TypeTokenRatio:    0.41,
			LongWordRatio:     0.05,
			CommasPerSentence: 0.1,
			ConnectiveDensity: 0.12,
			Sentences:         40,
			Words:             328,
		}

		out := justify.Build(d, level.BandEI, m)

		Convey("Then it states the level and band", func() {
			So(out, ShouldContainSubstring, "level G")
			So(out, ShouldContainSubstring, "band E-I")
		})

		Convey("Then it quotes all three rubric fields", func() {
			So(out, ShouldContainSubstring, d.SentenceStructure)
			So(out, ShouldContainSubstring, d.Vocabulary)
			So(out, ShouldContainSubstring, d.Imagery)
		})

		Convey("Then evidence lists the metrics in stable order", func() {
			So(out, ShouldContainSubstring, "Evidence: ")
			i1 := strings.Index(out, "avg_sentence_length=")
			i2 := strings.Index(out, "type_token_ratio=")
			i3 := strings.Index(out, "long_word_ratio=")
			i4 := strings.Index(out, "commas_per_sentence=")
			i5 := strings.Index(out, "connective_density=")
			So(i1, ShouldBeGreaterThan, -1)
			So(i2, ShouldBeGreaterThan, i1)
			So(i3, ShouldBeGreaterThan, i2)
			So(i4, ShouldBeGreaterThan, i3)
			So(i5, ShouldBeGreaterThan, i4)
		})

		Convey("Then identical inputs produce identical output", func() {
			So(justify.Build(d, level.BandEI, m), ShouldEqual, out)
		})

		Convey("Then sentence complexity wording follows the average", func() {
			simple := m
			simple.AvgSentenceLength = 4
			So(justify.Build(d, level.BandEI, simple), ShouldContainSubstring, "low sentence complexity")

			dense := m
			dense.AvgSentenceLength = 18
			So(justify.Build(d, level.BandEI, dense), ShouldContainSubstring, "high sentence complexity")
		})
	})
}
