package level_test

import (
	"testing"

	"github.com/acervo/nivela/internal/domain/level"
	. "github.com/smartystreets/goconvey/convey"
)

func TestScale(t *testing.T) {
	Convey("Given the A-Z scale", t, func() {
		Convey("Then All returns 26 ordered levels", func() {
			all := level.All()
			So(all, ShouldHaveLength, 26)
			So(all[0], ShouldEqual, level.Level("A"))
			So(all[25], ShouldEqual, level.Level("Z"))
			for i := 1; i < len(all); i++ {
				So(all[i-1].Before(all[i]), ShouldBeTrue)
			}
		})

		Convey("Then the bands partition the scale with no gaps or overlaps", func() {
			seen := make(map[level.Level]int)
			for _, b := range level.Bands() {
				for _, l := range b.Letters() {
					seen[l]++
				}
			}
			So(seen, ShouldHaveLength, 26)
			for _, n := range seen {
				So(n, ShouldEqual, 1)
			}
		})

		Convey("Then BandOf agrees with Contains", func() {
			b, ok := level.BandOf("K")
			So(ok, ShouldBeTrue)
			So(b, ShouldEqual, level.BandJM)
			So(b.Contains("K"), ShouldBeTrue)
			So(b.Contains("N"), ShouldBeFalse)

			_, ok = level.BandOf("k")
			So(ok, ShouldBeFalse)
		})

		Convey("Then band labels use letter ranges", func() {
			So(level.BandAD.String(), ShouldEqual, "A-D")
			So(level.BandTZ.String(), ShouldEqual, "T-Z")
			So(level.BandEI.First(), ShouldEqual, level.Level("E"))
			So(level.BandEI.Last(), ShouldEqual, level.Level("I"))
		})
	})
}

func TestClassifier(t *testing.T) {
	Convey("Given a classifier with default cuts", t, func() {
		c, err := level.NewClassifier()
		So(err, ShouldBeNil)

		Convey("Then short averages land in A-D", func() {
			So(c.Band(1), ShouldEqual, level.BandAD)
			So(c.Band(4.33), ShouldEqual, level.BandAD)
			So(c.Band(6), ShouldEqual, level.BandAD)
		})

		Convey("Then each default cut opens the next band", func() {
			So(c.Band(6.1), ShouldEqual, level.BandEI)
			So(c.Band(10), ShouldEqual, level.BandEI)
			So(c.Band(12), ShouldEqual, level.BandJM)
			So(c.Band(14), ShouldEqual, level.BandJM)
			So(c.Band(19), ShouldEqual, level.BandNS)
			So(c.Band(19.01), ShouldEqual, level.BandTZ)
			So(c.Band(40), ShouldEqual, level.BandTZ)
		})

		Convey("Then the mapping is monotonic in average sentence length", func() {
			prev := c.Band(0)
			for avg := 0.0; avg <= 30; avg += 0.25 {
				b := c.Band(avg)
				So(b, ShouldBeGreaterThanOrEqualTo, prev)
				prev = b
			}
		})
	})

	Convey("Given custom cuts", t, func() {
		Convey("When they are strictly increasing", func() {
			c, err := level.NewClassifier(level.WithCuts([]float64{5, 9, 13, 18}))
			So(err, ShouldBeNil)
			So(c.Band(5.5), ShouldEqual, level.BandEI)
		})

		Convey("When they are non-monotonic", func() {
			_, err := level.NewClassifier(level.WithCuts([]float64{6, 6, 14, 19}))
			So(err, ShouldWrap, level.ErrInvalidThresholds)
		})

		Convey("When a cut is non-positive", func() {
			_, err := level.NewClassifier(level.WithCuts([]float64{0, 10, 14, 19}))
			So(err, ShouldWrap, level.ErrInvalidThresholds)
		})

		Convey("When the wrong number of cuts is supplied", func() {
			_, err := level.NewClassifier(level.WithCuts([]float64{6, 10, 14}))
			So(err, ShouldWrap, level.ErrInvalidThresholds)
		})
	})
}
