package isbn_test

import (
	"testing"

	"github.com/acervo/nivela/internal/isbn"
	. "github.com/smartystreets/goconvey/convey"
)

func TestISBN(t *testing.T) {
	Convey("Given ISBN-named files", t, func() {
		Convey("Then 13-digit names are recognized", func() {
			So(isbn.IsISBNName("9788535914849.pdf"), ShouldBeTrue)
			So(isbn.IsISBNName("978-85-359-1484-9.epub"), ShouldBeTrue)
		})

		Convey("Then 10-digit names are recognized, X check digit included", func() {
			So(isbn.IsISBNName("8535914840.pdf"), ShouldBeTrue)
			So(isbn.IsISBNName("853591484X.epub"), ShouldBeTrue)
			So(isbn.IsISBNName("853591484x.txt"), ShouldBeTrue)
		})

		Convey("Then other names are rejected", func() {
			So(isbn.IsISBNName("the-cat-book.pdf"), ShouldBeFalse)
			So(isbn.IsISBNName("12345.pdf"), ShouldBeFalse)
			So(isbn.IsISBNName("97885359148491.pdf"), ShouldBeFalse)
			So(isbn.IsISBNName("85359148X0.pdf"), ShouldBeFalse)
		})
	})

	Convey("Given FromFilename", t, func() {
		Convey("Then separators are stripped from ISBN names", func() {
			So(isbn.FromFilename("978-85-359-1484-9.pdf"), ShouldEqual, "9788535914849")
		})

		Convey("Then digit-free names fall back to the base name", func() {
			So(isbn.FromFilename("fairy-tales.txt"), ShouldEqual, "fairy-tales")
		})

		Convey("Then partial digits are still returned", func() {
			So(isbn.FromFilename("book-42.txt"), ShouldEqual, "42")
		})
	})
}
