package parse_test

import (
	"testing"

	"github.com/okian/shelfrank/internal/domain/parse"
	. "github.com/smartystreets/goconvey/convey"
)

func TestStars(t *testing.T) {
	Convey("Given the star-rating parser", t, func() {
		Convey("When parsing a combined rating and vote string", func() {
			rating, votes, ok := parse.Stars("4.5 out of 5 stars41 ratings")
			So(ok, ShouldBeTrue)
			So(rating, ShouldEqual, 4.5)
			So(votes, ShouldEqual, 41)
		})

		Convey("When the vote count carries separators", func() {
			rating, votes, ok := parse.Stars("5 out of 5 stars1,234 ratings")
			So(ok, ShouldBeTrue)
			So(rating, ShouldEqual, 5.0)
			So(votes, ShouldEqual, 1234)
		})

		Convey("When the item is unrated", func() {
			_, _, ok := parse.Stars("Not rated yet")
			So(ok, ShouldBeFalse)
		})

		Convey("When the rating is present without votes", func() {
			rating, votes, ok := parse.Stars("4 out of 5 stars")
			So(ok, ShouldBeTrue)
			So(rating, ShouldEqual, 4.0)
			So(votes, ShouldEqual, 0)
		})

		Convey("When the input is garbage", func() {
			_, _, ok := parse.Stars("??")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestDuration(t *testing.T) {
	Convey("Given the duration parser", t, func() {
		cases := map[string]int{
			"6 hrs and 30 mins":  390,
			"2 hrs and 20 mins":  140,
			"1 hr":               60,
			"45 mins":            45,
			"13 hrs":             780,
			"Less than 1 minute": 1,
		}
		for in, want := range cases {
			got, ok := parse.Duration(in)
			So(ok, ShouldBeTrue)
			So(got, ShouldEqual, want)
		}

		Convey("When the input has no duration", func() {
			_, ok := parse.Duration("unknown")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestGenres(t *testing.T) {
	Convey("Given the genre list parser", t, func() {
		Convey("When parsing a list literal", func() {
			So(parse.Genres("['Fiction', 'Fantasy', 'Young Adult']"),
				ShouldResemble, []string{"Fiction", "Fantasy", "Young Adult"})
		})

		Convey("When the list uses double quotes", func() {
			So(parse.Genres(`["Horror"]`), ShouldResemble, []string{"Horror"})
		})

		Convey("When the list is empty", func() {
			So(parse.Genres("[]"), ShouldBeNil)
		})

		Convey("When the input is not a list", func() {
			So(parse.Genres("Fiction"), ShouldBeNil)
			So(parse.Genres(""), ShouldBeNil)
		})
	})
}

func TestPrice(t *testing.T) {
	Convey("Given the price parser", t, func() {
		Convey("When parsing numeric prices", func() {
			v, ok := parse.Price("1,256.00")
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 1256.0)

			v, ok = parse.Price("839.00")
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 839.0)
		})

		Convey("When the item is free", func() {
			v, ok := parse.Price("Free")
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 0.0)
		})

		Convey("When the price is unparseable", func() {
			_, ok := parse.Price("call us")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestAuthorNarrator(t *testing.T) {
	Convey("Given the credit parsers", t, func() {
		So(parse.Author("Writtenby:GeronimoStilton"), ShouldEqual, "GeronimoStilton")
		So(parse.Author("Jane Doe"), ShouldEqual, "Jane Doe")
		So(parse.Narrator("Narratedby:BillLobely"), ShouldEqual, "BillLobely")
		So(parse.Narrator("  John Roe "), ShouldEqual, "John Roe")
	})
}

func TestYear(t *testing.T) {
	Convey("Given the year parser", t, func() {
		cases := map[string]int{
			"2008-09-01": 2008,
			"09/01/08":   2008,
			"04-08-08":   2008,
			"1997":       1997,
			"first published in 1954": 1954,
		}
		for in, want := range cases {
			got, ok := parse.Year(in)
			So(ok, ShouldBeTrue)
			So(got, ShouldEqual, want)
		}

		Convey("When the input has no year", func() {
			_, ok := parse.Year("unknown")
			So(ok, ShouldBeFalse)
			_, ok = parse.Year("")
			So(ok, ShouldBeFalse)
		})
	})
}
