package filter_test

import (
	"testing"

	"github.com/okian/shelfrank/internal/domain/filter"
	"github.com/okian/shelfrank/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func sample() []model.Book {
	return []model.Book{
		{
			ID: "a", Title: "The Long Voyage", Authors: "Jane Doe",
			Publisher: "Harbor Press", Language: "eng", Format: "Hardcover",
			Genres:    []string{"Fiction", "Adventure"},
			AvgRating: model.Some(4.5), RatingCount: 1000,
			Pages: model.Some(320), Price: model.Some(12.99),
		},
		{
			ID: "b", Title: "Quiet Harbors", Authors: "John Roe", Series: "Voyages",
			Publisher: "Inkwell", Language: "spa", Format: "Paperback",
			Genres:    []string{"Romance"},
			AvgRating: model.Some(5.0), RatingCount: 1,
			Pages: model.Some(180), Price: model.Some(8.50),
		},
		{
			ID: "c", Title: "Unrated Draft", Authors: "Anonymous",
			Language: "eng", Genres: nil,
			// no rating, no pages, no price
		},
	}
}

func apply(p filter.Predicate, items []model.Book) []string {
	var ids []string
	for i := range items {
		if p(&items[i]) {
			ids = append(ids, items[i].ID)
		}
	}
	return ids
}

func TestThresholdPredicates(t *testing.T) {
	Convey("Given the sample corpus", t, func() {
		items := sample()

		Convey("When filtering by min rating and min votes", func() {
			p := filter.And(filter.MinRating(4.0), filter.MinVotes(50))

			Convey("Then only the well-rated, well-voted item survives", func() {
				So(apply(p, items), ShouldResemble, []string{"a"})
			})
		})

		Convey("When thresholds are zero", func() {
			p := filter.And(filter.MinRating(0), filter.MinVotes(0))
			So(apply(p, items), ShouldResemble, []string{"a", "b", "c"})
		})

		Convey("When filtering by min rating alone", func() {
			Convey("Then unrated items count as zero and are excluded", func() {
				So(apply(filter.MinRating(0.1), items), ShouldResemble, []string{"a", "b"})
			})
		})
	})
}

func TestRangePredicates(t *testing.T) {
	Convey("Given the sample corpus", t, func() {
		items := sample()

		Convey("When constraining the page range", func() {
			p := filter.PagesBetween(model.Some(200), model.Some(400))
			So(apply(p, items), ShouldResemble, []string{"a"})
		})

		Convey("When a bound is open", func() {
			p := filter.PagesBetween(model.None(), model.Some(200))
			So(apply(p, items), ShouldResemble, []string{"b"})
		})

		Convey("When both bounds are open", func() {
			p := filter.PagesBetween(model.None(), model.None())
			So(apply(p, items), ShouldResemble, []string{"a", "b", "c"})
		})

		Convey("When constraining price", func() {
			p := filter.PriceBetween(model.Some(10), model.None())
			So(apply(p, items), ShouldResemble, []string{"a"})
		})
	})
}

func TestSetPredicates(t *testing.T) {
	Convey("Given the sample corpus", t, func() {
		items := sample()

		Convey("When no languages are selected", func() {
			Convey("Then everything matches (empty selection means no constraint)", func() {
				So(apply(filter.Languages(nil), items), ShouldResemble, []string{"a", "b", "c"})
			})
		})

		Convey("When a language is selected", func() {
			So(apply(filter.Languages([]string{"ENG"}), items), ShouldResemble, []string{"a", "c"})
		})

		Convey("When genres are selected", func() {
			Convey("Then any-of-selected semantics apply", func() {
				p := filter.GenresAny([]string{"adventure", "romance"})
				So(apply(p, items), ShouldResemble, []string{"a", "b"})
			})

			Convey("And items without genres never intersect", func() {
				p := filter.GenresAny([]string{"fiction"})
				So(apply(p, items), ShouldResemble, []string{"a"})
			})
		})

		Convey("When a format is selected", func() {
			So(apply(filter.Formats([]string{"paperback"}), items), ShouldResemble, []string{"b"})
		})
	})
}

func TestSearch(t *testing.T) {
	Convey("Given the sample corpus", t, func() {
		items := sample()

		Convey("When searching by title substring", func() {
			So(apply(filter.Search("voyage"), items), ShouldResemble, []string{"a", "b"})
		})

		Convey("When searching by publisher", func() {
			So(apply(filter.Search("inkwell"), items), ShouldResemble, []string{"b"})
		})

		Convey("When the query is blank", func() {
			So(apply(filter.Search("   "), items), ShouldResemble, []string{"a", "b", "c"})
		})

		Convey("When search is combined with other predicates", func() {
			p := filter.And(filter.Search("voyage"), filter.MinVotes(10))
			So(apply(p, items), ShouldResemble, []string{"a"})
		})
	})
}
