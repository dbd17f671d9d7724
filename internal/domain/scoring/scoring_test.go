package scoring_test

import (
	"context"
	"testing"

	"github.com/okian/shelfrank/internal/domain/model"
	"github.com/okian/shelfrank/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestWeightedScore(t *testing.T) {
	Convey("Given the weighted score formula", t, func() {
		Convey("When the rating is absent", func() {
			So(scoring.WeightedScore(model.None(), 500, 100, 4.0).Valid, ShouldBeFalse)
		})

		Convey("When m is zero", func() {
			Convey("Then the raw rating is returned for any vote count", func() {
				for _, votes := range []int{0, 1, 50, 100000} {
					got := scoring.WeightedScore(model.Some(3.7), votes, 0, 4.0)
					So(got.Valid, ShouldBeTrue)
					So(got.Value, ShouldEqual, 3.7)
				}
			})

			Convey("And a zero vote count never produces NaN", func() {
				got := scoring.WeightedScore(model.Some(4.2), 0, 0, 4.0)
				So(got.Valid, ShouldBeTrue)
				So(got.Value, ShouldEqual, 4.2)
			})
		})

		Convey("When m is positive and the vote count is zero", func() {
			Convey("Then the general formula reduces exactly to C", func() {
				got := scoring.WeightedScore(model.Some(5.0), 0, 100, 4.0)
				So(got.Valid, ShouldBeTrue)
				So(got.Value, ShouldEqual, 4.0)
			})
		})

		Convey("When scoring the reference corpus with m=100 and C=4.0", func() {
			itemA := scoring.WeightedScore(model.Some(4.5), 1000, 100, 4.0)
			itemB := scoring.WeightedScore(model.Some(5.0), 1, 100, 4.0)
			itemC := scoring.WeightedScore(model.None(), 0, 100, 4.0)

			Convey("Then the worked values match", func() {
				So(itemA.Valid, ShouldBeTrue)
				So(itemA.Value, ShouldAlmostEqual, (1000.0/1100.0)*4.5+(100.0/1100.0)*4.0, 1e-12)
				So(itemB.Valid, ShouldBeTrue)
				So(itemB.Value, ShouldAlmostEqual, (1.0/101.0)*5.0+(100.0/101.0)*4.0, 1e-12)
				So(itemC.Valid, ShouldBeFalse)
			})

			Convey("And the high-evidence item outranks the low-evidence one", func() {
				So(itemA.Value, ShouldBeGreaterThan, itemB.Value)
			})
		})
	})
}

func TestPowerScore(t *testing.T) {
	Convey("Given the power score formula", t, func() {
		Convey("When the rating is absent", func() {
			So(scoring.PowerScore(model.None(), 1000, 1.0), ShouldEqual, 0)
		})

		Convey("When p is zero", func() {
			So(scoring.PowerScore(model.Some(4.4), 0, 0), ShouldEqual, 4.4)
			So(scoring.PowerScore(model.Some(4.4), 123456, 0), ShouldEqual, 4.4)
		})

		Convey("When the vote count is zero and p is positive", func() {
			So(scoring.PowerScore(model.Some(5.0), 0, 0.5), ShouldEqual, 0)
			So(scoring.PowerScore(model.Some(5.0), 0, 2.0), ShouldEqual, 0)
		})

		Convey("When p is one", func() {
			Convey("Then the score is the total rating mass", func() {
				So(scoring.PowerScore(model.Some(4.5), 1000, 1.0), ShouldEqual, 4500.0)
				So(scoring.PowerScore(model.Some(5.0), 1, 1.0), ShouldEqual, 5.0)
			})
		})

		Convey("When p is fractional", func() {
			Convey("Then real-valued exponentiation is used", func() {
				So(scoring.PowerScore(model.Some(4.0), 100, 0.5), ShouldAlmostEqual, 40.0, 1e-9)
			})
		})
	})
}

func TestCorpusMean(t *testing.T) {
	Convey("Given a corpus", t, func() {
		Convey("When some items are unrated", func() {
			items := []model.Book{
				{AvgRating: model.Some(4.0)},
				{AvgRating: model.Some(5.0)},
				{}, // unrated; must not contribute
			}
			So(scoring.CorpusMean(items), ShouldAlmostEqual, 4.5, 1e-12)
		})

		Convey("When no item is rated", func() {
			items := []model.Book{{}, {}}
			So(scoring.CorpusMean(items), ShouldEqual, 0)
		})

		Convey("When the corpus is empty", func() {
			So(scoring.CorpusMean(nil), ShouldEqual, 0)
		})
	})
}

func TestEngineApply(t *testing.T) {
	Convey("Given an engine with m=100 and p=1", t, func() {
		eng := scoring.New(
			scoring.WithAnchorVotes(100),
			scoring.WithPowerExponent(1.0),
		)

		items := []model.Book{
			{ID: "a", AvgRating: model.Some(4.5), RatingCount: 1000},
			{ID: "b", AvgRating: model.Some(5.0), RatingCount: 1},
			{ID: "c"},
		}
		c := 4.0

		Convey("When applying a scoring pass", func() {
			err := eng.Apply(context.Background(), items, c)
			So(err, ShouldBeNil)

			Convey("Then every item carries both derived scores", func() {
				So(items[0].WeightedScore.Value, ShouldAlmostEqual, 4.4545, 1e-4)
				So(items[0].PowerScore, ShouldEqual, 4500.0)
				So(items[1].WeightedScore.Value, ShouldAlmostEqual, 4.0099, 1e-4)
				So(items[1].PowerScore, ShouldEqual, 5.0)
				So(items[2].WeightedScore.Valid, ShouldBeFalse)
				So(items[2].PowerScore, ShouldEqual, 0)
			})

			Convey("And the source fields are untouched", func() {
				So(items[0].AvgRating.Value, ShouldEqual, 4.5)
				So(items[0].RatingCount, ShouldEqual, 1000)
			})
		})

		Convey("When applying to an empty snapshot", func() {
			So(eng.Apply(context.Background(), nil, c), ShouldBeNil)
		})

		Convey("When the context is already canceled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			big := make([]model.Book, 10_000)
			err := eng.Apply(ctx, big, c)
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given default engine parameters", t, func() {
		eng := scoring.New()
		So(eng.AnchorVotes(), ShouldEqual, 100.0)
		So(eng.PowerExponent(), ShouldEqual, 1.0)
	})

	Convey("Given invalid option values", t, func() {
		eng := scoring.New(
			scoring.WithAnchorVotes(-5),
			scoring.WithPowerExponent(-1),
			scoring.WithParallelism(0),
		)
		So(eng.AnchorVotes(), ShouldEqual, 100.0)
		So(eng.PowerExponent(), ShouldEqual, 1.0)
	})
}
