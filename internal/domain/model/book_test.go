package model_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/okian/shelfrank/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMaybe(t *testing.T) {
	Convey("Given the nullable numeric column", t, func() {
		Convey("When constructed from a finite value", func() {
			m := model.Some(4.5)
			So(m.Valid, ShouldBeTrue)
			So(m.Value, ShouldEqual, 4.5)
			So(m.Or(0), ShouldEqual, 4.5)
		})

		Convey("When constructed from NaN or infinity", func() {
			So(model.Some(math.NaN()).Valid, ShouldBeFalse)
			So(model.Some(math.Inf(1)).Valid, ShouldBeFalse)
			So(model.Some(math.Inf(-1)).Valid, ShouldBeFalse)
		})

		Convey("When absent", func() {
			m := model.None()
			So(m.Valid, ShouldBeFalse)
			So(m.Or(3.3), ShouldEqual, 3.3)
		})

		Convey("When marshaled to JSON", func() {
			b, err := json.Marshal(model.Some(2.5))
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, "2.5")

			b, err = json.Marshal(model.None())
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, "null")
		})

		Convey("When unmarshaled from JSON null", func() {
			var m model.Maybe
			So(json.Unmarshal([]byte("null"), &m), ShouldBeNil)
			So(m.Valid, ShouldBeFalse)

			So(json.Unmarshal([]byte("4.2"), &m), ShouldBeNil)
			So(m.Valid, ShouldBeTrue)
			So(m.Value, ShouldEqual, 4.2)
		})
	})
}

func TestBookRated(t *testing.T) {
	Convey("Given catalog entries", t, func() {
		rated := model.Book{AvgRating: model.Some(4.0)}
		unrated := model.Book{}

		So(rated.Rated(), ShouldBeTrue)
		So(unrated.Rated(), ShouldBeFalse)
	})
}
