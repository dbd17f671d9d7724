package dedupe

import (
	"strconv"
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSeenAndRecord(t *testing.T) {
	Convey("Given an unbounded deduper", t, func() {
		d := New()

		Convey("When recording a fresh id", func() {
			So(d.SeenAndRecord("isbn-1"), ShouldBeFalse)
			So(d.Size(), ShouldEqual, 1)

			Convey("Then a repeat is reported as seen", func() {
				So(d.SeenAndRecord("isbn-1"), ShouldBeTrue)
				So(d.Size(), ShouldEqual, 1)
			})
		})

		Convey("When recording concurrently", func() {
			var wg sync.WaitGroup
			for i := 0; i < 100; i++ {
				wg.Add(1)
				go func(n int) {
					defer wg.Done()
					d.SeenAndRecord(strconv.Itoa(n % 10))
				}(i)
			}
			wg.Wait()
			So(d.Size(), ShouldEqual, 10)
		})
	})
}

func TestBoundedMode(t *testing.T) {
	Convey("Given a deduper bounded to two ids", t, func() {
		d := New(WithMaxSize(2))

		So(d.SeenAndRecord("a"), ShouldBeFalse)
		So(d.SeenAndRecord("b"), ShouldBeFalse)

		Convey("Then ids beyond the bound pass through untracked", func() {
			So(d.SeenAndRecord("c"), ShouldBeFalse)
			So(d.SeenAndRecord("c"), ShouldBeFalse)
			So(d.Size(), ShouldEqual, 2)
		})

		Convey("And tracked ids are still deduplicated", func() {
			So(d.SeenAndRecord("a"), ShouldBeTrue)
		})
	})
}
