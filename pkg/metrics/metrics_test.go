package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerCreation(t *testing.T) {
	Convey("Given a fresh registry", t, func() {
		registry := prometheus.NewRegistry()

		Convey("When creating a manager with options", func() {
			m := NewManager(
				WithRegistry(registry),
				WithNamespace("test"),
				WithSubsystem("catalog"),
				WithHistogramBuckets([]float64{1, 10, 100}),
			)

			Convey("Then all metrics are registered", func() {
				So(m, ShouldNotBeNil)
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				So(len(families), ShouldBeGreaterThan, 0)
			})
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("Then the helper functions do not panic", func() {
			So(func() {
				RecordDatasetLoad(12.5)
				UpdateDatasetRowsLoaded(100)
				RecordDatasetRowSkipped()
				UpdateCorpusSize(100)
				UpdateCorpusMeanRating(4.1)
				RecordQuery(3.2, 42)
				RecordScoringPass(1.1)
				RecordHTTPRequest("books", "GET", "200")
				RecordHTTPRequestDuration("books", "GET", "200", 5.0)
				RecordErrorByEndpoint("books", "GET", "client_error")
				RecordErrorByType("client_error", "medium")
			}, ShouldNotPanic)
		})

		Convey("Then the custom registry is exposed", func() {
			So(GetRegistry(), ShouldNotBeNil)
		})
	})
}
