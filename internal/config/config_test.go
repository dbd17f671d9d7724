package config_test

import (
	"testing"

	"github.com/okian/shelfrank/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.DataPath, convey.ShouldEqual, "data/books.csv")
			convey.So(cfg.AnchorVotes, convey.ShouldEqual, 100)
			convey.So(cfg.PowerExponent, convey.ShouldEqual, 1.0)
			convey.So(cfg.DefaultLimit, convey.ShouldEqual, 30)
			convey.So(cfg.MaxLimit, convey.ShouldEqual, 500)
		})
	})
}
