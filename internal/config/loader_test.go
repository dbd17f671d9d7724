package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/shelfrank/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestLoad_Defaults(t *testing.T) {
	convey.Convey("Given no file and no environment overrides", t, func() {
		cfg, err := config.Load(context.Background())

		convey.So(err, convey.ShouldBeNil)
		convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
		convey.So(cfg.AnchorVotes, convey.ShouldEqual, 100)
	})
}

func TestLoad_EnvOverrides(t *testing.T) {
	convey.Convey("Given environment overrides", t, func() {
		t.Setenv("SHELFRANK_ADDR", ":7070")
		t.Setenv("SHELFRANK_DATA_PATH", "/tmp/corpus.csv")
		t.Setenv("SHELFRANK_ANCHOR_VOTES", "250")
		t.Setenv("SHELFRANK_POWER_EXPONENT", "0.5")
		t.Setenv("SHELFRANK_LOG_LEVEL", "debug")

		cfg, err := config.Load(context.Background())

		convey.So(err, convey.ShouldBeNil)
		convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
		convey.So(cfg.DataPath, convey.ShouldEqual, "/tmp/corpus.csv")
		convey.So(cfg.AnchorVotes, convey.ShouldEqual, 250)
		convey.So(cfg.PowerExponent, convey.ShouldEqual, 0.5)
		convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
	})
}

func TestLoad_File(t *testing.T) {
	convey.Convey("Given a YAML config file", t, func() {
		path := filepath.Join(t.TempDir(), "config.yaml")
		yaml := "addr: \":6060\"\nanchor_votes: 50\nmax_limit: 1000\n"
		convey.So(os.WriteFile(path, []byte(yaml), 0o644), convey.ShouldBeNil)
		t.Setenv("SHELFRANK_CONFIG", path)

		cfg, err := config.Load(context.Background())

		convey.So(err, convey.ShouldBeNil)
		convey.So(cfg.Addr, convey.ShouldEqual, ":6060")
		convey.So(cfg.AnchorVotes, convey.ShouldEqual, 50)
		convey.So(cfg.MaxLimit, convey.ShouldEqual, 1000)

		convey.Convey("And env still wins over the file", func() {
			t.Setenv("SHELFRANK_ADDR", ":5050")
			cfg, err := config.Load(context.Background())
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.Addr, convey.ShouldEqual, ":5050")
		})
	})
}

func TestLoad_Validation(t *testing.T) {
	convey.Convey("Given invalid values", t, func() {
		convey.Convey("A negative anchor is rejected", func() {
			t.Setenv("SHELFRANK_ANCHOR_VOTES", "-5")
			_, err := config.Load(context.Background())
			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
		})

		convey.Convey("A negative exponent is rejected", func() {
			t.Setenv("SHELFRANK_POWER_EXPONENT", "-1")
			_, err := config.Load(context.Background())
			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
		})

		convey.Convey("A default limit above the cap is rejected", func() {
			t.Setenv("SHELFRANK_DEFAULT_LIMIT", "1000")
			_, err := config.Load(context.Background())
			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
		})

		convey.Convey("A missing config file is reported", func() {
			t.Setenv("SHELFRANK_CONFIG", "/no/such/config.yaml")
			_, err := config.Load(context.Background())
			convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
		})
	})
}
