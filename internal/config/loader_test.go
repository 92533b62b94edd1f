package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	config "github.com/dexterix/rosterd/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoadDefaults(t *testing.T) {
	Convey("Given no configuration in the environment", t, func() {
		os.Unsetenv("ROSTERD_CONFIG")

		Convey("When loading", func() {
			cfg, err := config.Load(context.Background())

			Convey("Then the defaults should apply", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":9080")
				So(cfg.LogLevel, ShouldEqual, "info")
				So(cfg.MaxLeaderboardLimit, ShouldEqual, 100)
				So(cfg.ErrorListCap, ShouldEqual, 10)
				So(cfg.MinSuffixLen, ShouldEqual, 2)
				So(cfg.MaxUploadBytes, ShouldEqual, int64(10<<20))
			})
		})
	})
}

func TestLoadEnvOverrides(t *testing.T) {
	Convey("Given overrides in the environment", t, func() {
		t.Setenv("ROSTERD_ADDR", ":7070")
		t.Setenv("ROSTERD_LOG_LEVEL", "debug")
		t.Setenv("ROSTERD_MIN_SUFFIX_LEN", "3")

		Convey("When loading", func() {
			cfg, err := config.Load(context.Background())

			Convey("Then env values should win over defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":7070")
				So(cfg.LogLevel, ShouldEqual, "debug")
				So(cfg.MinSuffixLen, ShouldEqual, 3)
			})
		})
	})
}

func TestLoadFile(t *testing.T) {
	Convey("Given a YAML config file", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "rosterd.yaml")
		yaml := "addr: \":6060\"\nerror_list_cap: 25\n"
		So(os.WriteFile(path, []byte(yaml), 0o600), ShouldBeNil)
		t.Setenv("ROSTERD_CONFIG", path)

		Convey("When loading without env overrides", func() {
			cfg, err := config.Load(context.Background())

			Convey("Then file values should win over defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":6060")
				So(cfg.ErrorListCap, ShouldEqual, 25)
			})
		})

		Convey("When an env override is also present", func() {
			t.Setenv("ROSTERD_ADDR", ":5050")
			cfg, err := config.Load(context.Background())

			Convey("Then env should win over the file", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":5050")
				So(cfg.ErrorListCap, ShouldEqual, 25)
			})
		})
	})

	Convey("Given a config path that does not exist", t, func() {
		t.Setenv("ROSTERD_CONFIG", "/nonexistent/rosterd.yaml")

		Convey("When loading", func() {
			_, err := config.Load(context.Background())

			Convey("Then it should fail as a load error", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, config.ErrLoadConfig), ShouldBeTrue)
			})
		})
	})
}

func TestLoadValidation(t *testing.T) {
	Convey("Given an invalid override", t, func() {
		t.Setenv("ROSTERD_ERROR_LIST_CAP", "0")

		Convey("When loading", func() {
			_, err := config.Load(context.Background())

			Convey("Then validation should reject it", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
			})
		})
	})
}
