package main

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/dexterix/rosterd/internal/adapters/http/api"
	service "github.com/dexterix/rosterd/internal/app"
	"github.com/dexterix/rosterd/internal/config"
	"github.com/dexterix/rosterd/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("ROSTERD_ADDR", ":9080")
			_ = os.Setenv("ROSTERD_ERROR_LIST_CAP", "5")
			_ = os.Setenv("ROSTERD_MIN_SUFFIX_LEN", "3")
			defer func() {
				_ = os.Unsetenv("ROSTERD_ADDR")
				_ = os.Unsetenv("ROSTERD_ERROR_LIST_CAP")
				_ = os.Unsetenv("ROSTERD_MIN_SUFFIX_LEN")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.ErrorListCap, convey.ShouldEqual, 5)
				convey.So(cfg.MinSuffixLen, convey.ShouldEqual, 3)
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then service should be creatable with default options", func() {
				svc := service.New()
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And service should be creatable with custom options", func() {
				svc := service.New(
					service.WithErrorListCap(20),
					service.WithMinSuffixLen(3),
					service.WithStoreCapacity(256),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing HTTP server creation", func() {
			svc := service.New()
			convey.So(svc, convey.ShouldNotBeNil)

			convey.Convey("Then HTTP server should be creatable", func() {
				server := api.NewServer(svc, svc, 1<<20, 100)
				convey.So(server, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing metrics initialization", func() {
			convey.Convey("Then metrics manager should be creatable", func() {
				registry := prometheus.NewRegistry()
				manager := metrics.NewManager(metrics.WithPrometheusRegistry(registry))
				convey.So(manager, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestMainApplicationComponents(t *testing.T) {
	convey.Convey("Given main application components", t, func() {
		convey.Convey("When testing the service metrics updater", func() {
			svc := service.New()
			convey.So(svc, convey.ShouldNotBeNil)

			convey.Convey("Then it should stop when the context is done", func() {
				ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
				defer cancel()

				convey.So(func() {
					startServiceMetricsUpdater(ctx, svc)
				}, convey.ShouldNotPanic)
			})
		})
	})
}

func TestMainApplicationIntegration(t *testing.T) {
	convey.Convey("Given main application integration", t, func() {
		convey.Convey("When wiring all components together", func() {
			ctx := context.Background()

			cfg, err := config.Load(ctx)
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg, convey.ShouldNotBeNil)

			svc := service.New(
				service.WithErrorListCap(cfg.ErrorListCap),
				service.WithMinSuffixLen(cfg.MinSuffixLen),
				service.WithStoreCapacity(cfg.StoreCapacity),
			)
			convey.So(svc, convey.ShouldNotBeNil)

			server := api.NewServer(svc, svc, cfg.MaxUploadBytes, cfg.MaxLeaderboardLimit)
			convey.So(server, convey.ShouldNotBeNil)

			mux := http.NewServeMux()
			server.Register(ctx, mux)

			convey.Convey("Then route registration should not panic", func() {
				convey.So(mux, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestMainApplicationErrorHandling(t *testing.T) {
	convey.Convey("Given main application error handling", t, func() {
		convey.Convey("When the configured address is empty", func() {
			_ = os.Setenv("ROSTERD_ADDR", "")
			defer func() { _ = os.Unsetenv("ROSTERD_ADDR") }()

			convey.Convey("Then configuration loading should fail", func() {
				cfg, err := config.Load(context.Background())
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When service options carry invalid values", func() {
			convey.Convey("Then defaults should survive", func() {
				svc := service.New(
					service.WithErrorListCap(0),
					service.WithMinSuffixLen(-1),
					service.WithStoreCapacity(0),
				)
				convey.So(svc, convey.ShouldNotBeNil)
				convey.So(svc.GetStats(), convey.ShouldNotBeNil)
			})
		})
	})
}
