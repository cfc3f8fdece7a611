package main

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/arcadehall/highscore/internal/adapters/blob"
	"github.com/arcadehall/highscore/internal/adapters/http/api"
	"github.com/arcadehall/highscore/internal/app"
	"github.com/arcadehall/highscore/internal/config"
	"github.com/arcadehall/highscore/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainWiring(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		_ = logger.Init()

		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("HISCORE_ADDR", ":8081")
			_ = os.Setenv("HISCORE_STORAGE", "memory")
			defer func() {
				_ = os.Unsetenv("HISCORE_ADDR")
				_ = os.Unsetenv("HISCORE_STORAGE")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8081")
				convey.So(cfg.Storage, convey.ShouldEqual, config.StorageMemory)
			})
		})

		convey.Convey("When building the store from config", func() {
			cfg := config.New()
			cfg.Storage = config.StorageMemory

			store, cleanup, err := newStore(context.Background(), cfg)
			defer cleanup()

			convey.Convey("Then the memory backend should start seeded and readable", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(store, convey.ShouldNotBeNil)

				snap, err := store.Read(context.Background())
				convey.So(err, convey.ShouldBeNil)
				convey.So(string(snap.Data), convey.ShouldEqual, "[]")
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then the service should be creatable with custom options", func() {
				svc := app.New(
					app.WithStore(blob.NewMemoryStore()),
					app.WithMaxEntries(10),
					app.WithWriteRetries(2),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing HTTP server creation", func() {
			svc := app.New(app.WithStore(blob.NewMemoryStore()))
			mux := http.NewServeMux()
			apiServer := api.NewServer(svc, svc)
			apiServer.Register(context.Background(), mux)

			srv := &http.Server{
				Addr:              ":0",
				Handler:           mux,
				ReadTimeout:       readTimeout,
				WriteTimeout:      writeTimeout,
				IdleTimeout:       idleTimeout,
				ReadHeaderTimeout: readHeaderTimeout,
			}

			convey.Convey("Then the server should carry the configured timeouts", func() {
				convey.So(srv.ReadTimeout, convey.ShouldEqual, 10*time.Second)
				convey.So(srv.WriteTimeout, convey.ShouldEqual, 10*time.Second)
				convey.So(srv.IdleTimeout, convey.ShouldEqual, 60*time.Second)
				convey.So(srv.ReadHeaderTimeout, convey.ShouldEqual, 5*time.Second)
			})
		})

		convey.Convey("When updating system metrics", func() {
			convey.Convey("Then the updater should not panic", func() {
				convey.So(updateSystemMetrics, convey.ShouldNotPanic)
			})
		})
	})
}
