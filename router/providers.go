package router

import (
	"context"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

func NewServer() *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(200, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

func Start(lc fx.Lifecycle, e *echo.Echo) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(":" + port); err != nil {
					slog.Error("server stopped", "err", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

// Module provides the http server and registers all routers
var Module = fx.Options(
	fx.Provide(NewServer),
	fx.Provide(NewAPIV1Router),
)
