package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "dashboard/backend/docs"
	"dashboard/backend/internal/handler"
	"dashboard/backend/internal/metrics"
)

type RouterOptions struct {
	StaticDir     string
	EnableSwagger bool
	// RateLimit is requests per second per client on /api; zero disables it.
	RateLimit float64
}

func NewRouter(
	documentHandler *handler.DocumentHandler,
	notificationHandler *handler.NotificationHandler,
	opts RouterOptions,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(RequestLoggerMiddleware())
	e.Use(metrics.EchoMiddleware())

	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	if opts.EnableSwagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	api := e.Group("/api", RateLimitMiddleware(opts.RateLimit), SessionMiddleware())
	documentHandler.RegisterRoutes(api)
	notificationHandler.RegisterRoutes(api)

	registerStatic(e, opts.StaticDir)

	return e
}
