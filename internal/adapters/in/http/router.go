// Package http contains the inbound REST adapter: an echo router, request
// and response schemas, and thin handlers that translate HTTP traffic into
// commands and queries.
package http

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	log zerolog.Logger,
	db *gorm.DB,
	userHandler *UserHandler,
	orderHandler *OrderHandler,
	authHandler *AuthHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Msg("request")
			return nil
		},
	}))

	// --- Health probes and metrics ---
	healthHandler := NewHealthHandler(db)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/api/v1")

	// --- Users ---
	v1.POST("/users", userHandler.Create)
	v1.GET("/users", userHandler.List)
	v1.GET("/users/exists", userHandler.Exists)
	v1.GET("/users/:id", userHandler.Get)
	v1.PUT("/users/:id", userHandler.Update)
	v1.DELETE("/users/:id", userHandler.Delete)
	v1.GET("/users/:id/orders", userHandler.Orders)
	v1.GET("/users/:id/statistics", userHandler.Statistics)

	// --- Auth ---
	v1.POST("/auth/login", authHandler.Login)

	// --- Orders ---
	v1.POST("/orders", orderHandler.Create)
	v1.GET("/orders", orderHandler.List)
	v1.GET("/orders/:id", orderHandler.Get)
	v1.PUT("/orders/:id", orderHandler.Update)
	v1.DELETE("/orders/:id", orderHandler.Delete)
	v1.POST("/orders/:id/complete", orderHandler.Complete)
	v1.POST("/orders/:id/cancel", orderHandler.Cancel)

	return e
}
