package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/foundever/reactions/docs"
	"github.com/foundever/reactions/internal/api/handler"
	"github.com/foundever/reactions/internal/api/middleware"
	"github.com/foundever/reactions/internal/core/ports"
)

// Dependencies are the collaborators the router needs. Registerer and
// Gatherer default to the global Prometheus registry.
type Dependencies struct {
	Users          ports.UserService
	Logger         zerolog.Logger
	Checks         []handler.DependencyCheck
	AllowedOrigins []string
	Registerer     prometheus.Registerer
	Gatherer       prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	if deps.Registerer == nil {
		deps.Registerer = prometheus.DefaultRegisterer
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     deps.AllowedOrigins,
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "http",
		Registerer: deps.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Health probes and operational endpoints ---
	health := handler.NewHealthHandler(deps.Checks...)
	e.GET("/", health.Root)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: deps.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Users ---
	users := handler.NewUserHandler(deps.Users)
	v1 := e.Group("/api/v1")
	v1.POST("/users", users.Create)
	v1.PUT("/users", users.Update)
	v1.DELETE("/users", users.Delete)
	v1.GET("/users", users.List)

	return e
}
