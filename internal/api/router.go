package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/influencer-summit/summit-api/docs"
	"github.com/influencer-summit/summit-api/internal/api/handler"
	"github.com/influencer-summit/summit-api/internal/api/middleware"
	"github.com/influencer-summit/summit-api/internal/core/ports"
	"github.com/influencer-summit/summit-api/internal/infrastructure/http/handlers"
)

// Deps is everything the router needs to serve requests.
type Deps struct {
	Registrations ports.RegistrationService
	Badges        ports.BadgeService
	Authorizer    ports.AdminAuthorizer
	// Checks feed the readiness probe, keyed by dependency name.
	Checks map[string]handlers.Check
	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.Metrics())
	e.Use(middleware.RequestLogger(d.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, middleware.HeaderAPIKey},
	}))

	// --- Dependencies ---
	registrationHandler := handler.NewRegistrationHandler(d.Registrations, d.Logger)
	badgeHandler := handler.NewBadgeHandler(d.Badges)
	adminHandler := handler.NewAdminHandler(d.Registrations, d.Badges)
	adminKey := middleware.APIKey(d.Authorizer)

	// --- Summit routes ---
	e.POST("/summit/register", registrationHandler.Register)
	e.GET("/summit/register", registrationHandler.List)
	e.GET("/summit/registrations", registrationHandler.ListByInfluencer)

	// --- Badge routes ---
	e.POST("/badges/issue", badgeHandler.Issue)
	e.GET("/badges", badgeHandler.List)
	e.DELETE("/badges/:badgeId", badgeHandler.Delete, adminKey)

	// --- Admin routes ---
	admin := e.Group("/admin", adminKey)
	admin.GET("/registrations", adminHandler.ListRegistrations)
	admin.DELETE("/registrations", adminHandler.DeleteRegistration)
	admin.GET("/badges", adminHandler.ListBadges)
	admin.DELETE("/badges", adminHandler.DeleteBadge)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(d.Checks)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Ops ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
