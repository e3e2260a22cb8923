package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/meugerenciamento/gerenciamento-api/internal/api/handler"
	"github.com/meugerenciamento/gerenciamento-api/internal/api/middleware"
	"github.com/meugerenciamento/gerenciamento-api/internal/core/domain"
	"github.com/meugerenciamento/gerenciamento-api/internal/core/ports"
)

const basePath = "/api/v1"

// Dependencies carries everything the router wires into handlers.
type Dependencies struct {
	Auth      ports.AuthService
	Users     ports.UserService
	Products  ports.ProductService
	Dashboard ports.DashboardService
	Tokens    ports.TokenService

	// Health maps dependency names to readiness checks.
	Health map[string]handler.Pinger

	// CORSOrigin is the single allowed browser origin. Empty disables CORS.
	CORSOrigin string

	// Metrics enables HTTP metrics and /metrics when set. Tests leave it nil
	// so repeated routers do not register the same collectors twice.
	Metrics prometheus.Registerer

	Log zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	if deps.CORSOrigin != "" {
		e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowOrigins: []string{deps.CORSOrigin},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		}))
	}
	if deps.Metrics != nil {
		e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Subsystem:  "http",
			Registerer: deps.Metrics,
		}))
	}
	e.Use(middleware.RequestLogger(deps.Log))

	// --- Operational routes ---
	health := handler.NewHealthHandler(deps.Health)
	e.GET("/health", health.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", health.Readiness)     // readiness – are dependencies up?
	e.GET("/swagger/*", echoSwagger.WrapHandler) // OpenAPI UI
	if deps.Metrics != nil {
		gatherer, ok := deps.Metrics.(prometheus.Gatherer)
		if !ok {
			gatherer = prometheus.DefaultGatherer
		}
		e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	}

	// --- API ---
	authMW := middleware.Auth(deps.Tokens)
	adminMW := middleware.RequireRole(domain.RoleAdmin)

	authHandler := handler.NewAuthHandler(deps.Auth)
	userHandler := handler.NewUserHandler(deps.Users)
	productHandler := handler.NewProductHandler(deps.Products)
	dashboardHandler := handler.NewDashboardHandler(deps.Dashboard)

	v1 := e.Group(basePath)
	v1.GET("", handler.Welcome)
	v1.POST("/register", authHandler.Register)
	v1.POST("/login", authHandler.Login)
	v1.GET("/dashboard", dashboardHandler.Stats)

	v1.GET("/profile", middleware.WithClaims(userHandler.Profile), authMW)
	v1.PUT("/profile", middleware.WithClaims(userHandler.UpdateProfile), authMW)

	v1.GET("/users", userHandler.List, authMW, adminMW)
	v1.DELETE("/user/:id", middleware.WithClaims(userHandler.Delete), authMW, adminMW)
	v1.PUT("/update-cargo/:id", middleware.WithClaims(userHandler.UpdateRole), authMW, adminMW)

	products := v1.Group("/products", authMW)
	products.GET("/:id", productHandler.Get)
	products.GET("", productHandler.List, adminMW)
	products.POST("", middleware.WithClaims(productHandler.Create), adminMW)
	products.PUT("/:id", middleware.WithClaims(productHandler.Update), adminMW)
	products.DELETE("/:id", middleware.WithClaims(productHandler.Delete), adminMW)

	return e
}
