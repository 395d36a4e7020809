// Package api wires the HTTP surface of the farm system: routes, the gate
// chain protecting them, and the central error handler.
package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/agrocampo/farm-system/docs"
	"github.com/agrocampo/farm-system/internal/api/handler"
	"github.com/agrocampo/farm-system/internal/api/middleware"
	"github.com/agrocampo/farm-system/internal/core/ports"
	"github.com/agrocampo/farm-system/internal/core/service"
	"github.com/agrocampo/farm-system/internal/infrastructure/config"
	mongodb "github.com/agrocampo/farm-system/internal/infrastructure/db/mongo"
	redisdb "github.com/agrocampo/farm-system/internal/infrastructure/db/redis"
	"github.com/agrocampo/farm-system/pkg/dateutil"
)

// RouterDeps carries the shared infrastructure the router builds on.
type RouterDeps struct {
	Mongo      *mongo.Client
	DB         *mongo.Database
	Redis      *redis.Client
	TouchQueue ports.TouchQueue
	Log        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("farm_http"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(deps.DB)
	animalRepo := mongodb.NewAnimalRepository(deps.DB)
	farmRepo := mongodb.NewFarmRepository(deps.DB)
	sessionStore := redisdb.NewSessionStore(deps.Redis, cfg.Session.TTL)

	// --- Services ---
	loc := dateutil.Location(cfg.Timezone)
	authService := service.NewAuthService(userRepo, sessionStore, deps.TouchQueue, loc, deps.Log)
	animalService := service.NewAnimalService(animalRepo, deps.Log)
	farmService := service.NewFarmService(farmRepo, deps.Log)
	userService := service.NewUserService(userRepo, deps.Log)
	reportService := service.NewReportService(animalRepo, userRepo)

	// --- Handlers ---
	cookie := handler.CookieConfig{
		Name:   cfg.Session.CookieName,
		TTL:    cfg.Session.TTL,
		Secure: cfg.Session.CookieSecure,
	}
	authHandler := handler.NewAuthHandler(authService, sessionStore, cookie, deps.Log)
	animalHandler := handler.NewAnimalHandler(animalService, deps.Log)
	farmHandler := handler.NewFarmHandler(farmService, deps.Log)
	userHandler := handler.NewUserHandler(userService, deps.Log)
	reportHandler := handler.NewReportHandler(reportService, deps.Log)
	healthHandler := handler.NewHealthHandler(deps.Mongo, deps.Redis)

	// --- Gates ---
	requireLogin := middleware.RequireLogin(cfg.Session.CookieName, sessionStore)
	requireChanged := middleware.RequirePasswordChanged()
	requireAdmin := middleware.RequireAdmin()

	// --- Auth routes ---
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)
	e.GET("/check_login", authHandler.CheckLogin)
	e.GET("/check_access", authHandler.CheckAccess, requireLogin, requireChanged)

	// Password change runs behind the login gate only: a provisional
	// credential must be able to reach it.
	e.POST("/api/alterar_senha", authHandler.ChangePassword, requireLogin)

	// --- Record routes: login + completed password change ---
	records := e.Group("/api", requireLogin, requireChanged)

	records.GET("/animais", animalHandler.List)
	records.POST("/animais", animalHandler.Create)
	records.GET("/animais/:id", animalHandler.Get)
	records.PUT("/animais/:id", animalHandler.Update)
	records.DELETE("/animais/:id", animalHandler.Delete)

	records.GET("/fazendas", farmHandler.List)
	records.POST("/fazendas", farmHandler.Create)
	records.GET("/fazendas/:id", farmHandler.Get)
	records.PUT("/fazendas/:id", farmHandler.Update)
	records.DELETE("/fazendas/:id", farmHandler.Delete)

	records.GET("/dashboard/stats", reportHandler.Dashboard)
	records.GET("/relatorios/animais_por_tipo", reportHandler.AnimalsByKind)
	records.GET("/relatorios/animais_por_status", reportHandler.AnimalsByStatus)

	// --- User management: admin only, except self-lookup ---
	records.GET("/usuarios/:id", userHandler.Get) // self-or-admin, checked in handler
	records.GET("/usuarios", userHandler.List, requireAdmin)
	records.POST("/usuarios", userHandler.Create, requireAdmin)
	records.PUT("/usuarios/:id", userHandler.Update, requireAdmin)
	records.DELETE("/usuarios/:id", userHandler.Delete, requireAdmin)

	records.GET("/system/info", reportHandler.SystemInfo, requireAdmin)

	// --- Operational endpoints (no auth required) ---
	e.GET("/health", healthHandler.Live)
	e.GET("/health/ready", healthHandler.Ready)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
