package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/amrkal/tennis-reservation/internal/api/handler"
	"github.com/amrkal/tennis-reservation/internal/api/middleware"
	"github.com/amrkal/tennis-reservation/internal/core/ports"
	"github.com/amrkal/tennis-reservation/internal/core/service"
	mongodb "github.com/amrkal/tennis-reservation/internal/infrastructure/db/mongo"
	redisdb "github.com/amrkal/tennis-reservation/internal/infrastructure/db/redis"
)

// Dependencies bundles the externally constructed service handles the router
// needs. Everything is injected so tests can substitute fakes.
type Dependencies struct {
	Mongo     *mongo.Database
	Redis     *redis.Client
	Provider  ports.VerificationProvider
	Scheduler ports.ReminderScheduler
	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("tennis"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(deps.Mongo)
	reservationRepo := mongodb.NewReservationRepository(deps.Mongo)
	cooldown := redisdb.NewCooldown(deps.Redis, 0)

	authService := service.NewAuthService(userRepo, deps.JWTSecret, 24*time.Hour)
	verificationService := service.NewVerificationService(deps.Provider, cooldown, deps.Logger)
	reservationService := service.NewReservationService(reservationRepo, deps.Scheduler, deps.Logger)

	authHandler := handler.NewAuthHandler(authService)
	verificationHandler := handler.NewVerificationHandler(verificationService)
	reservationHandler := handler.NewReservationHandler(reservationService)
	authMiddleware := middleware.Auth(deps.JWTSecret)

	// --- Public routes ---
	e.POST("/login", authHandler.Login)
	e.POST("/send_verification", verificationHandler.Send)
	e.POST("/verify_code", verificationHandler.Check)

	// --- Reservation routes (session required, read and write alike) ---
	e.GET("/reservations", reservationHandler.List, authMiddleware)
	e.POST("/reservations", reservationHandler.Create, authMiddleware)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
