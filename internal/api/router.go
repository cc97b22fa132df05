package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/mentoria/fingerprint-api/docs"
	"github.com/mentoria/fingerprint-api/internal/api/handler"
	"github.com/mentoria/fingerprint-api/internal/api/middleware"
	"github.com/mentoria/fingerprint-api/internal/core/ports"
	"github.com/mentoria/fingerprint-api/internal/core/service"
	"github.com/mentoria/fingerprint-api/internal/infrastructure/config"
)

const tokenTTL = 24 * time.Hour

// NewRouter builds and returns the Echo instance with all routes registered.
// Stores are constructed by the caller and injected so tests can build
// isolated instances.
func NewRouter(
	cfg *config.Config,
	log zerolog.Logger,
	credRepo ports.CredentialRepository,
	consentRepo ports.ConsentRepository,
	limiterStore echomiddleware.RateLimiterStore,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.Secure())
	if limiterStore == nil {
		limiterStore = echomiddleware.NewRateLimiterMemoryStoreWithConfig(
			echomiddleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(float64(cfg.RateLimit.Requests) / cfg.RateLimit.Window.Seconds()),
				Burst:     cfg.RateLimit.Requests,
				ExpiresIn: cfg.RateLimit.Window,
			},
		)
	}
	e.Use(echomiddleware.RateLimiter(limiterStore))
	e.Use(echoprometheus.NewMiddleware("fingerprint"))

	// --- Dependencies ---
	authService := service.NewAuthService(credRepo, cfg.JWTSecret, tokenTTL, log)
	consentService := service.NewConsentService(consentRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	biometriaHandler := handler.NewBiometriaHandler(consentService)
	healthHandler := handler.NewHealthHandler()
	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/token", authHandler.Token)

	// --- Biometria routes (bearer token required) ---
	biometria := e.Group("/biometria", authMiddleware)
	biometria.POST("/fingerprint", biometriaHandler.Record)
	biometria.GET("/fingerprint/:user_id", biometriaHandler.Get)

	// --- Operational surface ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/api-docs/*", echoSwagger.WrapHandler)

	return e
}
