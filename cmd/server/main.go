package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/mentoria/fingerprint-api/internal/api"
	"github.com/mentoria/fingerprint-api/internal/infrastructure/config"
	"github.com/mentoria/fingerprint-api/internal/infrastructure/memory"
	redisinfra "github.com/mentoria/fingerprint-api/internal/infrastructure/redis"
	"github.com/mentoria/fingerprint-api/pkg/logger"
)

// @title           API Fingerprint - Biometria
// @version         1.0.0
// @description     API para cadastro de biometria fingerprint com autenticação JWT
// @contact.name    Mentoria 2.0 Testes de Software
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == config.DefaultJWTSecret {
		log.Warn().Msg("JWT_SECRET not set, using placeholder secret")
	}

	credRepo, err := memory.NewCredentialRepository(memory.DefaultSeedUsers)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed credential store")
	}
	log.Info().Int("users", credRepo.Len()).Msg("credential store seeded")

	consentRepo := memory.NewConsentRepository()

	// Redis is optional: without REDIS_ADDR the rate limiter keeps its
	// counters in process memory.
	var limiterStore echomiddleware.RateLimiterStore
	if cfg.Redis.Addr != "" {
		store, err := redisinfra.NewRateLimiterStore(ctx, redisinfra.Config{
			Addr:     cfg.Redis.Addr,
			DB:       cfg.Redis.DB,
			Requests: cfg.RateLimit.Requests,
			Window:   cfg.RateLimit.Window,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer store.Close()
		limiterStore = store
		log.Info().Str("addr", cfg.Redis.Addr).Msg("rate limiter backed by redis")
	}

	e := api.NewRouter(cfg, log, credRepo, consentRepo, limiterStore)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		log.Info().Msgf("documentation available at http://localhost:%s/api-docs/index.html", cfg.Port)
		log.Info().Msgf("health check at http://localhost:%s/health", cfg.Port)

		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
