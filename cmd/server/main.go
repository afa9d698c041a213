// @title                       Influencer Summit API
// @version                     1.0
// @description                 Summit registration and badge issuance.
// @BasePath                    /
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        x-api-key
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/influencer-summit/summit-api/internal/api"
	"github.com/influencer-summit/summit-api/internal/app"
	"github.com/influencer-summit/summit-api/internal/core/service"
	"github.com/influencer-summit/summit-api/internal/pkg/config"
	"github.com/influencer-summit/summit-api/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "summit-api",
	})

	ctx := context.Background()
	store, err := app.OpenStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open store")
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			log.Error().Err(err).Msg("close store")
		}
	}()

	authorizer, err := service.NewKeyAuthorizer(cfg.Admin.APIKey, cfg.Admin.APIKeyHash)
	if err != nil {
		log.Fatal().Err(err).Msg("admin key")
	}

	e := api.NewRouter(api.Deps{
		Registrations: service.NewRegistrationService(store.Registrations, store.IDs, log),
		Badges:        service.NewBadgeService(store.Badges, store.IDs, log),
		Authorizer:    authorizer,
		Checks:        store.Checks,
		Logger:        log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	log.Info().Msg("server stopped")
}
