package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"raffle-admin-panel/internal/api"
	"raffle-admin-panel/internal/common/config"
	"raffle-admin-panel/internal/common/logger"
	"raffle-admin-panel/internal/platform/backend"
	"raffle-admin-panel/internal/store"
	"raffle-admin-panel/internal/web"
)

func main() {
	cfg := config.Load()
	logger.Init("raffle-admin-panel", cfg.Debug)

	logger.Info().
		Bool("debug", cfg.Debug).
		Str("backend", cfg.Backend.BaseURL).
		Msg("Starting admin panel")

	tokens := backend.NewTokenStore(cfg.Auth.TokenFile)
	client := api.NewClient(cfg.Backend.BaseURL, tokens)
	users := store.NewUserStore(client, tokens)
	admin := store.NewAdminStore(client)
	media := store.NewMediaCache(nil)

	// Best effort: a stale or missing token just lands on the login page.
	if tokens.Get() != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := users.CheckAuth(ctx); err != nil {
			logger.Warn().Err(err).Msg("Stored session is not valid, sign in again")
		} else {
			logger.Info().Int64("user_id", users.User().ID).Msg("Session restored")
		}
		cancel()
	}

	handler := web.NewHandler(cfg, users, admin, media)

	// No WriteTimeout: /admin/events streams for the lifetime of the page.
	server := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:     handler.Router(),
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}
