package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Rishikeshk9/astudio/internal/config"
	router "github.com/Rishikeshk9/astudio/internal/http"
	"github.com/Rishikeshk9/astudio/internal/logging"
	"github.com/Rishikeshk9/astudio/internal/services"
	"github.com/Rishikeshk9/astudio/internal/upstream"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		errLog := logging.New(config.LogConfig{Level: "error"})
		errLog.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logging.New(cfg.Log)

	if cfg.App.GinMode != "" {
		gin.SetMode(cfg.App.GinMode)
	}

	client := upstream.New(cfg.Upstream, log)
	users := services.NewUsersService(client, cfg.App.DefaultPageSize, log)
	products := services.NewProductsService(client, cfg.App.DefaultPageSize, log)

	r := router.NewRouter(cfg, log, users, products, client)

	srv := &http.Server{
		Addr:              cfg.App.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.App.Addr).Str("upstream", cfg.Upstream.BaseURL).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("shutdown failed")
	}

	log.Info().Msg("server stopped")
}
