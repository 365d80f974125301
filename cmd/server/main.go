package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"qrforge/internal/api"
	"qrforge/internal/api/handlers"
	"qrforge/internal/api/middleware"
	"qrforge/internal/engine/generator"
	"qrforge/internal/engine/history"
	"qrforge/internal/engine/render"
	"qrforge/internal/engine/themes"
	"qrforge/internal/pkg/logger"
	"qrforge/internal/platform/config"
	"qrforge/internal/platform/store"
)

func main() {
	configPath := os.Getenv("QRFORGE_CONFIG")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	logger.Init(cfg.Logging)

	// Storage
	kv, closeStore, err := store.Open(cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("Failed to open store")
	}
	defer closeStore()

	// Services
	renderer := render.NewRenderer(cfg.Cache.RenderTTL, cfg.Cache.CleanupInterval)
	hist := history.NewService(kv)
	prefs := themes.NewPreferences(kv)
	gen := generator.New(renderer, hist, prefs, render.Options{
		Width:  cfg.Render.Width,
		Margin: cfg.Render.Margin,
		Level:  cfg.Render.ErrorCorrection,
	}, cfg.Render.ThumbnailWidth)

	// Rate limiting
	limiter := middleware.NewRateLimiter()
	stop := make(chan struct{})
	go limiter.Run(10*time.Minute, stop)

	deps := &api.Dependencies{
		CatalogHandler:  handlers.NewCatalogHandler(),
		ThemeHandler:    handlers.NewThemeHandler(prefs),
		QRHandler:       handlers.NewQRHandler(gen),
		HistoryHandler:  handlers.NewHistoryHandler(hist, gen),
		HealthHandler:   handlers.NewHealthHandler(kv),
		MetricsHandler:  handlers.NewMetricsHandler(renderer),
		RateLimiter:     limiter,
		RenderPerMinute: cfg.RateLimit.RenderPerMinute,
		APIPerMinute:    cfg.RateLimit.APIPerMinute,
	}
	router := api.NewRouter(deps)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.Logging(router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().Str("addr", addr).Str("storage", cfg.Storage.Driver).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down")
	close(stop)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
