// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	_ "github.com/tomtom215/what2eat/docs" // Import generated swagger docs
	"github.com/tomtom215/what2eat/internal/api"
	"github.com/tomtom215/what2eat/internal/config"
	"github.com/tomtom215/what2eat/internal/logging"
	"github.com/tomtom215/what2eat/internal/menu"
	"github.com/tomtom215/what2eat/internal/metrics"
	"github.com/tomtom215/what2eat/internal/recommend"
	"github.com/tomtom215/what2eat/internal/session"
	"github.com/tomtom215/what2eat/internal/supervisor"
	"github.com/tomtom215/what2eat/internal/supervisor/services"
	"github.com/tomtom215/what2eat/internal/weather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Server stopped with error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

func run(cfg *config.Config) error {
	logger := logging.Logger()
	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("session_store", cfg.Session.Store).
		Bool("weather_live", cfg.Weather.APIKey != "").
		Msg("Starting What2Eat")
	metrics.SetAppInfo(api.Version, runtime.Version())

	catalog, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	logging.Info().Int("items", catalog.Len()).Int("version", catalog.Version()).Msg("Menu catalog loaded")
	metrics.SetCatalogItems(catalog.Len())

	engine, err := recommend.NewEngine(catalog, &cfg.Recommend, logging.WithComponent("recommend"))
	if err != nil {
		return fmt.Errorf("create recommendation engine: %w", err)
	}

	weatherClient := weather.NewClient(&cfg.Weather, logger)
	if !weatherClient.Configured() {
		logging.Warn().Msg("OPENWEATHER_API_KEY not set, serving dummy weather")
	}

	factory, err := session.NewFactory(&cfg.Session, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := factory.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing session store")
		}
	}()
	store := factory.CreateStore()
	sessions := session.NewManager(store, cfg.Session.TTL)
	if cfg.Session.IsMemoryStore() && cfg.IsProduction() {
		logging.Warn().Msg("SESSION_STORE=memory in production: sessions are lost on restart")
	}

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	handler := api.NewHandler(engine, weatherClient, sessions, catalog, cfg)
	router := api.NewRouter(handler, &cfg.Security)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(logger), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	tree.AddDataService(services.NewSessionJanitorService(store, cfg.Session.CleanupInterval, logger))
	tree.AddDataService(weatherClient.Cache())
	if factory.DB() != nil {
		tree.AddDataService(services.NewBadgerGCService(factory, cfg.Session.CleanupInterval, logger))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor tree: %w", err)
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}
	return nil
}

func loadCatalog(path string) (*menu.Catalog, error) {
	if path == "" {
		return menu.Default()
	}
	catalog, err := menu.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return catalog, nil
}
