package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"fundraiser/internal/adapter/memory"
	"fundraiser/internal/adapter/repo"
	"fundraiser/internal/domain"
	"fundraiser/internal/http/handlers"
	httpapi "fundraiser/internal/http/httpapi"
	"fundraiser/internal/infra"
	"fundraiser/internal/infra/geoip"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()

	// The backend is chosen once here and never switched at runtime.
	var store domain.Store
	if cfg.UseRemoteBackend {
		dbpool, err := infra.NewDBPool(ctx, cfg, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer dbpool.Close()
		store = repo.NewStore(infra.NewSQLRunner(dbpool, logger))
	} else {
		latency := memory.DefaultLatency
		if !cfg.SimulatedLatency {
			latency = memory.Latency{}
		}
		store = memory.New(memory.WithLatency(latency), memory.WithLogger(logger))
	}
	logger.Info().Str("backend", cfg.Backend()).Msg("data backend ready")

	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Str("path", cfg.GeoIPDBPath).Msg("geoip disabled")
	}
	defer func() { _ = resolver.Close() }()

	app := handlers.NewApp(store, logger)
	app.Backend = cfg.Backend()

	router := httpapi.NewRouter(app, httpapi.Options{
		Logger:             logger,
		AllowedOrigins:     cfg.CORSAllowedOrigins,
		CountryLookup:      resolver.Lookup(),
		DonationsPerMinute: cfg.RateLimitPerMin,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on %s", server.Addr())
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
