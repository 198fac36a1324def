package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/tourmate/tourmate/internal/api"
	"github.com/tourmate/tourmate/internal/config"
	"github.com/tourmate/tourmate/internal/factory"
	"github.com/tourmate/tourmate/internal/services/account"
	"github.com/tourmate/tourmate/internal/services/leveling"
	"github.com/tourmate/tourmate/internal/storage/file"
	"github.com/tourmate/tourmate/internal/storage/postgres"
	redisstorage "github.com/tourmate/tourmate/internal/storage/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	factoryCfg := factory.Config{
		Logger:      logger,
		StorageType: cfg.StorageType,
		FileConfig:  file.Config{Path: cfg.SessionFile},
		CatalogFile: cfg.CatalogFile,
		LevelingConfig: leveling.Config{
			XPPerLevel: cfg.XPPerLevel,
		},
		AccountConfig: account.DefaultConfig(),
		AdminUsername: "admin",
		AdminPassword: cfg.AdminPassword,
	}

	switch cfg.StorageType {
	case factory.StorageTypeRedis:
		if cfg.RedisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		factoryCfg.RedisConfig = redisCfg
	case factory.StorageTypePostgres:
		if cfg.PostgresURL == "" {
			logger.Error("POSTGRES_URL required when STORAGE_TYPE=postgres")
			os.Exit(1)
		}
		factoryCfg.PostgresConfig = postgres.Config{URL: cfg.PostgresURL}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := factory.New(ctx, factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	router := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		AccountService:    app.AccountService,
		LedgerService:     app.LedgerService,
		LevelingService:   app.LevelingService,
		NavigationService: app.NavigationService,
		CatalogService:    app.CatalogService,
	})

	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Host
	serverConfig.Port = cfg.Port
	server := api.NewServer(router, serverConfig, logger)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
}
