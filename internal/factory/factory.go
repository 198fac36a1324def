// Package factory wires the application's services together with a
// chosen storage backend.
package factory

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/tourmate/tourmate/internal/dependencies/clock"
	"github.com/tourmate/tourmate/internal/services/account"
	"github.com/tourmate/tourmate/internal/services/catalog"
	"github.com/tourmate/tourmate/internal/services/ledger"
	"github.com/tourmate/tourmate/internal/services/leveling"
	"github.com/tourmate/tourmate/internal/services/navigation"
	"github.com/tourmate/tourmate/internal/storage"
	"github.com/tourmate/tourmate/internal/storage/file"
	"github.com/tourmate/tourmate/internal/storage/memory"
	"github.com/tourmate/tourmate/internal/storage/postgres"
	"github.com/tourmate/tourmate/internal/storage/redis"
)

// Storage backend types
const (
	StorageTypeMemory   = "memory"
	StorageTypeFile     = "file"
	StorageTypeRedis    = "redis"
	StorageTypePostgres = "postgres"
)

// App holds all application services and their shared dependencies
type App struct {
	Storage storage.Storage
	Clock   clock.Clock

	CatalogService    *catalog.Service
	AccountService    *account.Service
	LedgerService     *ledger.Service
	LevelingService   *leveling.Service
	NavigationService *navigation.Service
}

// Config holds configuration for creating an App
type Config struct {
	Logger *slog.Logger

	// StorageType selects the backend: memory, file, redis or postgres
	StorageType    string
	FileConfig     file.Config
	RedisConfig    redis.Config
	PostgresConfig postgres.Config

	// CatalogFile optionally overrides the built-in place catalog
	CatalogFile string

	LevelingConfig leveling.Config
	AccountConfig  account.Config

	// AdminUsername/AdminPassword seed an administrative account at
	// startup when set; an existing account is left untouched
	AdminUsername string
	AdminPassword string
}

// New creates an App with all services configured
func New(ctx context.Context, cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	switch cfg.StorageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeFile, "":
		fileStore, err := file.New(cfg.FileConfig, logger)
		if err != nil {
			return nil, fmt.Errorf("creating file storage: %w", err)
		}
		store = fileStore
	case StorageTypeRedis:
		redisStore, err := redis.New(cfg.RedisConfig)
		if err != nil {
			return nil, fmt.Errorf("creating redis storage: %w", err)
		}
		store = redisStore
	case StorageTypePostgres:
		pgStore, err := postgres.New(ctx, cfg.PostgresConfig)
		if err != nil {
			return nil, fmt.Errorf("creating postgres storage: %w", err)
		}
		store = pgStore
	default:
		return nil, fmt.Errorf("unknown storage type: %q", cfg.StorageType)
	}

	app := newWithDependencies(store, clock.New(), cfg, logger)

	if cfg.CatalogFile != "" {
		if err := app.CatalogService.LoadFromFile(cfg.CatalogFile); err != nil {
			return nil, fmt.Errorf("loading catalog: %w", err)
		}
	}

	if cfg.AdminUsername != "" {
		if err := app.AccountService.Seed(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			return nil, fmt.Errorf("seeding admin account: %w", err)
		}
	}

	return app, nil
}

// newWithDependencies wires the services over explicit dependencies.
// Shared with the test factory.
func newWithDependencies(store storage.Storage, clk clock.Clock, cfg Config, logger *slog.Logger) *App {
	// One mutex guards the persisted account document; every service
	// that mutates it takes the same lock
	storeMu := &sync.Mutex{}

	catalogService := catalog.New()
	accountService := account.New(store, clk, cfg.AccountConfig, storeMu, logger)
	ledgerService := ledger.New(store, catalogService, clk, storeMu, logger)
	levelingService := leveling.New(cfg.LevelingConfig)
	navigationService := navigation.New()

	return &App{
		Storage:           store,
		Clock:             clk,
		CatalogService:    catalogService,
		AccountService:    accountService,
		LedgerService:     ledgerService,
		LevelingService:   levelingService,
		NavigationService: navigationService,
	}
}
