package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tourmate/tourmate/internal/api/handler"
	"github.com/tourmate/tourmate/internal/api/middleware"
	"github.com/tourmate/tourmate/internal/services/account"
	"github.com/tourmate/tourmate/internal/services/catalog"
	"github.com/tourmate/tourmate/internal/services/ledger"
	"github.com/tourmate/tourmate/internal/services/leveling"
	"github.com/tourmate/tourmate/internal/services/navigation"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	AccountService    *account.Service
	LedgerService     *ledger.Service
	LevelingService   *leveling.Service
	NavigationService *navigation.Service
	CatalogService    *catalog.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	accountHandler := handler.NewAccountHandler(cfg.AccountService, cfg.LevelingService)
	visitHandler := handler.NewVisitHandler(cfg.LedgerService, cfg.LevelingService)
	navigationHandler := handler.NewNavigationHandler(cfg.NavigationService, cfg.CatalogService)
	placeHandler := handler.NewPlaceHandler(cfg.CatalogService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AccountService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Account routes (no auth required for registering/logging in)
	api.HandleFunc("/accounts/register", accountHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/accounts/login", accountHandler.Login).Methods(http.MethodPost)

	// Protected account routes
	accounts := api.PathPrefix("/accounts").Subrouter()
	accounts.Use(authMiddleware)
	accounts.HandleFunc("/logout", accountHandler.Logout).Methods(http.MethodPost)
	accounts.HandleFunc("/me", accountHandler.GetMe).Methods(http.MethodGet)

	// Visit ledger routes (all require auth)
	visits := api.PathPrefix("/visits").Subrouter()
	visits.Use(authMiddleware)
	visits.HandleFunc("", visitHandler.Record).Methods(http.MethodPost)
	visits.HandleFunc("", visitHandler.List).Methods(http.MethodGet)
	visits.HandleFunc("/stats", visitHandler.Stats).Methods(http.MethodGet)
	visits.HandleFunc("/{index}/rating", visitHandler.Rate).Methods(http.MethodPatch)

	// Navigation and catalog routes (no auth; read-only reference data)
	api.HandleFunc("/routes/estimate", navigationHandler.Estimate).Methods(http.MethodPost)
	api.HandleFunc("/places", placeHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/places/markers", placeHandler.Markers).Methods(http.MethodGet)
	api.HandleFunc("/courses", placeHandler.Courses).Methods(http.MethodGet)
	api.HandleFunc("/courses/{name}", placeHandler.Course).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
