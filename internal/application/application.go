package application

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/avoronkov/maxcalories/internal/api"
	"github.com/avoronkov/maxcalories/internal/catalog"
	"github.com/avoronkov/maxcalories/internal/config"
	"github.com/avoronkov/maxcalories/internal/knapsack"
)

// App encapsulates the application dependencies and HTTP server.
type App struct {
	store   catalog.Store
	handler *api.Handler
	router  http.Handler
	logger  *zap.Logger
	server  *http.Server
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	store := catalog.NewMemoryStore()
	if cfg.CatalogFile != "" {
		menu, err := catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		if err := store.Replace(menu); err != nil {
			return nil, fmt.Errorf("failed to install catalog: %w", err)
		}
		logger.Info("catalog loaded",
			zap.String("path", cfg.CatalogFile),
			zap.Int("items", len(menu)),
		)
	}

	handler := api.NewHandler(knapsack.NewGreedy(), knapsack.NewExhaustive(), store,
		api.WithSolveTimeout(cfg.SolveTimeout),
	)
	router := api.NewRouter(handler, logger,
		api.WithLogging(cfg.EnableRequestLogging),
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	server := NewServer(cfg, router)

	return &App{
		store:   store,
		handler: handler,
		router:  router,
		logger:  logger,
		server:  server,
	}, nil
}

// NewServer creates and configures an HTTP server from the provided configuration.
func NewServer(cfg config.Config, handler http.Handler) *http.Server {
	addr := cfg.Port
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// Start starts the HTTP server in a goroutine and logs the listening address.
func (a *App) Start() error {
	go func() {
		a.logger.Info("server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}

// Store returns the catalog store backing the API.
func (a *App) Store() catalog.Store {
	return a.store
}
