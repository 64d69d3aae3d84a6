package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/velomad/rideplanner/internal/adapter/handler/http"
	"github.com/velomad/rideplanner/internal/adapter/logger"
	"github.com/velomad/rideplanner/internal/adapter/prometheus"
	"github.com/velomad/rideplanner/internal/adapter/sqlite"
	"github.com/velomad/rideplanner/internal/config"
	"github.com/velomad/rideplanner/internal/core/ports"
	"github.com/velomad/rideplanner/internal/core/services"
)

type App struct {
	Config     *config.Container
	Logger     ports.LoggerPort
	DB         *sql.DB
	HTTPRouter *http.Router
}

func New(ctx context.Context, cfg *config.Container) (*App, error) {
	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app": cfg.App.Name,
		"env": cfg.App.Env,
	})

	// Open DB (schema is created idempotently on every start)
	db, err := sqlite.Open(cfg.DB.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	loggerAdapter.Info("Database ready", map[string]interface{}{
		"path": cfg.DB.Path,
	})

	// Validate
	validate := services.NewValidator()

	// Observability
	metrics := prometheus.NewPrometheusAdapter()

	// Repositories
	shopRepo := sqlite.NewShopRepository(db)
	rideRepo := sqlite.NewRideRepository(db)

	// Services
	shopService := services.NewShopService(shopRepo, loggerAdapter, validate)
	rideService := services.NewRideService(rideRepo, shopRepo, loggerAdapter, validate)

	// HTTP Handlers
	shopHandler := http.NewShopHandler(shopService, loggerAdapter, metrics)
	rideHandler := http.NewRideHandler(rideService, loggerAdapter, metrics)

	// Init HTTP router
	router, err := http.NewRouter(
		cfg.HTTP,
		shopHandler,
		rideHandler,
		metrics,
	)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}

	return &App{
		Config:     cfg,
		Logger:     loggerAdapter,
		DB:         db,
		HTTPRouter: router,
	}, nil
}

// Runs the HTTP server
func (a *App) Run() error {
	listenAddr := fmt.Sprintf("%s:%s", a.Config.HTTP.URL, a.Config.HTTP.Port)
	a.Logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": listenAddr,
	})

	if err := a.HTTPRouter.Serve(listenAddr); err != nil {
		a.Logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// Stops all services
func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("Shutting down gracefully...", nil)

	if err := a.DB.Close(); err != nil {
		a.Logger.Error("Database close error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	a.Logger.Info("Application stopped successfully", nil)
	return nil
}
