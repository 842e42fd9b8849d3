package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/Black-And-White-Club/nascon/app/shared/attr"
	"github.com/Black-And-White-Club/nascon/app/shared/database"
	"github.com/Black-And-White-Club/nascon/app/shared/eventbus"
	"github.com/Black-And-White-Club/nascon/app/shared/observability"
	"github.com/Black-And-White-Club/nascon/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/bun"
)

const shutdownTimeout = 15 * time.Second

// App holds the process-wide dependencies.
type App struct {
	Config   *config.Config
	Obs      observability.Observability
	DB       *bun.DB
	EventBus eventbus.EventBus
	Modules  *ModuleRegistry
	Router   http.Handler

	server        *http.Server
	metricsServer *http.Server
	wg            sync.WaitGroup
}

// NewApp connects to Postgres and the event bus and builds every module.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	obs := observability.New(observability.Config{
		ServiceName: cfg.Observability.ServiceName,
		Environment: cfg.Observability.Environment,
	})
	logger := obs.Logger

	db := database.Open(cfg.Postgres.DSN)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logger.InfoContext(ctx, "Connected to database")

	bus, err := eventbus.New(cfg.NATS.URL, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create event bus: %w", err)
	}

	modules, err := NewModuleRegistry(ctx, cfg, obs, bus, db)
	if err != nil {
		_ = bus.Close()
		_ = db.Close()
		return nil, err
	}

	a := &App{
		Config:   cfg,
		Obs:      obs,
		DB:       db,
		EventBus: bus,
		Modules:  modules,
	}
	a.Router = NewRouter(RouterConfig{
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		ServeMetrics:   cfg.Observability.MetricsAddress == "",
	}, logger, obs.Registry, modules)

	a.server = &http.Server{
		Addr:         cfg.HTTP.Address,
		Handler:      a.Router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}
	if addr := cfg.Observability.MetricsAddress; addr != "" {
		a.metricsServer = &http.Server{
			Addr:              addr,
			Handler:           promhttp.HandlerFor(obs.Registry, promhttp.HandlerOpts{Registry: obs.Registry}),
			ReadHeaderTimeout: 5 * time.Second,
		}
	}
	return a, nil
}

// Run serves HTTP and consumes events until ctx is cancelled, then shuts
// everything down.
func (a *App) Run(ctx context.Context) error {
	logger := a.Obs.Logger

	if err := a.Modules.Event.Run(ctx); err != nil {
		return err
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.Modules.Activity.Run(ctx); err != nil {
			logger.ErrorContext(ctx, "Activity feed stopped", attr.Error(err))
		}
	}()

	errCh := make(chan error, 2)
	go func() {
		logger.InfoContext(ctx, "HTTP server listening", attr.String("address", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()
	if a.metricsServer != nil {
		go func() {
			logger.InfoContext(ctx, "Metrics server listening", attr.String("address", a.metricsServer.Addr))
			if err := a.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("metrics server: %w", err)
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown requested")
	case runErr = <-errCh:
		logger.Error("Server failed", attr.Error(runErr))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.Close(shutdownCtx); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

// Close stops the servers, background workers, event bus and database in
// that order.
func (a *App) Close(ctx context.Context) error {
	logger := a.Obs.Logger
	var errs []error

	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("http shutdown: %w", err))
		}
	}
	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics shutdown: %w", err))
		}
	}
	if err := a.Modules.Activity.Close(); err != nil {
		errs = append(errs, err)
	}
	a.wg.Wait()
	if err := a.Modules.Event.Close(ctx); err != nil {
		errs = append(errs, err)
	}
	if err := a.EventBus.Close(); err != nil {
		errs = append(errs, fmt.Errorf("event bus close: %w", err))
	}
	if err := a.DB.Close(); err != nil {
		errs = append(errs, fmt.Errorf("database close: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	logger.Info("Application shut down gracefully")
	return nil
}
