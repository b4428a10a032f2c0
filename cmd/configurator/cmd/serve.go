package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/Gorgui12/tekalis-configurator/api/openapi"
	"github.com/Gorgui12/tekalis-configurator/internal/api/handlers"
	mw "github.com/Gorgui12/tekalis-configurator/internal/api/middleware"
	"github.com/Gorgui12/tekalis-configurator/internal/config"
	"github.com/Gorgui12/tekalis-configurator/internal/engine"
	"github.com/Gorgui12/tekalis-configurator/internal/store"
	"github.com/Gorgui12/tekalis-configurator/pkg/logger"
)

const (
	startupTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server and catalog refresh scheduler",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cfgFile)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}
}

func runServe(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := newLogger(cfg)

	startCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	b, err := buildSource(startCtx, cfg, log)
	if err != nil {
		return err
	}
	defer b.Close()

	if b.store != nil {
		if err := b.store.Migrate(startCtx); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
	}

	eng, err := engine.NewEngine(b.source,
		engine.WithLogger(logger.Component(log, "engine")),
		engine.WithWeights(*cfg.Scoring.Weights),
		engine.WithDefaultLimit(cfg.Scoring.DefaultLimit),
		engine.WithMaxLimit(cfg.Scoring.MaxLimit),
	)
	if err != nil {
		return fmt.Errorf("creating engine: %w", err)
	}

	// Serve even when the first load fails; /readyz stays 503 until the
	// scheduler manages a refresh.
	if _, err := eng.Refresh(startCtx); err != nil {
		log.Error("initial catalog load failed", "source", eng.SourceName(), "error", err)
	}

	sched, err := engine.NewScheduler(eng, cfg.Catalog.RefreshInterval, logger.Component(log, "scheduler"))
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	sched.Start()
	defer func() { <-sched.Stop().Done() }()

	var st store.Store
	if b.store != nil {
		st = b.store
	}
	e := newServer(cfg, eng, st, log)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server",
		"addr", addr,
		"catalog_source", eng.SourceName(),
		"refresh_interval", cfg.Catalog.RefreshInterval,
	)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// newServer builds the echo instance with middleware, health checks, metrics and
// the huma API routes.
func newServer(cfg *config.Config, eng *engine.Engine, st store.Store, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	httpLog := logger.Component(log, "http")
	e.Use(mw.RequestLog(httpLog))
	e.Use(mw.Recovery(httpLog))
	e.Use(mw.Metrics())

	handlers.RegisterHealthRoutes(e, handlers.NewHealthHandler(eng, st))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	const title = "Configurator API"
	openapi.RegisterRoutes(e, title)

	api := humaecho.New(e, huma.DefaultConfig(title, Version))
	handlers.RegisterRecommendationRoutes(api, handlers.NewRecommendationsHandler(eng))
	handlers.RegisterCatalogRoutes(api, handlers.NewCatalogHandler(eng, st))

	return e
}
