package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"withdrawal-report/internal/config"
	"withdrawal-report/internal/database"
	"withdrawal-report/internal/handlers"
	"withdrawal-report/internal/middleware"
	"withdrawal-report/internal/repositories"
	"withdrawal-report/internal/services"
	"withdrawal-report/internal/workbook"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Server.SlogLevel(),
	}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := os.MkdirAll(cfg.Storage.ExportDir, 0o755); err != nil {
		return err
	}

	reportService := services.NewReportService(
		services.NewDatasetStore(),
		workbook.NewReader(),
		workbook.NewWriter(),
		repositories.NewReportFileRepository(db.DB),
		repositories.NewIngestionRunRepository(db.DB),
		services.NewReportLogger(logger),
		services.NewPrometheusMetrics(prometheus.DefaultRegisterer),
		services.ReportServiceConfig{
			ExportDir: cfg.Storage.ExportDir,
			ReportTTL: cfg.Storage.ReportTTL,
			Logger:    logger,
		},
	)

	e := newServer(cfg, db, reportService)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Server starting",
			"address", cfg.Server.Address(),
			"environment", cfg.Server.Environment,
			"db_driver", cfg.Database.Driver,
			"export_dir", cfg.Storage.ExportDir,
		)
		if err := e.Start(cfg.Server.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return services.NewReportPurger(reportService, cfg.Storage.PurgeInterval, logger).Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Server shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newServer(cfg *config.Config, db *database.DB, reportService services.ReportServiceInterface) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		ExposeHeaders: []string{middleware.TraceIDHeader, echo.HeaderContentDisposition},
	}))
	e.Use(echomw.BodyLimit(strconv.FormatInt(cfg.Server.MaxUploadBytes, 10)))
	e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		RequestsPerSecond: cfg.Security.RateLimitPerSecond,
		Burst:             cfg.Security.RateLimitBurst,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/health" || c.Path() == "/metrics"
		},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	handlers.RegisterRoutes(e,
		handlers.NewHealthCheckHandler(db),
		handlers.NewDatasetHandler(reportService),
		handlers.NewReportHandler(reportService),
	)

	return e
}
