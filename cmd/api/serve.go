package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	dbadapter "agenda/internal/adapter/db"
	httpadapter "agenda/internal/adapter/http"
	"agenda/internal/adapter/http/handlers"
	httpmiddleware "agenda/internal/adapter/http/middleware"
	appservice "agenda/internal/app/service"
	"agenda/internal/config"
	"agenda/internal/telemetry"
	"agenda/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serve = runServe

func serveCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the HTTP API on APP_PORT. The schema is migrated before the
listener opens; a migration failure aborts startup.

Examples:
  agenda serve
  agenda serve --port 9090`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			if port != "" {
				cfg.AppPort = port
			}
			return serve(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides APP_PORT)")

	return cmd
}

func runServe(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger, flush, err := setupLogger(cfg)
	if err != nil {
		return err
	}
	defer flush()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	if cfg.OTLPEndpoint != "" {
		tp, err := telemetry.InitTracerProvider(ctx, cfg.ServiceName, cfg.OTLPEndpoint, cfg.AppEnv)
		if err != nil {
			return fmt.Errorf("failed to initialize tracer provider: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			if err := tp.Shutdown(shutdownCtx); err != nil {
				logger.Warn("failed to shutdown tracer provider", zap.Error(err))
			}
		}()
		logger.Info("tracing enabled", zap.String("endpoint", cfg.OTLPEndpoint))
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		return fmt.Errorf("failed to open sqlite store: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close sqlite store", zap.Error(err))
		}
	}()

	if err := dbadapter.EnsureSchema(ctx, db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	taskRepository := dbadapter.NewTaskRepository(db)
	subtaskRepository := dbadapter.NewSubtaskRepository(db)
	taskService := appservice.NewTaskService(taskRepository, subtaskRepository)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := httpmiddleware.NewMetrics(registry)
	if err != nil {
		return fmt.Errorf("failed to register http metrics: %w", err)
	}
	if err := httpmiddleware.RegisterTaskGauge(registry, taskService.CountTasks); err != nil {
		return fmt.Errorf("failed to register task gauge: %w", err)
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}
	r.Use(
		gin.Recovery(),
		httpmiddleware.RequestIDMiddleware(),
		httpmiddleware.TracingMiddleware(),
		metrics.Middleware(),
		httpmiddleware.GinZapMiddleware(logger),
	)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	healthHandler := handlers.NewHealthHandler(db, taskService)
	taskHandler := handlers.NewTaskHandler(taskService)
	subtaskHandler := handlers.NewSubtaskHandler(taskService)
	httpadapter.RegisterRoutes(r, healthHandler, taskHandler, subtaskHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr), zap.String("db_path", cfg.DbPath))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("could not start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("server exited")
	return nil
}
