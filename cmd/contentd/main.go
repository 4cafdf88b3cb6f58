package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hanko-field/storefront-content/internal/handlers"
	"github.com/hanko-field/storefront-content/internal/platform/config"
	"github.com/hanko-field/storefront-content/internal/platform/observability"
	"github.com/hanko-field/storefront-content/internal/registry"
	"github.com/hanko-field/storefront-content/internal/services"
)

func main() {
	startedAt := time.Now().UTC()

	baseLogger, err := observability.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = baseLogger.Sync()
	}()

	logger := baseLogger.Named("contentd")

	cfg, err := config.Load()
	if err != nil {
		var invalid *config.ValidationError
		if errors.As(err, &invalid) {
			logger.Fatal("invalid configuration", zap.Strings("fields", invalid.Fields()))
		}
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	reg := registry.ForTenant(cfg.Content.DefaultTenant)
	logger.Info("content registry built",
		zap.String("tenant", cfg.Content.DefaultTenant),
		zap.Int("pages", reg.Len()),
		zap.Int("navigation", len(reg.Navigation())),
	)

	pageService, err := services.NewPageService(services.PageServiceDeps{
		Registry: reg,
		Logger:   logger.Named("pages"),
	})
	if err != nil {
		logger.Fatal("failed to initialise page service", zap.Error(err))
	}
	navigationService, err := services.NewNavigationService(services.NavigationServiceDeps{Registry: reg})
	if err != nil {
		logger.Fatal("failed to initialise navigation service", zap.Error(err))
	}

	pageHandlers := handlers.NewPageHandlers(
		handlers.WithPageService(pageService),
		handlers.WithPageDefaults(cfg.Content.DefaultTenant, cfg.Content.DefaultLocale),
		handlers.WithPageCacheMaxAge(cfg.Content.CacheMaxAge),
		handlers.WithPageQueryLimits(cfg.Content.QueryDefaultLimit, cfg.Content.QueryMaxLimit),
		handlers.WithRemoteTimeout(cfg.Content.RemoteTimeout),
		handlers.WithRemoteCache(cfg.Content.RemoteCacheSize),
	)
	navigationHandlers := handlers.NewNavigationHandlers(
		handlers.WithNavigationService(navigationService),
		handlers.WithNavigationDefaultTenant(cfg.Content.DefaultTenant),
		handlers.WithNavigationCacheMaxAge(cfg.Content.CacheMaxAge),
	)
	healthHandlers := handlers.NewHealthHandlers(
		handlers.WithHealthBuildInfo(buildInfoFromEnv(cfg, startedAt)),
		handlers.WithReadinessCheck("registry", func(context.Context) error {
			if reg.Len() == 0 {
				return errors.New("registry is empty")
			}
			return nil
		}),
	)

	middlewares := []func(http.Handler) http.Handler{
		observability.InjectLoggerMiddleware(logger.Named("http")),
		observability.TraceMiddleware(cfg.Observability.TraceProjectID),
		observability.RecoveryMiddleware(logger.Named("http")),
		observability.RequestLoggerMiddleware(),
	}

	router := handlers.NewRouter(
		handlers.WithMiddlewares(middlewares...),
		handlers.WithHealthHandlers(healthHandlers),
		handlers.WithContentMiddlewares(handlers.TenantMiddleware(
			handlers.NewStaticTenantResolver(cfg.Content.TenantAliases),
			cfg.Content.DefaultTenant,
		)),
		handlers.WithPageRoutes(pageHandlers.Routes),
		handlers.WithNavigationRoutes(navigationHandlers.Routes),
	)
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverLogger := logger.Named("http").With(zap.String("addr", server.Addr))
	go func() {
		serverLogger.Info("storefront content listening", zap.String("environment", cfg.Environment))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverLogger.Fatal("http server error", zap.Error(err))
		}
	}()

	<-shutdown
	logger.Info("shutdown signal received; draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func buildInfoFromEnv(cfg config.Config, started time.Time) handlers.BuildInfo {
	version := strings.TrimSpace(os.Getenv("CONTENT_BUILD_VERSION"))
	if version == "" {
		version = "dev"
	}
	commit := strings.TrimSpace(os.Getenv("CONTENT_BUILD_COMMIT_SHA"))
	if commit == "" {
		commit = "unknown"
	}
	return handlers.BuildInfo{
		Version:     version,
		CommitSHA:   commit,
		Environment: cfg.Environment,
		StartedAt:   started,
	}
}
