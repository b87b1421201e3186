package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"everest-finance/config"
	httpLayer "everest-finance/http"
	"everest-finance/repository"
	"everest-finance/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the calculator API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	tiers, err := loadTiers(cfg)
	if err != nil {
		return err
	}

	cache, closeCache := newCache(cmd.Context(), cfg, logger)
	defer closeCache()

	projectionService := service.NewProjectionService(
		repository.NewProjectionRepositoryMemory(repository.DefaultHistorySize),
		cache,
		tiers,
		cfg.CacheTTL,
		logger,
	)
	projectionHandler := httpLayer.NewProjectionHandler(
		projectionService,
		service.NewScheduleService(projectionService),
		service.NewTierComparisonService(projectionService),
		service.NewAdvisorService(cfg.Advisor, logger),
		logger,
	)
	counterHandler := httpLayer.NewCounterHandler(service.NewCounterService(), logger)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      httpLayer.NewRouter(projectionHandler, counterHandler, rateLimiter, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("API listening", zap.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("server failed", zap.Error(err))
		return err
	case <-quit:
		logger.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("error during server shutdown", zap.Error(err))
		return err
	}

	logger.Info("server exited")
	return nil
}

// newCache uses Redis when configured and reachable, the in-memory cache otherwise.
func newCache(ctx context.Context, cfg config.Config, logger *zap.Logger) (repository.CacheRepository, func()) {
	if cfg.RedisAddr == "" {
		return repository.NewMemoryCache(), func() {}
	}

	redisCache := repository.NewRedisCache(cfg.RedisAddr)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := redisCache.Ping(pingCtx); err != nil {
		logger.Warn("redis unavailable, caching in memory", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		_ = redisCache.Close()
		return repository.NewMemoryCache(), func() {}
	}

	logger.Info("caching projections in redis", zap.String("addr", cfg.RedisAddr))
	return redisCache, func() { _ = redisCache.Close() }
}
