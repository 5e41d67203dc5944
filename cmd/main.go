package main

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

	"github.com/lmittmann/tint"

	httpadapter "growth-agent/internal/adapter/http"
	"growth-agent/internal/adapter/llm"
	"growth-agent/internal/adapter/metrics"
	"growth-agent/internal/adapter/postgres"
	redisstore "growth-agent/internal/adapter/redis"
	"growth-agent/internal/adapter/usecase"
	"growth-agent/internal/config"
	"growth-agent/internal/config/configs"
	"growth-agent/internal/core/catalog"
	"growth-agent/internal/core/port"
	"growth-agent/internal/core/prompt"
	"growth-agent/internal/db"
)

const shutdownTimeout = 5 * time.Second

// main loads configuration, prepares storage and the model backend, then
// serves HTTP until SIGINT or SIGTERM.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := newLogger(cfg.Log).With(slog.String("env", cfg.Env))

	cat, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		logger.Error("catalog error", slog.Any("error", err))
		return
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("demo data seeded")
	}

	var usage port.UsageStore
	switch cfg.FreeTier.StoreKind() {
	case "redis":
		client, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return
		}
		defer client.Close()
		usage = redisstore.NewUsageStore(client, "")
	default:
		usage = postgres.NewUsageStore(pool)
	}

	backend, err := llm.NewBackend(llm.BackendConfig{
		Provider:  cfg.LLM.Provider,
		APIKey:    cfg.LLM.APIKey,
		Model:     cfg.LLM.Model,
		BaseURL:   cfg.LLM.BaseURL,
		Timeout:   cfg.LLM.Timeout,
		MaxTokens: cfg.LLM.MaxTokens,
	})
	if err != nil {
		logger.Error("llm backend error", slog.Any("error", err))
		return
	}
	generator := llm.NewClient(backend, prompt.NewBuilder(cat),
		llm.WithRateLimit(cfg.LLM.RPS, 1),
		llm.WithLogger(logger.With(slog.String("provider", cfg.LLM.Provider))))

	m := metrics.New()
	businesses := postgres.NewBusinessRepository(pool)
	gate := usecase.NewRateGate(usage, cfg.FreeTier.Limit, cfg.FreeTier.Window, m)

	handler := httpadapter.NewHandler(httpadapter.Services{
		Content:  usecase.NewContentUseCase(gate, generator, businesses, postgres.NewContentRepository(pool), cat, m),
		Profiles: usecase.NewProfileUseCase(businesses),
		Plans: usecase.NewGrowthPlanUseCase(businesses, postgres.NewGrowthPlanRepository(pool),
			usecase.NewGrowthPlanComposer(generator, cat)),
	}, httpadapter.Options{
		JWTSecret:  cfg.Auth.JWTSecret,
		TrustProxy: cfg.HTTP.TrustProxy,
		Instrument: m.Middleware,
		Metrics:    m.Handler(),
	}, logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("free_tier_store", cfg.FreeTier.StoreKind()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case value := <-quit:
		exitCode = signalExitCode(value)
		logger.Info("shutdown signal received", slog.String("signal", value.String()))
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}

// signalExitCode follows the shell convention of 128 plus the signal number.
func signalExitCode(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return 128 + int(s)
	}
	return 1
}

func newLogger(cfg configs.Logger) *slog.Logger {
	level := cfg.SlogLevel()
	var handler slog.Handler
	switch cfg.SlogFormat() {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	case "tint":
		handler = tint.NewHandler(os.Stdout, &tint.Options{Level: level, TimeFormat: time.Kitchen})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	return slog.New(handler)
}
