package main

import (
	httpadapter "ad-strategy/internal/adapter/http"
	"ad-strategy/internal/adapter/postgres"
	redisadapter "ad-strategy/internal/adapter/redis"
	"ad-strategy/internal/adapter/usecase"
	"ad-strategy/internal/config"
	"ad-strategy/internal/core/port"
	"ad-strategy/internal/db"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
)

const seedCampaigns = 10

// main is the entry point of the strategy service. It loads configuration,
// optionally runs database migrations and connects the run history and
// response cache, then starts the HTTP server. On receiving a termination
// signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	// Initialise structured logger based on configuration.
	logger := cfg.Log.New(os.Stdout, "strategy_service")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var runs port.RunRepository
	if cfg.Psql.Enabled {
		// Optionally run migrations if configured. We use the Psql sub‑config.
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
			} else {
				logger.Info("migrations applied successfully")
			}
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()
		runs = postgres.NewRunRepository(pool)
	} else {
		logger.Info("run history disabled")
	}

	var cache port.StrategyCache
	if cfg.Redis.Enabled {
		client, err := redisadapter.NewClient(ctx, cfg.Redis)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return
		}
		defer client.Close()
		cache = redisadapter.NewStrategyCache(client, cfg.Redis.TTL)
	} else {
		logger.Info("response cache disabled")
	}

	svc := usecase.NewStrategyUseCase(runs, cache, logger)

	if cfg.Psql.Enabled && cfg.Psql.Seed {
		if err = db.Seed(ctx, svc, seedCampaigns); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo strategy runs seeded", slog.Int("count", seedCampaigns))
		}
	}

	handler := httpadapter.NewHandler(svc, logger, httpadapter.Options{
		Env:            cfg.Env,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		RateLimit:      cfg.HTTP.RateLimit,
		RateBurst:      cfg.HTTP.RateBurst,
	})
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err = g.Wait(); err != nil {
		logger.Error("server error", slog.Any("error", err))
		return
	}
	logger.Info("server gracefully stopped")
	exitCode = 0
}
