// @title        Reactions Users API
// @version      1.0
// @description  Create, update, delete and list users with their role and reaction counters.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/foundever/reactions/internal/api"
	"github.com/foundever/reactions/internal/api/handler"
	"github.com/foundever/reactions/internal/core/ports"
	"github.com/foundever/reactions/internal/core/service"
	"github.com/foundever/reactions/internal/infrastructure/config"
	"github.com/foundever/reactions/internal/infrastructure/db/memory"
	mongostore "github.com/foundever/reactions/internal/infrastructure/db/mongo"
	pgstore "github.com/foundever/reactions/internal/infrastructure/db/postgres"
	redisstore "github.com/foundever/reactions/internal/infrastructure/db/redis"
	"github.com/foundever/reactions/pkg/logger"
)

const shutdownTimeout = 30 * time.Second

func main() {
	_ = godotenv.Load()

	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "reactions: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(ctx, nil)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "reactions",
	})

	repo, checks, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	var claims service.UsernameClaimer
	if cfg.Redis.Addr != "" {
		rdb, err := redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer func() { _ = rdb.Close() }()

		claims = redisstore.NewUsernameClaims(rdb, cfg.Redis.ClaimTTL)
		checks = append(checks, handler.DependencyCheck{
			Name: "redis",
			Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis username claims enabled")
	}

	users := service.NewUserService(repo, claims, logger.Component("user_service"))

	e := api.NewRouter(api.Dependencies{
		Users:          users,
		Logger:         logger.Component("http"),
		Checks:         checks,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.StoreDriver).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	log.Info().Msg("server stopped gracefully")
	return nil
}

// openStore opens the repository selected by STORE_DRIVER together with its
// readiness check and a function releasing its connections.
func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.UserRepository, []handler.DependencyCheck, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		store, err := pgstore.Open(ctx, pgstore.Config{
			DSN:             cfg.Postgres.DatabaseURL,
			PoolSize:        cfg.Postgres.PoolSize,
			MaxOverflow:     cfg.Postgres.MaxOverflow,
			ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		}, logger.Component("postgres"))
		if err != nil {
			return nil, nil, nil, err
		}
		checks := []handler.DependencyCheck{{Name: "postgres", Ping: store.Ping}}
		return pgstore.NewUserRepository(store), checks, func() { _ = store.Close() }, nil

	case config.DriverMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:         cfg.Mongo.URI,
			Database:    cfg.Mongo.Database,
			MaxPoolSize: cfg.Mongo.MaxPoolSize,
		})
		if err != nil {
			return nil, nil, nil, err
		}
		repo := mongostore.NewUserRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			_ = mongostore.Disconnect(ctx, client)
			return nil, nil, nil, fmt.Errorf("mongo indexes: %w", err)
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("mongo connection established")

		checks := []handler.DependencyCheck{{
			Name: "mongodb",
			Ping: func(ctx context.Context) error { return client.Ping(ctx, nil) },
		}}
		closeFn := func() {
			if err := mongostore.Disconnect(context.Background(), client); err != nil {
				log.Error().Err(err).Msg("failed to disconnect mongo")
			}
		}
		return repo, checks, closeFn, nil

	default:
		log.Warn().Msg("using in-memory user store; data is lost on restart")
		return memory.NewUserRepository(), nil, func() {}, nil
	}
}
