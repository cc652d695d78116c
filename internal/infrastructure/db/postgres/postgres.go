package postgres

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	defaultTimeout     = 10 * time.Second
	defaultPoolSize    = 5
	defaultMaxOverflow = 10
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Config captures the settings required to open the PostgreSQL pool.
type Config struct {
	DSN             string
	PoolSize        int
	MaxOverflow     int
	ConnMaxLifetime time.Duration
	Timeout         time.Duration
}

// Store owns the process-wide connection pool. Open it once at startup,
// hand it to the repositories, and Close it on shutdown.
type Store struct {
	db  *gorm.DB
	log zerolog.Logger
}

// Open establishes the pool, verifies connectivity with a ping and applies
// pending migrations. PoolSize connections are kept idle and up to
// MaxOverflow more may be opened under load.
func Open(ctx context.Context, cfg Config, log zerolog.Logger) (*Store, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	poolSize := cfg.PoolSize
	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}
	overflow := cfg.MaxOverflow
	if overflow < 0 {
		overflow = defaultMaxOverflow
	}

	start := time.Now()

	db, err := gorm.Open(gormpostgres.Open(cfg.DSN), &gorm.Config{
		TranslateError: true,
		Logger:         newGormLogger(log),
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres pool: %w", err)
	}
	sqlDB.SetMaxIdleConns(poolSize)
	sqlDB.SetMaxOpenConns(poolSize + overflow)
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	if err := applyMigrations(cfg.DSN, log); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	log.Info().
		Int("pool_size", poolSize).
		Int("max_overflow", overflow).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("postgres connection established")

	return &Store{db: db, log: log}, nil
}

// DB exposes the pool for repositories.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Ping checks that a connection can be checked out.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases every pooled connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.Close(); err != nil {
		s.log.Error().Err(err).Msg("failed to close postgres pool")
		return err
	}
	s.log.Info().Msg("postgres connection closed")
	return nil
}

// applyMigrations runs the embedded migrations up to the latest version.
func applyMigrations(dsn string, log zerolog.Logger) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("migrations source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, migrationURL(dsn))
	if err != nil {
		return fmt.Errorf("migrations init: %w", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			log.Warn().AnErr("source_error", srcErr).AnErr("db_error", dbErr).Msg("failed to close migrator")
		}
	}()

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		log.Debug().Msg("migrations: schema up to date")
		return nil
	case err != nil:
		return fmt.Errorf("migrations up: %w", err)
	}

	log.Info().Msg("migrations applied")
	return nil
}

// migrationURL points a postgres URL at migrate's pgx driver so migrations
// parse the DSN (sslmode fallback included) exactly like the gorm pool.
func migrationURL(dsn string) string {
	for _, scheme := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(dsn, scheme) {
			return "pgx5://" + strings.TrimPrefix(dsn, scheme)
		}
	}
	return dsn
}

// gormWriter forwards gorm's printf-style output to zerolog at debug level.
type gormWriter struct {
	log zerolog.Logger
}

func (w gormWriter) Printf(format string, args ...any) {
	w.log.Debug().Msgf(format, args...)
}

func newGormLogger(log zerolog.Logger) gormlogger.Interface {
	level := gormlogger.Warn
	if log.GetLevel() <= zerolog.DebugLevel {
		level = gormlogger.Info
	}
	return gormlogger.New(gormWriter{log: log.With().Str("component", "gorm").Logger()}, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
