package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Store drivers accepted by STORE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

type Config struct {
	Port        string `env:"PORT,         default=8000"`
	Env         string `env:"ENV,          default=development"`
	LogLevel    string `env:"LOG_LEVEL,    default=info"`
	StoreDriver string `env:"STORE_DRIVER, default=postgres"`

	Postgres PostgresConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	CORS     CORSConfig
}

type PostgresConfig struct {
	DatabaseURL     string        `env:"DATABASE_URL"`
	PoolSize        int           `env:"DB_POOL_SIZE,         default=5"`
	MaxOverflow     int           `env:"DB_MAX_OVERFLOW,      default=10"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME, default=30m"`
}

type MongoConfig struct {
	URI         string `env:"MONGO_URI,           default=mongodb://localhost:27017"`
	Database    string `env:"MONGO_DB,            default=reactions"`
	MaxPoolSize uint64 `env:"MONGO_MAX_POOL_SIZE, default=15"`
}

// RedisConfig is optional. An empty Addr disables the username claim guard.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR"`
	DB       int           `env:"REDIS_DB,           default=0"`
	ClaimTTL time.Duration `env:"USERNAME_CLAIM_TTL, default=10s"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS, default=http://localhost:3000,https://foundeaver.ai"`
}

// IsDevelopment reports whether the service runs in a local environment.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// Validate checks cross-field constraints envconfig cannot express.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverPostgres:
		if c.Postgres.DatabaseURL == "" {
			return fmt.Errorf("config: DATABASE_URL is required when STORE_DRIVER=%s", DriverPostgres)
		}
	case DriverMongo:
		if c.Mongo.URI == "" {
			return fmt.Errorf("config: MONGO_URI is required when STORE_DRIVER=%s", DriverMongo)
		}
		if c.Mongo.MaxPoolSize == 0 {
			return fmt.Errorf("config: MONGO_MAX_POOL_SIZE must be positive")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.StoreDriver)
	}

	if c.Postgres.PoolSize <= 0 {
		return fmt.Errorf("config: DB_POOL_SIZE must be positive, got %d", c.Postgres.PoolSize)
	}
	if c.Postgres.MaxOverflow < 0 {
		return fmt.Errorf("config: DB_MAX_OVERFLOW must not be negative, got %d", c.Postgres.MaxOverflow)
	}
	return nil
}

// Load reads configuration from the given lookuper using go-envconfig and
// validates it. Pass nil to read the process environment.
func Load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	if lookuper == nil {
		lookuper = envconfig.OsLookuper()
	}

	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
