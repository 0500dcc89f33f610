package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/Andre121314115/arcos-globos/internal/core/domain"
)

// Seed modes select the DocumentWriter used by a run.
const (
	ModeDryRun    = "dry-run"
	ModeFirestore = "firestore"
	ModeMongo     = "mongo"
)

type Config struct {
	Mode      string        `env:"SEED_MODE,    default=dry-run"`
	Timeout   time.Duration `env:"SEED_TIMEOUT, default=30s"`
	LogLevel  string        `env:"LOG_LEVEL,    default=info"`
	LogPretty bool          `env:"LOG_PRETTY,   default=false"`

	Firestore FirestoreConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	Metrics   MetricsConfig
}

type FirestoreConfig struct {
	ProjectID       string `env:"FIRESTORE_PROJECT_ID"`
	CredentialsFile string `env:"FIRESTORE_CREDENTIALS_FILE"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=arcos_globos"`
}

// RedisConfig enables the seed ledger when Addr is set.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

type MetricsConfig struct {
	PushURL string `env:"PUSHGATEWAY_URL"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the timeout, the mode and the settings that mode depends on.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("config: SEED_TIMEOUT must be positive, got %s", c.Timeout)
	}
	switch c.Mode {
	case ModeDryRun, ModeMongo:
		return nil
	case ModeFirestore:
		if c.Firestore.ProjectID == "" {
			return fmt.Errorf("config: FIRESTORE_PROJECT_ID is required in %s mode", ModeFirestore)
		}
		return nil
	default:
		return fmt.Errorf("config: %w %q", domain.ErrUnknownMode, c.Mode)
	}
}

// LedgerEnabled reports whether writes should go through the Redis ledger.
// Dry runs write nothing, so they never consult it.
func (c *Config) LedgerEnabled() bool {
	return c.Mode != ModeDryRun && c.Redis.Addr != ""
}
