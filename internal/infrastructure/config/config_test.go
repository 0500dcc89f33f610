package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andre121314115/arcos-globos/internal/core/domain"
)

func TestLoad_DefaultsAreDryRun(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, ModeDryRun, cfg.Mode)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogPretty)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "arcos_globos", cfg.Mongo.Database)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Empty(t, cfg.Metrics.PushURL)
	assert.False(t, cfg.LedgerEnabled())
}

func TestLoad_FirestoreMode(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"SEED_MODE":            "firestore",
		"FIRESTORE_PROJECT_ID": "arcos-globos-prod",
		"REDIS_ADDR":           "localhost:6379",
		"SEED_TIMEOUT":         "5s",
	}))
	require.NoError(t, err)

	assert.Equal(t, ModeFirestore, cfg.Mode)
	assert.Equal(t, "arcos-globos-prod", cfg.Firestore.ProjectID)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.True(t, cfg.LedgerEnabled())
}

func TestLoad_FirestoreModeRequiresProject(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"SEED_MODE": "firestore",
	}))
	assert.ErrorContains(t, err, "FIRESTORE_PROJECT_ID")
}

func TestLoad_UnknownMode(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"SEED_MODE": "postgres",
	}))
	assert.ErrorIs(t, err, domain.ErrUnknownMode)
}

func TestLoad_NonPositiveTimeoutRejected(t *testing.T) {
	for _, timeout := range []string{"0s", "-5s"} {
		_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
			"SEED_TIMEOUT": timeout,
		}))
		assert.ErrorContains(t, err, "SEED_TIMEOUT must be positive", timeout)
	}
}

func TestLedgerEnabled_IgnoredInDryRun(t *testing.T) {
	cfg := &Config{Mode: ModeDryRun, Redis: RedisConfig{Addr: "localhost:6379"}}
	assert.False(t, cfg.LedgerEnabled())
}
