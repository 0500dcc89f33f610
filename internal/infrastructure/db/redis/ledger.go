package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const ledgerTTL = 30 * 24 * time.Hour

// Ledger implements ports.SeedLedger on Redis.
// Key format: seed:<collection>:<id>, value: payload fingerprint.
type Ledger struct {
	client *redis.Client
}

func NewLedger(client *redis.Client) *Ledger {
	return &Ledger{client: client}
}

// Unchanged reports whether fingerprint equals the one last marked for the
// document. An empty fingerprint never matches.
func (l *Ledger) Unchanged(ctx context.Context, collection, id, fingerprint string) (bool, error) {
	if fingerprint == "" {
		return false, nil
	}
	stored, err := l.client.Get(ctx, key(collection, id)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("ledger check: %w", err)
	}
	return stored == fingerprint, nil
}

// Mark stores fingerprint for the document (expires after ledgerTTL).
func (l *Ledger) Mark(ctx context.Context, collection, id, fingerprint string) error {
	if err := l.client.Set(ctx, key(collection, id), fingerprint, ledgerTTL).Err(); err != nil {
		return fmt.Errorf("ledger mark: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (l *Ledger) Close() error {
	return l.client.Close()
}

func key(collection, id string) string {
	return fmt.Sprintf("seed:%s:%s", collection, id)
}
