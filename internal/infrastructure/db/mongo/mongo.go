package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

const (
	defaultTimeout = 10 * time.Second
	appName        = "arcos-globos-seed"
)

// Config captures the settings for the seed target database.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Store is an open connection to the seed target database.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens a client and pings the server. Seed documents are written
// with majority acknowledgement.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Database == "" {
		return nil, errors.New("mongo connect: database name is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(appName).
		SetWriteConcern(writeconcern.Majority()).
		SetServerSelectionTimeout(timeout)

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping %s: %w", cfg.Database, err)
	}

	return &Store{client: client, db: client.Database(cfg.Database)}, nil
}

// Writer returns a DocumentWriter on the store's database.
func (s *Store) Writer() *Writer {
	return NewWriter(s.db)
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
