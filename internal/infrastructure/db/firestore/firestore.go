package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

const defaultTimeout = 10 * time.Second

// Config captures the settings for a Firestore client. CredentialsFile is
// optional; without it Application Default Credentials are used, and
// FIRESTORE_EMULATOR_HOST is honoured by the client library.
type Config struct {
	ProjectID       string
	CredentialsFile string
	Timeout         time.Duration
}

// Connect creates a Firestore client for the configured project.
func Connect(ctx context.Context, cfg Config) (*firestore.Client, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("firestore connect: project id is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := firestore.NewClient(connectCtx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestore connect: %w", err)
	}
	return client, nil
}
