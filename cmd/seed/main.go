// Command seed prints the arcos-globos seed records and, when a write mode is
// configured, upserts them into the document store.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/Andre121314115/arcos-globos/internal/core/ports"
	"github.com/Andre121314115/arcos-globos/internal/core/service"
	"github.com/Andre121314115/arcos-globos/internal/infrastructure/config"
	"github.com/Andre121314115/arcos-globos/internal/infrastructure/db/dryrun"
	fsdb "github.com/Andre121314115/arcos-globos/internal/infrastructure/db/firestore"
	mongodb "github.com/Andre121314115/arcos-globos/internal/infrastructure/db/mongo"
	redisdb "github.com/Andre121314115/arcos-globos/internal/infrastructure/db/redis"
	"github.com/Andre121314115/arcos-globos/internal/infrastructure/metrics"
	"github.com/Andre121314115/arcos-globos/internal/seeddata"
	"github.com/Andre121314115/arcos-globos/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, newWriter); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		stop()
		os.Exit(1)
	}
}

const pushTimeout = 5 * time.Second

// writerFactory builds the DocumentWriter for cfg.Mode and returns its cleanup.
type writerFactory func(ctx context.Context, cfg *config.Config) (ports.DocumentWriter, func(), error)

func run(ctx context.Context, out io.Writer, buildWriter writerFactory) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
		Fields: map[string]string{"run_id": uuid.NewString()},
	})

	if cfg.Metrics.PushURL != "" {
		// Failed runs are pushed too. The run context may already be done.
		defer func() {
			pushCtx, cancel := context.WithTimeout(context.Background(), pushTimeout)
			defer cancel()
			if err := metrics.Push(pushCtx, cfg.Metrics.PushURL); err != nil {
				log.Warn().Err(err).Msg("metrics push failed")
			}
		}()
	}

	catalog, err := seeddata.Load()
	if err != nil {
		return fmt.Errorf("seed data: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	writer, closeWriter, err := buildWriter(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeWriter()

	ledger, closeLedger, err := newLedger(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeLedger()

	seeder := service.NewSeedService(service.SeedDeps{
		Users:     catalog.Users,
		Templates: catalog.Templates,
		Writer:    writer,
		Ledger:    ledger,
		Recorder:  metrics.NewRecorder(),
		Out:       out,
		Mode:      cfg.Mode,
		Log:       log,
	})
	return seeder.Run(ctx)
}

// newWriter is the production writerFactory.
func newWriter(ctx context.Context, cfg *config.Config) (ports.DocumentWriter, func(), error) {
	log := logger.Get()
	switch cfg.Mode {
	case config.ModeFirestore:
		client, err := fsdb.Connect(ctx, fsdb.Config{
			ProjectID:       cfg.Firestore.ProjectID,
			CredentialsFile: cfg.Firestore.CredentialsFile,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("project", cfg.Firestore.ProjectID).Msg("writing to firestore")
		return fsdb.NewWriter(client), func() { _ = client.Close() }, nil

	case config.ModeMongo:
		store, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("writing to mongodb")
		return store.Writer(), func() { _ = store.Close(context.Background()) }, nil

	default:
		return dryrun.NewWriter(log), func() {}, nil
	}
}

// newLedger returns a nil ledger unless cfg enables it.
func newLedger(ctx context.Context, cfg *config.Config) (ports.SeedLedger, func(), error) {
	if !cfg.LedgerEnabled() {
		return nil, func() {}, nil
	}
	ledger, err := redisdb.OpenLedger(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		return nil, nil, err
	}
	log := logger.Get()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("seed ledger enabled")
	return ledger, func() { _ = ledger.Close() }, nil
}
