package service

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"io"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/Andre121314115/arcos-globos/internal/core/domain"
	"github.com/Andre121314115/arcos-globos/internal/core/ports"
)

const banner = "Firestore seed data initialization"

// SeedService prints one line per seed record and hands each payload to a
// DocumentWriter. Records are processed sequentially in declaration order.
type SeedService struct {
	users     []domain.User
	templates []domain.Template
	writer    ports.DocumentWriter
	ledger    ports.SeedLedger // optional
	recorder  ports.SeedRecorder
	out       io.Writer
	mode      string
	log       zerolog.Logger
}

// SeedDeps groups the collaborators of a SeedService.
type SeedDeps struct {
	Users     []domain.User
	Templates []domain.Template
	Writer    ports.DocumentWriter
	// Ledger may be nil, in which case every document is written.
	Ledger ports.SeedLedger
	// Recorder may be nil, in which case outcomes are not recorded.
	Recorder ports.SeedRecorder
	// Out receives the plain-text announce lines.
	Out  io.Writer
	Mode string
	Log  zerolog.Logger
}

// NewSeedService returns a Seeder implementation.
func NewSeedService(deps SeedDeps) ports.Seeder {
	recorder := deps.Recorder
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &SeedService{
		users:     deps.Users,
		templates: deps.Templates,
		writer:    deps.Writer,
		ledger:    deps.Ledger,
		recorder:  recorder,
		out:       deps.Out,
		mode:      deps.Mode,
		log:       deps.Log,
	}
}

// Run prints the banner and record counts, then announces users and templates.
// The run duration is recorded whether or not the run succeeds.
func (s *SeedService) Run(ctx context.Context) (err error) {
	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		s.recorder.RunFinished(s.mode, elapsed)
		if err != nil {
			s.log.Error().Err(err).Dur("elapsed", elapsed).Msg("seed run failed")
			return
		}
		s.log.Info().Dur("elapsed", elapsed).Msg("seed run finished")
	}()

	fmt.Fprintln(s.out, banner)
	fmt.Fprintf(s.out, "Users to create: %d\n", len(s.users))
	fmt.Fprintf(s.out, "Templates to create: %d\n", len(s.templates))

	s.log.Info().
		Str("mode", s.mode).
		Int("users", len(s.users)).
		Int("templates", len(s.templates)).
		Msg("seed run started")

	if err := s.AnnounceUsers(ctx, s.users); err != nil {
		return err
	}
	return s.AnnounceTemplates(ctx, s.templates)
}

// AnnounceUsers prints "Creating user: <email>" for each user and upserts its document.
func (s *SeedService) AnnounceUsers(ctx context.Context, users []domain.User) error {
	for _, u := range users {
		fmt.Fprintf(s.out, "Creating user: %s\n", u.Email)
		if err := s.upsert(ctx, domain.CollectionUsers, u.ID, u.Document()); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
	}
	return nil
}

// AnnounceTemplates prints "Creating template: <name>" for each template and upserts its document.
func (s *SeedService) AnnounceTemplates(ctx context.Context, templates []domain.Template) error {
	for _, t := range templates {
		fmt.Fprintf(s.out, "Creating template: %s\n", t.Name)
		if err := s.upsert(ctx, domain.CollectionTemplates, t.ID, t.Document()); err != nil {
			return fmt.Errorf("seed templates: %w", err)
		}
	}
	return nil
}

func (s *SeedService) upsert(ctx context.Context, collection, id string, doc map[string]any) error {
	var fp string
	if s.ledger != nil {
		fp = fingerprint(doc)
		unchanged, err := s.ledger.Unchanged(ctx, collection, id, fp)
		if err != nil {
			s.log.Warn().Err(err).Str("collection", collection).Str("id", id).Msg("ledger check failed, writing anyway")
		} else if unchanged {
			s.recorder.DocumentHandled(collection, ports.ResultSkipped)
			s.log.Debug().Str("collection", collection).Str("id", id).Msg("document unchanged, skipped")
			return nil
		}
	}

	if err := s.writer.Upsert(ctx, collection, id, doc); err != nil {
		s.recorder.DocumentHandled(collection, ports.ResultFailed)
		return fmt.Errorf("upsert %s: %w", id, err)
	}
	s.recorder.DocumentHandled(collection, ports.ResultWritten)

	if s.ledger != nil {
		if err := s.ledger.Mark(ctx, collection, id, fp); err != nil {
			s.log.Warn().Err(err).Str("collection", collection).Str("id", id).Msg("failed to mark ledger")
		}
	}
	return nil
}

type nopRecorder struct{}

func (nopRecorder) DocumentHandled(string, string) {}
func (nopRecorder) RunFinished(string, time.Duration) {}

// fingerprint hashes the JSON encoding of doc. encoding/json sorts map keys,
// so equal payloads always produce the same fingerprint.
func fingerprint(doc map[string]any) string {
	b, err := json.Marshal(doc)
	if err != nil {
		// Not reachable for seed payloads; an empty fingerprint never matches.
		return ""
	}
	h := fnv.New64a()
	_, _ = h.Write(b)
	return strconv.FormatUint(h.Sum64(), 16)
}
