package ports

import "context"

// SeedLedger remembers the fingerprint of the last payload written for a
// document so that re-runs can skip documents that did not change.
type SeedLedger interface {
	// Unchanged reports whether fingerprint matches the last one marked for
	// collection/id.
	Unchanged(ctx context.Context, collection, id, fingerprint string) (bool, error)
	Mark(ctx context.Context, collection, id, fingerprint string) error
}
