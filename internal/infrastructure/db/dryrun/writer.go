// Package dryrun provides the default DocumentWriter: it records what would
// be written and touches no external system.
package dryrun

import (
	"context"

	"github.com/rs/zerolog"
)

// Writer logs each document at debug level and never fails.
type Writer struct {
	log zerolog.Logger
}

func NewWriter(log zerolog.Logger) *Writer {
	return &Writer{log: log}
}

// Upsert satisfies ports.DocumentWriter.
func (w *Writer) Upsert(_ context.Context, collection, id string, doc map[string]any) error {
	w.log.Debug().
		Str("collection", collection).
		Str("id", id).
		Interface("document", doc).
		Msg("dry run: document not written")
	return nil
}
