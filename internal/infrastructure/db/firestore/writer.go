package firestore

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/Andre121314115/arcos-globos/internal/core/domain"
)

// Writer implements ports.DocumentWriter on Firestore.
type Writer struct {
	client *firestore.Client
}

func NewWriter(client *firestore.Client) *Writer {
	return &Writer{client: client}
}

// Upsert replaces the document collection/id with doc.
func (w *Writer) Upsert(ctx context.Context, collection, id string, doc map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := w.client.Collection(collection).Doc(id).Set(ctx, toFirestore(doc))
	return err
}

// toFirestore converts wire timestamps into time.Time so they are stored as
// native Firestore timestamps.
func toFirestore(doc map[string]any) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		if ts, ok := v.(domain.WireTimestamp); ok {
			out[k] = ts.Time()
			continue
		}
		out[k] = v
	}
	return out
}
