package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Andre121314115/arcos-globos/internal/core/domain"
)

// Writer implements ports.DocumentWriter on MongoDB. The seed record ID is
// used as the document _id.
type Writer struct {
	db *mongo.Database
}

func NewWriter(db *mongo.Database) *Writer {
	return &Writer{db: db}
}

// Upsert replaces the document with _id = id, inserting it when missing.
func (w *Writer) Upsert(ctx context.Context, collection, id string, doc map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := w.db.Collection(collection).ReplaceOne(
		ctx,
		bson.M{"_id": id},
		toBSON(id, doc),
		options.Replace().SetUpsert(true),
	)
	return err
}

// toBSON copies doc into a bson.M with _id set, storing wire timestamps as
// BSON dates. Nil values are kept so they are written as null.
func toBSON(id string, doc map[string]any) bson.M {
	out := bson.M{"_id": id}
	for k, v := range doc {
		if ts, ok := v.(domain.WireTimestamp); ok {
			out[k] = ts.Time()
			continue
		}
		out[k] = v
	}
	return out
}
