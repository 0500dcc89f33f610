package ports

import "context"

// DocumentWriter persists a single document, creating or replacing it.
// doc maps field names to values; domain.WireTimestamp values mark instants.
type DocumentWriter interface {
	Upsert(ctx context.Context, collection, id string, doc map[string]any) error
}
