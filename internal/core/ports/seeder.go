package ports

import (
	"context"

	"github.com/Andre121314115/arcos-globos/internal/core/domain"
)

// Seeder announces, and hands to a DocumentWriter, the seed record sets.
type Seeder interface {
	AnnounceUsers(ctx context.Context, users []domain.User) error
	AnnounceTemplates(ctx context.Context, templates []domain.Template) error
	Run(ctx context.Context) error
}
