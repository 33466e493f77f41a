package output

import (
	"context"

	"github.com/google/uuid"

	"localmeta/internal/domain/entities"
)

// MetadataRepository persists metadata records. Lookups of a missing record
// return an error wrapping domain.ErrMetadataNotFound.
type MetadataRepository interface {
	Create(ctx context.Context, m *entities.Metadata) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Metadata, error)
	FindByKind(ctx context.Context, kind entities.Kind, includeRetired bool) ([]entities.Metadata, error)
	Update(ctx context.Context, m *entities.Metadata) error
	Delete(ctx context.Context, id uuid.UUID) error
}
