package input

import (
	"context"

	"github.com/google/uuid"

	"localmeta/internal/domain/entities"
)

// Field selects which localized text of a record an operation targets.
type Field string

const (
	FieldName        Field = "name"
	FieldDescription Field = "description"
)

type MetadataUseCase interface {
	Create(ctx context.Context, kind entities.Kind, actor entities.ActorID, name, description string) (*entities.Metadata, error)
	Get(ctx context.Context, id uuid.UUID) (*entities.Metadata, error)
	List(ctx context.Context, kind entities.Kind, includeRetired bool) ([]entities.Metadata, error)
	Rename(ctx context.Context, id uuid.UUID, actor entities.ActorID, name string) (*entities.Metadata, error)
	Describe(ctx context.Context, id uuid.UUID, actor entities.ActorID, description string) (*entities.Metadata, error)
	SetTranslation(ctx context.Context, id uuid.UUID, actor entities.ActorID, field Field, locale, text string) (*entities.Metadata, error)
	RemoveTranslation(ctx context.Context, id uuid.UUID, actor entities.ActorID, field Field, locale string) (*entities.Metadata, error)
	Retire(ctx context.Context, id uuid.UUID, actor entities.ActorID, reason string) (*entities.Metadata, error)
	Unretire(ctx context.Context, id uuid.UUID, actor entities.ActorID) (*entities.Metadata, error)
	Purge(ctx context.Context, id uuid.UUID) error
}
