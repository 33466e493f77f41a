package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"localmeta/internal/domain"
	"localmeta/internal/domain/entities"
	"localmeta/internal/ports/input"
	"localmeta/internal/ports/output"
)

var _ input.MetadataUseCase = (*MetadataService)(nil)

// MetadataService is the calling layer around the metadata entities: it
// stamps audit fields and applies the policies the entities leave open.
type MetadataService struct {
	repo   output.MetadataRepository
	logger *slog.Logger
	now    func() time.Time
}

func NewMetadataService(repo output.MetadataRepository, logger *slog.Logger) *MetadataService {
	if logger == nil {
		logger = slog.Default()
	}
	return &MetadataService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock replaces the time source used for audit stamps.
func (s *MetadataService) WithClock(now func() time.Time) *MetadataService {
	s.now = now
	return s
}

func (s *MetadataService) Create(ctx context.Context, kind entities.Kind, actor entities.ActorID, name, description string) (*entities.Metadata, error) {
	if !kind.Valid() {
		return nil, domain.ErrUnknownKind
	}
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	m := entities.NewMetadata(kind)
	m.SetName(name)
	if description = strings.TrimSpace(description); description != "" {
		m.SetDescription(description)
	}
	m.RecordCreation(actor, s.now())

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "metadata created",
		slog.String("id", m.ID.String()),
		slog.String("kind", string(kind)),
		slog.String("actor", string(actor)),
	)
	return m, nil
}

func (s *MetadataService) Get(ctx context.Context, id uuid.UUID) (*entities.Metadata, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *MetadataService) List(ctx context.Context, kind entities.Kind, includeRetired bool) ([]entities.Metadata, error) {
	if !kind.Valid() {
		return nil, domain.ErrUnknownKind
	}
	return s.repo.FindByKind(ctx, kind, includeRetired)
}

func (s *MetadataService) Rename(ctx context.Context, id uuid.UUID, actor entities.ActorID, name string) (*entities.Metadata, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	return s.modify(ctx, id, actor, func(m *entities.Metadata) error {
		m.SetName(name)
		return nil
	})
}

// Describe sets the unlocalized description. An empty description clears it.
func (s *MetadataService) Describe(ctx context.Context, id uuid.UUID, actor entities.ActorID, description string) (*entities.Metadata, error) {
	description = strings.TrimSpace(description)
	return s.modify(ctx, id, actor, func(m *entities.Metadata) error {
		if description == "" {
			m.LocalizedDescription().ClearUnlocalized()
			return nil
		}
		m.SetDescription(description)
		return nil
	})
}

func (s *MetadataService) SetTranslation(ctx context.Context, id uuid.UUID, actor entities.ActorID, field input.Field, locale, text string) (*entities.Metadata, error) {
	return s.modify(ctx, id, actor, func(m *entities.Metadata) error {
		lt, err := localizedField(m, field)
		if err != nil {
			return err
		}
		lt.SetTranslation(locale, text)
		return nil
	})
}

func (s *MetadataService) RemoveTranslation(ctx context.Context, id uuid.UUID, actor entities.ActorID, field input.Field, locale string) (*entities.Metadata, error) {
	return s.modify(ctx, id, actor, func(m *entities.Metadata) error {
		lt, err := localizedField(m, field)
		if err != nil {
			return err
		}
		lt.RemoveTranslation(locale)
		return nil
	})
}

// Retire soft-deletes the record. Retiring a retired record replaces the
// previous actor, reason and date.
func (s *MetadataService) Retire(ctx context.Context, id uuid.UUID, actor entities.ActorID, reason string) (*entities.Metadata, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domain.ErrRetireReasonRequired
	}
	m, err := s.modify(ctx, id, actor, func(m *entities.Metadata) error {
		m.Retire(actor, reason, s.now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "metadata retired",
		slog.String("id", id.String()),
		slog.String("actor", string(actor)),
		slog.String("reason", reason),
	)
	return m, nil
}

// Unretire reactivates the record. Unretiring an active record changes
// nothing and is not an error.
func (s *MetadataService) Unretire(ctx context.Context, id uuid.UUID, actor entities.ActorID) (*entities.Metadata, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !m.IsRetired() {
		return m, nil
	}
	m.Unretire()
	m.RecordModification(actor, s.now())
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, fmt.Errorf("update metadata: %w", err)
	}
	s.logger.InfoContext(ctx, "metadata unretired",
		slog.String("id", id.String()),
		slog.String("actor", string(actor)),
	)
	return m, nil
}

// Purge removes the record for good.
func (s *MetadataService) Purge(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.WarnContext(ctx, "metadata purged", slog.String("id", id.String()))
	return nil
}

func (s *MetadataService) modify(ctx context.Context, id uuid.UUID, actor entities.ActorID, apply func(*entities.Metadata) error) (*entities.Metadata, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(m); err != nil {
		return nil, err
	}
	m.RecordModification(actor, s.now())
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, fmt.Errorf("update metadata: %w", err)
	}
	return m, nil
}

func localizedField(m *entities.Metadata, field input.Field) (*entities.LocalizedText, error) {
	switch field {
	case input.FieldName:
		return m.LocalizedName(), nil
	case input.FieldDescription:
		return m.LocalizedDescription(), nil
	default:
		return nil, domain.ErrUnknownField
	}
}

func requireActor(actor entities.ActorID) error {
	if strings.TrimSpace(string(actor)) == "" {
		return domain.ErrActorRequired
	}
	return nil
}
