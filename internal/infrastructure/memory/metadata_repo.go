package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"localmeta/internal/domain"
	"localmeta/internal/domain/entities"
	"localmeta/internal/ports/output"
)

var _ output.MetadataRepository = (*MetadataRepository)(nil)

// MetadataRepository is an in-memory output.MetadataRepository. It stores
// copies, so callers never share state with the store.
type MetadataRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*entities.Metadata
}

func NewMetadataRepository() *MetadataRepository {
	return &MetadataRepository{records: make(map[uuid.UUID]*entities.Metadata)}
}

func (r *MetadataRepository) Create(_ context.Context, m *entities.Metadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[m.ID]; ok {
		return fmt.Errorf("create metadata: id %s already exists", m.ID)
	}
	r.records[m.ID] = m.Clone()
	return nil
}

func (r *MetadataRepository) FindByID(_ context.Context, id uuid.UUID) (*entities.Metadata, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.records[id]
	if !ok {
		return nil, fmt.Errorf("get metadata by id: %w", domain.ErrMetadataNotFound)
	}
	return m.Clone(), nil
}

func (r *MetadataRepository) FindByKind(_ context.Context, kind entities.Kind, includeRetired bool) ([]entities.Metadata, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Metadata, 0)
	for _, m := range r.records {
		if m.Kind != kind || (m.IsRetired() && !includeRetired) {
			continue
		}
		out = append(out, *m.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].DateCreated.Equal(out[j].DateCreated) {
			return out[i].DateCreated.Before(out[j].DateCreated)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (r *MetadataRepository) Update(_ context.Context, m *entities.Metadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.records[m.ID]
	if !ok {
		return fmt.Errorf("update metadata: %w", domain.ErrMetadataNotFound)
	}
	// Creation attribution is written once, on Create.
	updated := m.Clone()
	updated.Creator = stored.Creator
	updated.DateCreated = stored.DateCreated
	r.records[m.ID] = updated
	return nil
}

func (r *MetadataRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return fmt.Errorf("delete metadata: %w", domain.ErrMetadataNotFound)
	}
	delete(r.records, id)
	return nil
}
