package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"localmeta/internal/domain"
	"localmeta/internal/domain/entities"
	"localmeta/internal/ports/output"
)

// DBTX is the subset of pgx shared by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const metadataColumns = `id, kind, name, description,
	creator, date_created, changed_by, date_changed,
	retired, date_retired, retired_by, retire_reason`

const (
	insertMetadata = `INSERT INTO localized_metadata (` + metadataColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	selectMetadataByID = `SELECT ` + metadataColumns + `
FROM localized_metadata
WHERE id = $1`

	selectMetadataByKind = `SELECT ` + metadataColumns + `
FROM localized_metadata
WHERE kind = $1 AND ($2 OR NOT retired)
ORDER BY date_created, id`

	updateMetadata = `UPDATE localized_metadata SET
	name = $2,
	description = $3,
	changed_by = $4,
	date_changed = $5,
	retired = $6,
	date_retired = $7,
	retired_by = $8,
	retire_reason = $9
WHERE id = $1`

	deleteMetadata = `DELETE FROM localized_metadata WHERE id = $1`
)

var _ output.MetadataRepository = (*MetadataRepository)(nil)

// MetadataRepository implements output.MetadataRepository on PostgreSQL.
// Creator and DateCreated are written once, on insert.
type MetadataRepository struct {
	db DBTX
}

func NewMetadataRepository(db DBTX) *MetadataRepository {
	return &MetadataRepository{db: db}
}

func (r *MetadataRepository) Create(ctx context.Context, m *entities.Metadata) error {
	row := metadataToRow(m)
	_, err := r.db.Exec(ctx, insertMetadata,
		row.ID, row.Kind, row.Name, row.Description,
		row.Creator, row.DateCreated, row.ChangedBy, row.DateChanged,
		row.Retired, row.DateRetired, row.RetiredBy, row.RetireReason,
	)
	if err != nil {
		return fmt.Errorf("create metadata: %w", err)
	}
	return nil
}

func (r *MetadataRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Metadata, error) {
	var row metadataRow
	err := r.db.QueryRow(ctx, selectMetadataByID, pgtype.UUID{Bytes: id, Valid: true}).Scan(row.scanDest()...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get metadata by id: %w", domain.ErrMetadataNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get metadata by id: %w", err)
	}
	return metadataToDomain(row), nil
}

func (r *MetadataRepository) FindByKind(ctx context.Context, kind entities.Kind, includeRetired bool) ([]entities.Metadata, error) {
	rows, err := r.db.Query(ctx, selectMetadataByKind, string(kind), includeRetired)
	if err != nil {
		return nil, fmt.Errorf("get metadata by kind: %w", err)
	}
	defer rows.Close()

	out := make([]entities.Metadata, 0)
	for rows.Next() {
		var row metadataRow
		if err := rows.Scan(row.scanDest()...); err != nil {
			return nil, fmt.Errorf("scan metadata: %w", err)
		}
		out = append(out, *metadataToDomain(row))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get metadata by kind: %w", err)
	}
	return out, nil
}

func (r *MetadataRepository) Update(ctx context.Context, m *entities.Metadata) error {
	row := metadataToRow(m)
	tag, err := r.db.Exec(ctx, updateMetadata,
		row.ID, row.Name, row.Description,
		row.ChangedBy, row.DateChanged,
		row.Retired, row.DateRetired, row.RetiredBy, row.RetireReason,
	)
	if err != nil {
		return fmt.Errorf("update metadata: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update metadata: %w", domain.ErrMetadataNotFound)
	}
	return nil
}

func (r *MetadataRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteMetadata, pgtype.UUID{Bytes: id, Valid: true})
	if err != nil {
		return fmt.Errorf("delete metadata: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete metadata: %w", domain.ErrMetadataNotFound)
	}
	return nil
}
