package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"localmeta/internal/domain/entities"
)

// metadataRow mirrors one row of the localized_metadata table.
type metadataRow struct {
	ID           pgtype.UUID
	Kind         string
	Name         pgtype.Text
	Description  pgtype.Text
	Creator      pgtype.Text
	DateCreated  pgtype.Timestamptz
	ChangedBy    pgtype.Text
	DateChanged  pgtype.Timestamptz
	Retired      bool
	DateRetired  pgtype.Timestamptz
	RetiredBy    pgtype.Text
	RetireReason pgtype.Text
}

// scanDest returns the scan targets in metadataColumns order.
func (r *metadataRow) scanDest() []any {
	return []any{
		&r.ID, &r.Kind, &r.Name, &r.Description,
		&r.Creator, &r.DateCreated, &r.ChangedBy, &r.DateChanged,
		&r.Retired, &r.DateRetired, &r.RetiredBy, &r.RetireReason,
	}
}

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

// timeToPgtypeTimestamptz maps the zero time to NULL.
func timeToPgtypeTimestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// stringToPgtypeText maps the empty string to NULL.
func stringToPgtypeText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func localizedTextToPgtype(t *entities.LocalizedText) pgtype.Text {
	s, ok := EncodeLocalizedText(t)
	return pgtype.Text{String: s, Valid: ok}
}

func metadataToRow(m *entities.Metadata) metadataRow {
	return metadataRow{
		ID:           pgtype.UUID{Bytes: m.ID, Valid: true},
		Kind:         string(m.Kind),
		Name:         localizedTextToPgtype(m.LocalizedName()),
		Description:  localizedTextToPgtype(m.LocalizedDescription()),
		Creator:      stringToPgtypeText(string(m.Creator)),
		DateCreated:  timeToPgtypeTimestamptz(m.DateCreated),
		ChangedBy:    stringToPgtypeText(string(m.ChangedBy)),
		DateChanged:  timeToPgtypeTimestamptz(m.DateChanged),
		Retired:      m.Retired,
		DateRetired:  timeToPgtypeTimestamptz(m.DateRetired),
		RetiredBy:    stringToPgtypeText(string(m.RetiredBy)),
		RetireReason: stringToPgtypeText(m.RetireReason),
	}
}

func metadataToDomain(r metadataRow) *entities.Metadata {
	m := &entities.Metadata{
		ID:   uuid.UUID(r.ID.Bytes),
		Kind: entities.Kind(r.Kind),
	}
	m.SetLocalizedName(DecodeLocalizedText(r.Name.String, r.Name.Valid))
	m.SetLocalizedDescription(DecodeLocalizedText(r.Description.String, r.Description.Valid))
	m.Audit = entities.Audit{
		Creator:     entities.ActorID(r.Creator.String),
		DateCreated: pgtypeTimestamptzToTime(r.DateCreated),
		ChangedBy:   entities.ActorID(r.ChangedBy.String),
		DateChanged: pgtypeTimestamptzToTime(r.DateChanged),
	}
	m.Retirement = entities.Retirement{
		Retired:      r.Retired,
		DateRetired:  pgtypeTimestamptzToTime(r.DateRetired),
		RetiredBy:    entities.ActorID(r.RetiredBy.String),
		RetireReason: r.RetireReason.String,
	}
	return m
}
