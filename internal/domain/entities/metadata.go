package entities

import (
	"time"

	"github.com/google/uuid"
)

// Localizable is implemented by entities with a translatable name and
// description.
type Localizable interface {
	Name() (string, bool)
	SetName(name string)
	Description() (string, bool)
	SetDescription(description string)
	LocalizedName() *LocalizedText
	LocalizedDescription() *LocalizedText
}

// Auditable is implemented by entities that track creation and change.
type Auditable interface {
	RecordCreation(actor ActorID, at time.Time)
	RecordModification(actor ActorID, at time.Time)
}

// Retireable is implemented by entities that can be soft-deleted.
type Retireable interface {
	IsRetired() bool
	Retire(actor ActorID, reason string, at time.Time)
	Unretire()
}

var (
	_ Localizable = (*LocalizedMetadata)(nil)
	_ Auditable   = (*LocalizedMetadata)(nil)
	_ Retireable  = (*LocalizedMetadata)(nil)
)

// LocalizedMetadata combines the three capabilities every metadata entity
// carries. Name and description are values, so they exist as soon as the
// struct does.
type LocalizedMetadata struct {
	name        LocalizedText
	description LocalizedText
	Audit
	Retirement
}

// LocalizedName returns the name container for locale-aware access.
func (m *LocalizedMetadata) LocalizedName() *LocalizedText {
	return &m.name
}

// SetLocalizedName replaces the whole name container.
func (m *LocalizedMetadata) SetLocalizedName(name LocalizedText) {
	m.name = name
}

// Name returns the unlocalized name.
func (m *LocalizedMetadata) Name() (string, bool) {
	return m.name.Unlocalized()
}

// SetName sets the unlocalized name; translations are kept.
func (m *LocalizedMetadata) SetName(name string) {
	m.name.SetUnlocalized(name)
}

// LocalizedDescription returns the description container for locale-aware
// access.
func (m *LocalizedMetadata) LocalizedDescription() *LocalizedText {
	return &m.description
}

// SetLocalizedDescription replaces the whole description container.
func (m *LocalizedMetadata) SetLocalizedDescription(description LocalizedText) {
	m.description = description
}

// Description returns the unlocalized description.
func (m *LocalizedMetadata) Description() (string, bool) {
	return m.description.Unlocalized()
}

// SetDescription sets the unlocalized description; translations are kept.
func (m *LocalizedMetadata) SetDescription(description string) {
	m.description.SetUnlocalized(description)
}

// Clone returns a deep copy of m.
func (m *LocalizedMetadata) Clone() LocalizedMetadata {
	return LocalizedMetadata{
		name:        m.name.Clone(),
		description: m.description.Clone(),
		Audit:       m.Audit,
		Retirement:  m.Retirement,
	}
}

// Kind names the family a metadata record belongs to.
type Kind string

const (
	KindLocation      Kind = "location"
	KindEncounterType Kind = "encounter_type"
	KindConceptClass  Kind = "concept_class"
)

// Kinds lists every supported metadata kind.
func Kinds() []Kind {
	return []Kind{KindLocation, KindEncounterType, KindConceptClass}
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindLocation, KindEncounterType, KindConceptClass:
		return true
	}
	return false
}

// Metadata is a stored metadata record: a location, an encounter type...
type Metadata struct {
	ID   uuid.UUID
	Kind Kind
	LocalizedMetadata
}

// NewMetadata builds an active, unnamed record of the given kind with a fresh
// identifier.
func NewMetadata(kind Kind) *Metadata {
	return &Metadata{
		ID:   uuid.New(),
		Kind: kind,
	}
}

// Clone returns a deep copy of m.
func (m *Metadata) Clone() *Metadata {
	return &Metadata{
		ID:                m.ID,
		Kind:              m.Kind,
		LocalizedMetadata: m.LocalizedMetadata.Clone(),
	}
}
