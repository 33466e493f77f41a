package application

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"localmeta/internal/domain"
	"localmeta/internal/domain/entities"
	"localmeta/internal/infrastructure/memory"
	"localmeta/internal/ports/input"
)

type MetadataServiceSuite struct {
	suite.Suite
	ctx     context.Context
	repo    *memory.MetadataRepository
	service *MetadataService
	now     time.Time
}

func TestMetadataServiceSuite(t *testing.T) {
	suite.Run(t, new(MetadataServiceSuite))
}

func (s *MetadataServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = memory.NewMetadataRepository()
	s.now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = NewMetadataService(s.repo, logger).WithClock(func() time.Time { return s.now })
}

func (s *MetadataServiceSuite) tick() {
	s.now = s.now.Add(time.Minute)
}

func (s *MetadataServiceSuite) create(name string) *entities.Metadata {
	m, err := s.service.Create(s.ctx, entities.KindLocation, "admin", name, "")
	s.Require().NoError(err)
	return m
}

func (s *MetadataServiceSuite) TestCreate() {
	m, err := s.service.Create(s.ctx, entities.KindEncounterType, "admin", "  Intake ", "First visit")
	s.Require().NoError(err)

	name, ok := m.Name()
	s.True(ok)
	s.Equal("Intake", name)
	desc, _ := m.Description()
	s.Equal("First visit", desc)
	s.Equal(entities.ActorID("admin"), m.Creator)
	s.Equal(s.now, m.DateCreated)
	s.Empty(m.ChangedBy)
	s.False(m.IsRetired())

	stored, err := s.service.Get(s.ctx, m.ID)
	s.Require().NoError(err)
	s.Equal(m, stored)

	s.Run("without description leaves it unset", func() {
		m := s.create("Ward B")
		_, ok := m.Description()
		s.False(ok)
	})
}

func (s *MetadataServiceSuite) TestCreateValidation() {
	_, err := s.service.Create(s.ctx, "program", "admin", "x", "")
	s.ErrorIs(err, domain.ErrUnknownKind)

	_, err = s.service.Create(s.ctx, entities.KindLocation, " ", "x", "")
	s.ErrorIs(err, domain.ErrActorRequired)

	_, err = s.service.Create(s.ctx, entities.KindLocation, "admin", "   ", "")
	s.ErrorIs(err, domain.ErrNameRequired)
}

func (s *MetadataServiceSuite) TestRenameKeepsTranslations() {
	m := s.create("Pharmacy")
	_, err := s.service.SetTranslation(s.ctx, m.ID, "translator", input.FieldName, "fr", "Pharmacie")
	s.Require().NoError(err)

	s.tick()
	renamed, err := s.service.Rename(s.ctx, m.ID, "editor", "Dispensary")
	s.Require().NoError(err)

	name, _ := renamed.Name()
	s.Equal("Dispensary", name)
	fr, _ := renamed.LocalizedName().Value("fr")
	s.Equal("Pharmacie", fr)
	s.Equal(entities.ActorID("editor"), renamed.ChangedBy)
	s.Equal(s.now, renamed.DateChanged)
	s.Equal(entities.ActorID("admin"), renamed.Creator)

	_, err = s.service.Rename(s.ctx, m.ID, "editor", "")
	s.ErrorIs(err, domain.ErrNameRequired)
}

func (s *MetadataServiceSuite) TestDescribe() {
	m := s.create("Lab")

	described, err := s.service.Describe(s.ctx, m.ID, "editor", "Main laboratory")
	s.Require().NoError(err)
	desc, ok := described.Description()
	s.True(ok)
	s.Equal("Main laboratory", desc)

	cleared, err := s.service.Describe(s.ctx, m.ID, "editor", "")
	s.Require().NoError(err)
	_, ok = cleared.Description()
	s.False(ok)
}

func (s *MetadataServiceSuite) TestTranslations() {
	m := s.create("Hello")

	_, err := s.service.SetTranslation(s.ctx, m.ID, "translator", input.FieldDescription, "fr_CA", "Bonjour")
	s.Require().NoError(err)

	stored, err := s.service.Get(s.ctx, m.ID)
	s.Require().NoError(err)
	got, ok := stored.LocalizedDescription().Translation("fr-CA")
	s.True(ok)
	s.Equal("Bonjour", got)

	removed, err := s.service.RemoveTranslation(s.ctx, m.ID, "translator", input.FieldDescription, "fr-CA")
	s.Require().NoError(err)
	s.Empty(removed.LocalizedDescription().Locales())

	_, err = s.service.SetTranslation(s.ctx, m.ID, "translator", "summary", "fr", "x")
	s.ErrorIs(err, domain.ErrUnknownField)

	_, err = s.service.SetTranslation(s.ctx, uuid.New(), "translator", input.FieldName, "fr", "x")
	s.ErrorIs(err, domain.ErrMetadataNotFound)
}

func (s *MetadataServiceSuite) TestRetireAndUnretire() {
	m := s.create("Old clinic")
	retiredAt := s.now.Add(time.Minute)
	s.tick()

	retired, err := s.service.Retire(s.ctx, m.ID, "u1", "obsolete")
	s.Require().NoError(err)
	s.True(retired.IsRetired())
	s.Equal(entities.ActorID("u1"), retired.RetiredBy)
	s.Equal(retiredAt, retired.DateRetired)
	s.Equal("obsolete", retired.RetireReason)
	s.Equal(entities.ActorID("u1"), retired.ChangedBy)

	active, err := s.service.List(s.ctx, entities.KindLocation, false)
	s.Require().NoError(err)
	s.Empty(active)

	s.tick()
	restored, err := s.service.Unretire(s.ctx, m.ID, "u2")
	s.Require().NoError(err)
	s.False(restored.IsRetired())
	s.Equal(entities.ActorID("u1"), restored.RetiredBy, "retirement history is kept")
	s.Equal("obsolete", restored.RetireReason)
	s.Equal(retiredAt, restored.DateRetired)
	s.Equal(entities.ActorID("u2"), restored.ChangedBy)

	s.Run("unretiring an active record is a no-op", func() {
		again, err := s.service.Unretire(s.ctx, m.ID, "u3")
		s.Require().NoError(err)
		s.Equal(entities.ActorID("u2"), again.ChangedBy)
	})
}

func (s *MetadataServiceSuite) TestRetireTwiceLastWriteWins() {
	m := s.create("Clinic")

	_, err := s.service.Retire(s.ctx, m.ID, "u1", "obsolete")
	s.Require().NoError(err)
	s.tick()
	second, err := s.service.Retire(s.ctx, m.ID, "u2", "duplicate")
	s.Require().NoError(err)

	s.Equal(entities.ActorID("u2"), second.RetiredBy)
	s.Equal("duplicate", second.RetireReason)
	s.Equal(s.now, second.DateRetired)
}

func (s *MetadataServiceSuite) TestRetireRequiresReasonAndActor() {
	m := s.create("Clinic")

	_, err := s.service.Retire(s.ctx, m.ID, "u1", "  ")
	s.ErrorIs(err, domain.ErrRetireReasonRequired)

	_, err = s.service.Retire(s.ctx, m.ID, "", "obsolete")
	s.ErrorIs(err, domain.ErrActorRequired)

	_, err = s.service.Unretire(s.ctx, m.ID, "")
	s.ErrorIs(err, domain.ErrActorRequired)

	stored, err := s.service.Get(s.ctx, m.ID)
	s.Require().NoError(err)
	s.False(stored.IsRetired())
}

func (s *MetadataServiceSuite) TestListAndPurge() {
	a := s.create("A")
	s.tick()
	b := s.create("B")

	all, err := s.service.List(s.ctx, entities.KindLocation, true)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal(a.ID, all[0].ID)

	_, err = s.service.List(s.ctx, "", true)
	s.ErrorIs(err, domain.ErrUnknownKind)

	s.Require().NoError(s.service.Purge(s.ctx, b.ID))
	s.ErrorIs(s.service.Purge(s.ctx, b.ID), domain.ErrMetadataNotFound)
}
