package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetadataIsActiveAndUnnamed(t *testing.T) {
	m := NewMetadata(KindLocation)

	assert.NotZero(t, m.ID)
	assert.Equal(t, KindLocation, m.Kind)
	assert.False(t, m.IsRetired())

	_, ok := m.Name()
	assert.False(t, ok)
	_, ok = m.Description()
	assert.False(t, ok)

	require.NotNil(t, m.LocalizedName())
	require.NotNil(t, m.LocalizedDescription())
}

func TestZeroLocalizedMetadataIsUsable(t *testing.T) {
	var m LocalizedMetadata

	_, ok := m.LocalizedName().Value("fr")
	assert.False(t, ok)

	m.LocalizedDescription().SetTranslation("fr", "Salle d'attente")
	got, ok := m.LocalizedDescription().Value("fr")
	require.True(t, ok)
	assert.Equal(t, "Salle d'attente", got)
}

func TestNameAccessorsUseTheUnlocalizedSlot(t *testing.T) {
	m := NewMetadata(KindEncounterType)
	m.LocalizedName().SetTranslation("fr", "Admission")
	m.SetName("Intake")

	name, ok := m.Name()
	require.True(t, ok)
	assert.Equal(t, "Intake", name)

	got, _ := m.LocalizedName().Value("fr")
	assert.Equal(t, "Admission", got)
	got, _ = m.LocalizedName().Value("de")
	assert.Equal(t, "Intake", got)

	m.SetDescription("First visit")
	desc, ok := m.Description()
	require.True(t, ok)
	assert.Equal(t, "First visit", desc)
	_, ok = m.LocalizedDescription().Translation("fr")
	assert.False(t, ok)
}

func TestSetLocalizedNameReplacesContainer(t *testing.T) {
	m := NewMetadata(KindLocation)
	m.SetName("Old")

	var name LocalizedText
	name.SetTranslation("fr", "Pharmacie")
	m.SetLocalizedName(name)

	_, ok := m.Name()
	assert.False(t, ok)
	got, _ := m.LocalizedName().Value("fr")
	assert.Equal(t, "Pharmacie", got)

	var desc LocalizedText
	desc.SetUnlocalized("Dispensary")
	m.SetLocalizedDescription(desc)
	got, _ = m.Description()
	assert.Equal(t, "Dispensary", got)
}

func TestMetadataCloneIsDeep(t *testing.T) {
	at := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	m := NewMetadata(KindConceptClass)
	m.SetName("Drug")
	m.LocalizedName().SetTranslation("fr", "Médicament")
	m.RecordCreation("admin", at)
	m.Retire("admin", "merged", at)

	c := m.Clone()
	c.LocalizedName().SetTranslation("fr", "Produit")
	c.SetDescription("changed")
	c.Unretire()

	assert.Equal(t, m.ID, c.ID)
	got, _ := m.LocalizedName().Value("fr")
	assert.Equal(t, "Médicament", got)
	_, ok := m.Description()
	assert.False(t, ok)
	assert.True(t, m.IsRetired())
	assert.Equal(t, m.Audit, c.Audit)
}

func TestKindValid(t *testing.T) {
	for _, k := range Kinds() {
		assert.True(t, k.Valid(), k)
	}
	assert.False(t, Kind("program").Valid())
	assert.False(t, Kind("").Valid())
}
