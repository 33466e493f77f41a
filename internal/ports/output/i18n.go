package output

import "localmeta/internal/domain/entities"

// T renders the message identified by key for the given locale.
// data is an optional map used for template placeholders (may be nil).
type T interface {
	T(locale, key string, data map[string]any) string
}

// MetadataPresenter renders metadata records and domain errors for a
// reader of the given locale.
type MetadataPresenter interface {
	T
	DefaultLocale() string
	ErrorMessage(locale string, err error) string
	Status(locale string, m *entities.Metadata) string
	DisplayName(locale string, m *entities.Metadata) string
	DisplayDescription(locale string, m *entities.Metadata) string
}
