package i18n

import (
	"embed"
	"log/slog"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"localmeta/internal/domain"
	"localmeta/internal/domain/entities"
	"localmeta/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

var _ output.MetadataPresenter = (*Translator)(nil)

const dateLayout = "2006-01-02"

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	logger          *slog.Logger
}

// NewTranslator builds a Translator backed by go-i18n using the given default
// locale (e.g. "fr").
//
// It currently loads translations from the embedded active.*.toml files.
func NewTranslator(defaultLocale string, logger *slog.Logger) *Translator {
	if logger == nil {
		logger = slog.Default()
	}
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"active.en.toml", "active.fr.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			logger.Error("i18n: failed to load message file", slog.String("file", file), slog.Any("error", err))
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		logger:          logger,
	}
}

// DefaultLocale returns the locale used when the requested one is missing.
func (t *Translator) DefaultLocale() string {
	return t.defaultLanguage.String()
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		t.logger.Warn("i18n: localize failed",
			slog.String("key", key),
			slog.Any("locales", languages),
			slog.Any("error", err),
		)
		return key
	}
	return msg
}

// ErrorMessage maps err to a user-facing message. Errors without a domain
// code get the generic message; nil yields "".
func (t *Translator) ErrorMessage(locale string, err error) string {
	if err == nil {
		return ""
	}
	if code := domain.Code(err); code != "" {
		return t.T(locale, "error_"+code, nil)
	}
	return t.T(locale, "error_generic", nil)
}

// Status describes the retirement state of m.
func (t *Translator) Status(locale string, m *entities.Metadata) string {
	if !m.IsRetired() {
		return t.T(locale, "status_active", nil)
	}
	return t.T(locale, "status_retired", map[string]any{
		"RetiredBy":   string(m.RetiredBy),
		"DateRetired": m.DateRetired.Format(dateLayout),
		"Reason":      m.RetireReason,
	})
}

// DisplayName resolves the name of m for locale, then for the default
// locale, then the unlocalized name.
func (t *Translator) DisplayName(locale string, m *entities.Metadata) string {
	if name, ok := Resolve(m.LocalizedName(), locale, t.DefaultLocale()); ok {
		return name
	}
	return t.T(locale, "label_no_name", nil)
}

// DisplayDescription is DisplayName for the description; it returns "" when
// there is none.
func (t *Translator) DisplayDescription(locale string, m *entities.Metadata) string {
	desc, _ := Resolve(m.LocalizedDescription(), locale, t.DefaultLocale())
	return desc
}
