package entities

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// LocalizedText holds one piece of user-facing text (a name, a description)
// in several locales plus an unlocalized fallback.
//
// The zero value is an empty, ready to use LocalizedText.
type LocalizedText struct {
	translations   map[string]string
	unlocalized    string
	hasUnlocalized bool
}

// CanonicalLocale normalises a locale identifier so that "en_US", "en-us"
// and "en-US" address the same translation. Surrounding spaces are dropped;
// identifiers that are not valid BCP 47 tags are otherwise kept as they are.
func CanonicalLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	tag, err := language.Parse(locale)
	if err != nil {
		return locale
	}
	return tag.String()
}

// Value returns the translation for locale, falling back to the unlocalized
// text. ok is false only when neither exists.
func (t *LocalizedText) Value(locale string) (string, bool) {
	if v, ok := t.Translation(locale); ok {
		return v, true
	}
	return t.Unlocalized()
}

// Translation returns the translation stored for locale, without fallback.
func (t *LocalizedText) Translation(locale string) (string, bool) {
	if len(t.translations) == 0 {
		return "", false
	}
	key := CanonicalLocale(locale)
	if key == "" {
		return "", false
	}
	v, ok := t.translations[key]
	return v, ok
}

// Unlocalized returns the fallback text.
func (t *LocalizedText) Unlocalized() (string, bool) {
	return t.unlocalized, t.hasUnlocalized
}

// SetTranslation inserts or overwrites the translation for locale. A blank
// locale names no locale and sets the unlocalized text instead.
func (t *LocalizedText) SetTranslation(locale, text string) {
	key := CanonicalLocale(locale)
	if key == "" {
		t.SetUnlocalized(text)
		return
	}
	if t.translations == nil {
		t.translations = make(map[string]string)
	}
	t.translations[key] = text
}

// RemoveTranslation drops the translation for locale, if any.
func (t *LocalizedText) RemoveTranslation(locale string) {
	delete(t.translations, CanonicalLocale(locale))
}

// SetUnlocalized sets the fallback text. Translations are left untouched.
func (t *LocalizedText) SetUnlocalized(text string) {
	t.unlocalized = text
	t.hasUnlocalized = true
}

// ClearUnlocalized removes the fallback text.
func (t *LocalizedText) ClearUnlocalized() {
	t.unlocalized = ""
	t.hasUnlocalized = false
}

// Locales lists the locales that carry a translation, sorted.
func (t *LocalizedText) Locales() []string {
	out := make([]string, 0, len(t.translations))
	for locale := range t.translations {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Translations returns a copy of the per-locale translations.
func (t *LocalizedText) Translations() map[string]string {
	out := make(map[string]string, len(t.translations))
	for locale, text := range t.translations {
		out[locale] = text
	}
	return out
}

// IsEmpty reports whether there is neither a translation nor a fallback.
func (t *LocalizedText) IsEmpty() bool {
	return !t.hasUnlocalized && len(t.translations) == 0
}

// Clone returns a deep copy of t.
func (t *LocalizedText) Clone() LocalizedText {
	c := LocalizedText{
		unlocalized:    t.unlocalized,
		hasUnlocalized: t.hasUnlocalized,
	}
	if len(t.translations) > 0 {
		c.translations = t.Translations()
	}
	return c
}
