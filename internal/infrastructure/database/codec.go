package database

import (
	"strings"

	"localmeta/internal/domain/entities"
)

// Localized text is stored in a single text column. A value without
// translations is stored as its plain unlocalized text; otherwise it is
// serialised as
//
//	i18n:v1;:Hello;fr:Bonjour;
//
// with '\', ';' and ':' inside keys and values escaped by a backslash. The
// unlocalized text has the empty key, which LocalizedText never uses for a
// translation.
const (
	localizedPrefix  = "i18n:v1;"
	unlocalizedKey   = ""
	entrySeparator   = ';'
	keyValueSplitter = ':'
	escapeChar       = '\\'
)

// EncodeLocalizedText serialises t. ok is false when t holds nothing, which
// maps to a NULL column.
func EncodeLocalizedText(t *entities.LocalizedText) (string, bool) {
	unlocalized, hasUnlocalized := t.Unlocalized()
	locales := t.Locales()
	if len(locales) == 0 {
		if !hasUnlocalized {
			return "", false
		}
		if !strings.HasPrefix(unlocalized, localizedPrefix) {
			return unlocalized, true
		}
	}

	var b strings.Builder
	b.WriteString(localizedPrefix)
	if hasUnlocalized {
		writeEntry(&b, unlocalizedKey, unlocalized)
	}
	translations := t.Translations()
	for _, locale := range locales {
		writeEntry(&b, locale, translations[locale])
	}
	return b.String(), true
}

// DecodeLocalizedText parses a column value written by EncodeLocalizedText.
// Values without the i18n:v1 prefix are read as plain unlocalized text.
func DecodeLocalizedText(s string, valid bool) entities.LocalizedText {
	var t entities.LocalizedText
	if !valid {
		return t
	}
	if !strings.HasPrefix(s, localizedPrefix) {
		t.SetUnlocalized(s)
		return t
	}

	for _, entry := range splitUnescaped(s[len(localizedPrefix):], entrySeparator) {
		if entry == "" {
			continue
		}
		parts := splitUnescaped(entry, keyValueSplitter)
		key := unescape(parts[0])
		value := ""
		if len(parts) > 1 {
			// a stray unescaped ':' in the value belongs to the value
			value = unescape(strings.Join(parts[1:], string(keyValueSplitter)))
		}
		if key == unlocalizedKey {
			t.SetUnlocalized(value)
			continue
		}
		t.SetTranslation(key, value)
	}
	return t
}

func writeEntry(b *strings.Builder, key, value string) {
	b.WriteString(escape(key))
	b.WriteByte(keyValueSplitter)
	b.WriteString(escape(value))
	b.WriteByte(entrySeparator)
}

func escape(s string) string {
	if !strings.ContainsAny(s, `\;:`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case escapeChar, entrySeparator, keyValueSplitter:
			b.WriteByte(escapeChar)
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func unescape(s string) string {
	if !strings.ContainsRune(s, escapeChar) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == escapeChar && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// splitUnescaped splits s on sep, ignoring separators preceded by the escape
// character. Escapes are kept in the returned parts.
func splitUnescaped(s string, sep byte) []string {
	var parts []string
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case escapeChar:
			i++
		case sep:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}
