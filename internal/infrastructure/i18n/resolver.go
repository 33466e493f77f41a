package i18n

import (
	"strings"

	"golang.org/x/text/language"

	"localmeta/internal/domain/entities"
)

// Resolve picks the best translation of text for the preferred locales, in
// order of preference. A preferred locale is served by an exact translation
// first, then by the closest translation of the same language ("fr-CA" finds
// "fr"). When no preferred locale is served, the unlocalized text is used.
func Resolve(text *entities.LocalizedText, preferred ...string) (string, bool) {
	v, _, ok := Match(text, preferred...)
	return v, ok
}

// Match is Resolve that also reports which locale served the value; locale
// is "" when the unlocalized text was used.
func Match(text *entities.LocalizedText, preferred ...string) (value, locale string, ok bool) {
	locales := text.Locales()
	if len(locales) > 0 && len(preferred) > 0 {
		translations := text.Translations()
		tags, keys := supportedTags(locales)
		var matcher language.Matcher
		if len(tags) > 0 {
			matcher = language.NewMatcher(tags)
		}

		for _, p := range preferred {
			if v, found := text.Translation(p); found {
				return v, entities.CanonicalLocale(p), true
			}
			if matcher == nil {
				continue
			}
			desired, err := language.Parse(p)
			if err != nil {
				continue
			}
			_, idx, conf := matcher.Match(desired)
			if conf >= language.High {
				key := keys[idx]
				return translations[key], key, true
			}
		}
	}

	v, ok := text.Unlocalized()
	return v, "", ok
}

// supportedTags returns the parseable locales as tags together with the
// translation key each tag stands for.
func supportedTags(locales []string) ([]language.Tag, []string) {
	tags := make([]language.Tag, 0, len(locales))
	keys := make([]string, 0, len(locales))
	for _, l := range locales {
		tag, err := language.Parse(l)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		keys = append(keys, l)
	}
	return tags, keys
}

// ParseAcceptLanguage turns an Accept-Language style list ("fr-CA,fr;q=0.8")
// into locales ordered by preference. Malformed input yields nil.
func ParseAcceptLanguage(header string) []string {
	if strings.TrimSpace(header) == "" {
		return nil
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, tag.String())
	}
	return out
}
