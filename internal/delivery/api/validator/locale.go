package validator

import "golang.org/x/text/language"

// MatchLocale picks the supported locale that best serves the preferences. preferences are
// tried in order and may be Accept-Language values or plain tags. fallback is returned when
// nothing matches.
func MatchLocale(supported []string, fallback string, preferences ...string) string {
	if len(supported) == 0 {
		return fallback
	}

	tags := make([]language.Tag, 0, len(supported))
	for _, locale := range supported {
		tags = append(tags, language.Make(locale))
	}
	matcher := language.NewMatcher(tags)

	for _, preference := range preferences {
		if preference == "" {
			continue
		}
		desired, _, err := language.ParseAcceptLanguage(preference)
		if err != nil || len(desired) == 0 {
			continue
		}
		if _, index, confidence := matcher.Match(desired...); confidence != language.No {
			return supported[index]
		}
	}

	return fallback
}
