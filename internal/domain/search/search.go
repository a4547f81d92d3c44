// Package search canonicalizes text so indexed book fields and user search terms compare equal.
package search

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultMaxLength is the number of runes kept by NormalizeText.
const DefaultMaxLength = 500

// NonBlankSearchTextFallback is stored in place of indexed text that normalizes to "".
const NonBlankSearchTextFallback = " "

// NormalizeText trims text, strips diacritics, lower-cases it and truncates the result to
// maxLength runes. Whitespace-only input yields "". A non-positive maxLength disables truncation.
func NormalizeText(text string, maxLength int) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}

	stripped, _, err := transform.String(newStripper(), trimmed)
	if err != nil {
		stripped = trimmed
	}

	// Stripped marks can expose whitespace at either end.
	lowered := strings.TrimSpace(strings.ToLower(stripped))
	if maxLength > 0 && utf8.RuneCountInString(lowered) > maxLength {
		// The cut may land on whitespace; trimming it keeps the result a fixed point.
		lowered = strings.TrimRightFunc(string([]rune(lowered)[:maxLength]), unicode.IsSpace)
	}

	return lowered
}

// Normalize applies NormalizeText with DefaultMaxLength.
func Normalize(text string) string {
	return NormalizeText(text, DefaultMaxLength)
}

// IndexText joins the searchable parts of a record and normalizes them.
// The fallback is returned when nothing usable remains.
func IndexText(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, part := range parts {
		if p := strings.TrimSpace(part); p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}

	normalized := Normalize(strings.Join(nonEmpty, " "))
	if normalized == "" {
		return NonBlankSearchTextFallback
	}

	return normalized
}

func newStripper() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
}
