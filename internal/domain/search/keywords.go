package search

import (
	"strings"
	"unicode"
)

const (
	minKeywordLength = 2
	maxKeywordLength = 20
	maxKeywords      = 400
)

// Keywords derives the prefixes of every word of an already normalized text.
// Document stores that only offer equality or array-contains matching use them to emulate
// prefix search: a normalized term matches when it is one of the keywords.
func Keywords(normalized string) []string {
	words := strings.FieldsFunc(normalized, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	seen := make(map[string]struct{})
	keywords := make([]string, 0, len(words)*4)
	for _, word := range words {
		runes := []rune(word)
		limit := min(len(runes), maxKeywordLength)
		for i := minKeywordLength; i <= limit; i++ {
			prefix := string(runes[:i])
			if _, ok := seen[prefix]; ok {
				continue
			}
			seen[prefix] = struct{}{}
			keywords = append(keywords, prefix)
			if len(keywords) == maxKeywords {
				return keywords
			}
		}
	}

	return keywords
}

// Term reduces a normalized search term to the single keyword used for array-contains lookups:
// the longest word, capped at the keyword length.
func Term(normalized string) string {
	words := strings.FieldsFunc(normalized, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	var longest []rune
	for _, word := range words {
		if r := []rune(word); len(r) > len(longest) {
			longest = r
		}
	}
	if len(longest) > maxKeywordLength {
		longest = longest[:maxKeywordLength]
	}

	return string(longest)
}
