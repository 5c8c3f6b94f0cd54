package auth

import (
	"regexp"
	"strings"
)

var (
	accentFolds = map[rune]rune{
		'á': 'a', 'à': 'a', 'â': 'a', 'ã': 'a',
		'é': 'e', 'è': 'e', 'ê': 'e',
		'í': 'i', 'ì': 'i', 'î': 'i',
		'ó': 'o', 'ò': 'o', 'ô': 'o', 'õ': 'o',
		'ú': 'u', 'ù': 'u', 'û': 'u',
		'ç': 'c',
	}
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
)

// GenerateSlug turns a restaurant name into a URL slug: lower case,
// Portuguese accents folded to ASCII, everything else collapsed to
// hyphens.
func GenerateSlug(name string) string {
	lower := strings.ToLower(name)
	folded := strings.Map(func(r rune) rune {
		if f, ok := accentFolds[r]; ok {
			return f
		}
		return r
	}, lower)
	slug := nonSlugChars.ReplaceAllString(folded, "-")
	return strings.Trim(slug, "-")
}
