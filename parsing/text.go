package parsing

import (
	"strings"
	"unicode"

	"github.com/gosimple/slug"
)

var truthy = map[string]struct{}{
	"true": {},
	"yes":  {},
	"1":    {},
	"on":   {},
}

// ParseBool reports whether value, trimmed and case-folded, is one of
// "true", "yes", "1" or "on". Everything else is false.
func ParseBool(value string) bool {
	_, ok := truthy[strings.ToLower(strings.TrimSpace(value))]
	return ok
}

// Slugify lower-cases text and collapses every run of characters other than
// ASCII letters and digits into a single "-", trimming dashes at both ends.
// Accented letters are transliterated ("é" becomes "e").
func Slugify(text string) string {
	// slug would spell out symbols ("&" as "and") and keep underscores
	return slug.Make(strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, text))
}
