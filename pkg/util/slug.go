package util

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Slugify turns arbitrary text into an identifier usable as an HTML id or
// URL fragment. Everything except letters, numbers and spaces is dropped,
// spaces become hyphens, and the result is lowercased. Identical input
// always produces identical output; collisions are not disambiguated.
func Slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	for _, r := range title {
		switch {
		case r == ' ':
			b.WriteByte('-')
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			b.WriteRune(r)
		}
	}

	return cases.Lower(language.Und).String(b.String())
}
