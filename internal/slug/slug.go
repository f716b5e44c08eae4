package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Slug lowercases a font name and replaces each run of whitespace with a
// single dash. Punctuation is kept so existing saved ids stay stable.
func Slug(s string) string {
	s = cases.Lower(language.Und).String(s)

	var b strings.Builder
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteRune('-')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}

	return b.String()
}

// PairingID derives the deterministic store id for a heading/body pair
func PairingID(headingFont, bodyFont string) string {
	return Slug(headingFont) + "-" + Slug(bodyFont)
}
