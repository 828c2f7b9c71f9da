// Package normalize folds reminder names into the form used for
// case and accent insensitive lookups.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// letters without a canonical decomposition
var special = strings.NewReplacer(
	"ß", "ss",
	"æ", "ae",
	"œ", "oe",
	"ø", "o",
	"đ", "d",
	"ð", "d",
	"ł", "l",
	"þ", "th",
	"ı", "i",
)

// Name lowercases raw and strips its diacritical marks.
func Name(raw string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(raw))
	if err != nil {
		// transform only fails on invalid state; keep the lowercased input
		folded = strings.ToLower(raw)
	}
	return special.Replace(folded)
}
