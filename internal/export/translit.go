package export

import "strings"

// The PDF renderer's core fonts have no glyphs for the Turkish letters
// below, so every string it draws passes through this fixed substitution
// table first. It is deliberately not a general Unicode normalizer: only
// the characters the portal actually produces are mapped.
var translit = strings.NewReplacer(
	"İ", "I", "ı", "i",
	"Ş", "S", "ş", "s",
	"Ğ", "G", "ğ", "g",
	"Ç", "C", "ç", "c",
	"Ö", "O", "ö", "o",
	"Ü", "U", "ü", "u",
)

// Transliterate maps Turkish-specific letters to their closest Latin
// equivalents.
func Transliterate(s string) string {
	return translit.Replace(s)
}
