// Package translit converts text between Latin and Cyrillic scripts.
//
// Two alphabets are supported: a generic Russian-style phonetic scheme
// (privet ↔ привет) and the official Uzbek Latin/Cyrillic alphabet
// (salom ↔ салом). Conversion is a greedy longest-match substitution over
// static token tables: digraphs and trigraphs ("sh", "shch", "o'") match as
// single units, the case shape of each matched chunk carries over to its
// replacement, and unrecognized characters (digits, punctuation, characters
// already in the target script) pass through unchanged.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Conversions are not bijective. Known lossy cases:
//   - Generic Latin "x" becomes "кс"; converting back yields "ks", not "x".
//   - Uzbek Cyrillic "е" always comes back as "ye", regardless of position.
//   - A single capital counts as an all-caps chunk, so generic "Щука"
//     converts to "SHCHuka" (the one-char chunk equals its own uppercase form).
package translit

import "strings"

// The four conversion indexes, built once at init and read-only thereafter.
// The Uzbek reverse index is derived from the forward pair list; the generic
// scheme has hand-written lists per direction (see mapping.go).
var (
	genericLatCyr = newIndex(genericLatinPairs)
	genericCyrLat = newIndex(genericCyrillicPairs)
	uzbekLatCyr   = newIndex(uzbekLatinPairs)
	uzbekCyrLat   = invert(uzbekLatinPairs, uzbekExtras)
)

// LatinToCyrillic converts Latin text to Cyrillic using the generic
// Russian-style phonetic scheme: "privet" → "привет", "shchuka" → "щука".
func LatinToCyrillic(s string) string { return genericLatCyr.apply(s) }

// CyrillicToLatin converts Cyrillic text to Latin using the generic
// Russian-style phonetic scheme: "привет" → "privet", "щука" → "shchuka".
func CyrillicToLatin(s string) string { return genericCyrLat.apply(s) }

// UzbekLatinToCyrillic converts Uzbek Latin text to Uzbek Cyrillic:
// "salom" → "салом", "o'zbek" → "ўзбек".
func UzbekLatinToCyrillic(s string) string { return uzbekLatCyr.apply(s) }

// UzbekCyrillicToLatin converts Uzbek Cyrillic text to Uzbek Latin:
// "салом" → "salom", "тўғри" → "to'g'ri".
func UzbekCyrillicToLatin(s string) string { return uzbekCyrLat.apply(s) }

// apply runs the greedy longest-match scan over s.
//
// At each position the keys are tried in descending length order; the first
// case-insensitive match is replaced by its target token, re-capitalized to
// the chunk's case shape. When nothing matches, the single character at the
// cursor is copied through unchanged. Total function: every input has a
// defined output and empty input yields empty output.
func (x *index) apply(s string) string {
	if s == "" {
		return ""
	}

	runes := []rune(s)

	var b strings.Builder
	b.Grow(len(s) + len(s)/2)

	for i := 0; i < len(runes); {
		token, width, ok := x.match(runes, i)
		if !ok {
			b.WriteRune(runes[i])
			i++
			continue
		}
		chunk := string(runes[i : i+width])
		b.WriteString(applyShape(x.repl[token], shapeOf(chunk)))
		i += width
	}

	return b.String()
}

// match finds the longest key matching at position i, case-insensitively.
func (x *index) match(runes []rune, i int) (token string, width int, ok bool) {
	for _, k := range x.keys {
		if k.runes == 0 || i+k.runes > len(runes) {
			continue
		}
		if strings.EqualFold(string(runes[i:i+k.runes]), k.token) {
			return k.token, k.runes, true
		}
	}
	return "", 0, false
}
