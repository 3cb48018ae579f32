package translit

import "slices"

// Mapping is one source→target substitution pair. Source may be a single
// character or a multi-character token ("sh", "shch", "o'") matched as a unit.
type Mapping struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Alphabet names accepted by Pairs.
const (
	AlphabetGeneric = "generic"
	AlphabetUzbek   = "uzbek"
)

// genericLatinPairs is the Russian-style phonetic scheme, Latin→Cyrillic.
// List order is cosmetic for forward matching (keys are re-sorted longest
// first) but fixes first-wins priority for duplicate keys.
// "q" is deliberately absent — it has no Russian value and passes through.
var genericLatinPairs = []Mapping{
	{"shch", "щ"},
	{"zh", "ж"}, {"kh", "х"}, {"ts", "ц"}, {"ch", "ч"}, {"sh", "ш"},
	{"yo", "ё"}, {"yu", "ю"}, {"ya", "я"}, {"''", "ъ"},
	{"a", "а"}, {"b", "б"}, {"v", "в"}, {"g", "г"}, {"d", "д"},
	{"e", "е"}, {"z", "з"}, {"i", "и"}, {"j", "й"}, {"k", "к"},
	{"l", "л"}, {"m", "м"}, {"n", "н"}, {"o", "о"}, {"p", "п"},
	{"r", "р"}, {"s", "с"}, {"t", "т"}, {"u", "у"}, {"f", "ф"},
	{"h", "х"}, {"c", "ц"}, {"w", "в"}, {"x", "кс"}, {"y", "ы"},
	{"'", "ь"},
}

// genericCyrillicPairs is the Russian-style scheme, Cyrillic→Latin.
// Hand-written rather than derived from genericLatinPairs: the directions
// are intentionally asymmetric (Latin "x" becomes "кс", but Cyrillic "кс"
// must come back as "ks", never "x").
var genericCyrillicPairs = []Mapping{
	{"щ", "shch"},
	{"ё", "yo"}, {"ж", "zh"}, {"ц", "ts"}, {"ч", "ch"}, {"ш", "sh"},
	{"ю", "yu"}, {"я", "ya"}, {"э", "e"},
	{"а", "a"}, {"б", "b"}, {"в", "v"}, {"г", "g"}, {"д", "d"},
	{"е", "e"}, {"з", "z"}, {"и", "i"}, {"й", "y"}, {"к", "k"},
	{"л", "l"}, {"м", "m"}, {"н", "n"}, {"о", "o"}, {"п", "p"},
	{"р", "r"}, {"с", "s"}, {"т", "t"}, {"у", "u"}, {"ф", "f"},
	{"х", "kh"}, {"ы", "y"}, {"ь", "'"}, {"ъ", "''"},
}

// uzbekLatinPairs is the official Uzbek Latin alphabet, Latin→Cyrillic.
// The reverse index is derived from this list by inversion, so pair order
// decides which Latin form a Cyrillic letter maps back to: "ye" before "e"
// makes е round-trip as "ye", "h" before "x" makes х round-trip as "h",
// and the ASCII apostrophe variants win over the typographic ones.
// Oʻ/Gʻ and the tutuq belgisi are accepted with ASCII ('), modifier
// letter (ʻ, U+02BB), and left single quote (‘, U+2018) apostrophes.
var uzbekLatinPairs = []Mapping{
	{"o'", "ў"}, {"oʻ", "ў"}, {"o‘", "ў"},
	{"g'", "ғ"}, {"gʻ", "ғ"}, {"g‘", "ғ"},
	{"sh", "ш"}, {"ch", "ч"},
	{"ye", "е"}, {"yo", "ё"}, {"yu", "ю"}, {"ya", "я"}, {"ts", "ц"},
	{"a", "а"}, {"b", "б"}, {"d", "д"}, {"e", "е"}, {"f", "ф"},
	{"g", "г"}, {"h", "х"}, {"i", "и"}, {"j", "ж"}, {"k", "к"},
	{"l", "л"}, {"m", "м"}, {"n", "н"}, {"o", "о"}, {"p", "п"},
	{"q", "қ"}, {"r", "р"}, {"s", "с"}, {"t", "т"}, {"u", "у"},
	{"v", "в"}, {"x", "х"}, {"y", "й"}, {"z", "з"},
	{"'", "ъ"}, {"ʻ", "ъ"},
}

// uzbekExtras supplements the derived Uzbek Cyrillic→Latin index with
// letters that appear in Cyrillic text (mostly Russian loanwords) but are
// never produced by the forward table. An extra is merged only when its
// key is still absent — canonical inverted entries always take priority.
var uzbekExtras = []Mapping{
	{"ҳ", "h"},
	{"щ", "sh"},
	{"ы", "i"},
	{"э", "e"},
	{"ь", ""},
}

// Pairs returns a copy of the Latin→Cyrillic mapping table for the named
// alphabet (AlphabetGeneric or AlphabetUzbek), for read-only display such
// as rendering a character chart. Unknown names return nil.
func Pairs(alphabet string) []Mapping {
	switch alphabet {
	case AlphabetGeneric:
		return slices.Clone(genericLatinPairs)
	case AlphabetUzbek:
		return slices.Clone(uzbekLatinPairs)
	default:
		return nil
	}
}

// Alphabets returns the supported alphabet names.
func Alphabets() []string {
	return []string{AlphabetGeneric, AlphabetUzbek}
}
