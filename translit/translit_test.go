package translit

import "testing"

func TestLatinToCyrillic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple word", "privet", "привет"},
		{"spasibo", "spasibo", "спасибо"},
		{"greedy longest match", "shchuka", "щука"},
		{"all caps", "PRIVET", "ПРИВЕТ"},
		{"capitalized", "Privet", "Привет"},
		{"capitalized digraph", "Shchuka", "Щука"},
		{"yo digraph", "yolka", "ёлка"},
		{"soft sign", "mal'chik", "мальчик"},
		{"hard sign", "pod''ezd", "подъезд"},
		{"x expands", "x", "кс"},
		{"x expands upper", "X", "КС"},
		{"q passes through", "qqq", "qqq"},
		{"digits and punctuation", "12,3-45!", "12,3-45!"},
		{"cyrillic passes through", "привет", "привет"},
		{"mixed case per token", "pRiVeT", "пРиВеТ"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := LatinToCyrillic(tt.in); got != tt.want {
				t.Errorf("LatinToCyrillic(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCyrillicToLatin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple word", "привет", "privet"},
		{"shcha expands", "щука", "shchuka"},
		{"all caps", "ЩУКА", "SHCHUKA"},
		{"kh digraph", "хорошо", "khorosho"},
		{"soft sign", "мальчик", "mal'chik"},
		{"hard sign", "подъезд", "pod''ezd"},
		{"yo", "ёлка", "yolka"},
		{"e oborotnoye", "это", "eto"},
		{"latin passes through", "privet", "privet"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CyrillicToLatin(tt.in); got != tt.want {
				t.Errorf("CyrillicToLatin(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// A single capital chunk equals its own uppercase form, so it takes the
// all-caps shape even mid-word. This is the documented behavior, not a bug.
func TestSingleCapitalTakesAllCapsShape(t *testing.T) {
	t.Parallel()

	if got := CyrillicToLatin("Щука"); got != "SHCHuka" {
		t.Errorf("CyrillicToLatin(%q) = %q, want %q", "Щука", got, "SHCHuka")
	}
	if got := CyrillicToLatin("Ёлка"); got != "YOlka" {
		t.Errorf("CyrillicToLatin(%q) = %q, want %q", "Ёлка", got, "YOlka")
	}
}

// Round trips are lossy where the tables are asymmetric: Latin "x" expands
// to "кс", and that comes back letter by letter as "ks".
func TestRoundTripLossy(t *testing.T) {
	t.Parallel()

	cyr := LatinToCyrillic("x")
	if cyr != "кс" {
		t.Fatalf("LatinToCyrillic(%q) = %q, want %q", "x", cyr, "кс")
	}
	if got := CyrillicToLatin(cyr); got != "ks" {
		t.Errorf("CyrillicToLatin(%q) = %q, want %q", cyr, got, "ks")
	}
}

func TestUzbekLatinToCyrillic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"salom", "salom", "салом"},
		{"rahmat", "rahmat", "рахмат"},
		{"o apostrophe", "o'zbek", "ўзбек"},
		{"o modifier letter", "oʻzbek", "ўзбек"},
		{"o left quote", "o‘zbek", "ўзбек"},
		{"g apostrophe", "g'oz", "ғоз"},
		{"capitalized country", "O'zbekiston", "Ўзбекистон"},
		{"ya and sh", "yaxshi", "яхши"},
		{"ch digraph", "choy", "чой"},
		{"ye digraph", "yetti", "етти"},
		{"tutuq belgisi", "ma'no", "маъно"},
		{"ya inside word", "sentyabr", "сентябр"},
		{"all caps", "SALOM", "САЛОМ"},
		{"digits and punctuation", "100 so'm!", "100 сўм!"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := UzbekLatinToCyrillic(tt.in); got != tt.want {
				t.Errorf("UzbekLatinToCyrillic(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestUzbekCyrillicToLatin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"salom", "салом", "salom"},
		{"rahmat", "рахмат", "rahmat"},
		{"o with breve", "ўзбек", "o'zbyek"},
		{"capitalized country", "Ўзбекистон", "O'zbyekiston"},
		{"ch digraph", "чой", "choy"},
		{"e becomes ye", "келди", "kyeldi"},
		{"extra ha", "ҳа", "ha"},
		{"extra shcha", "борщ", "borsh"},
		{"soft sign dropped", "фильм", "film"},
		{"hard sign", "маъно", "ma'no"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := UzbekCyrillicToLatin(tt.in); got != tt.want {
				t.Errorf("UzbekCyrillicToLatin(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPairs(t *testing.T) {
	t.Parallel()

	generic := Pairs(AlphabetGeneric)
	if len(generic) != len(genericLatinPairs) {
		t.Fatalf("Pairs(generic): got %d entries, want %d", len(generic), len(genericLatinPairs))
	}

	// Mutating the returned slice must not affect conversion.
	generic[0] = Mapping{Source: "shch", Target: "corrupted"}
	if got := LatinToCyrillic("shchuka"); got != "щука" {
		t.Errorf("conversion changed after mutating Pairs result: %q", got)
	}

	if Pairs("klingon") != nil {
		t.Error("Pairs(unknown) should return nil")
	}
}
