// Package detect classifies the dominant script of input text.
//
// Classification counts basic Latin letters (a–z, A–Z) and Cyrillic block
// letters (U+0400–U+04FF) independently; every other rune is ignored and
// does not count toward the letter total. A script is dominant when it
// holds at least 90% of the counted letters; otherwise the text is mixed.
// Text with no counted letters is unknown.
//
// The result is advisory — callers use it to pre-select a conversion
// direction, never to alter conversion behavior.
//
// All functions are safe for concurrent use by multiple goroutines.
package detect

import (
	"encoding/json"
	"fmt"
)

// Script identifies the dominant writing system of a text.
type Script int

const (
	ScriptUnknown  Script = iota // zero value, no letters counted
	ScriptLatin                  // ≥90% basic Latin letters
	ScriptCyrillic               // ≥90% Cyrillic block letters
	ScriptMixed                  // both scripts present, neither dominant
)

// scriptNames maps Script values to their string names.
var scriptNames = [...]string{
	ScriptUnknown:  "unknown",
	ScriptLatin:    "latin",
	ScriptCyrillic: "cyrillic",
	ScriptMixed:    "mixed",
}

// scriptFromName maps string names back to Script values.
var scriptFromName = map[string]Script{
	"unknown":  ScriptUnknown,
	"latin":    ScriptLatin,
	"cyrillic": ScriptCyrillic,
	"mixed":    ScriptMixed,
}

// String returns the name of the script.
func (s Script) String() string {
	if int(s) >= 0 && int(s) < len(scriptNames) {
		return scriptNames[s]
	}
	return fmt.Sprintf("Script(%d)", int(s))
}

// MarshalJSON encodes the script as a JSON string (e.g. "latin").
func (s Script) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a JSON string (e.g. "latin") into a Script.
func (s *Script) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	sc, ok := scriptFromName[str]
	if !ok {
		return fmt.Errorf("detect: unknown script: %q", str)
	}
	*s = sc
	return nil
}

// dominanceNum/dominanceDen express the 90% dominance threshold as a ratio
// so the boundary compare stays exact (no floating-point drift at 9-of-10).
const (
	dominanceNum = 9
	dominanceDen = 10
)

// Analysis holds the letter statistics of one classification.
// Percentages are in [0, 100] and describe only the counted letters.
type Analysis struct {
	Script          Script  `json:"script"`
	LatinLetters    int     `json:"latin_letters"`
	CyrillicLetters int     `json:"cyrillic_letters"`
	TotalLetters    int     `json:"total_letters"`
	LatinPercent    float64 `json:"latin_percent"`
	CyrillicPercent float64 `json:"cyrillic_percent"`
}

// Analyze classifies the dominant script of s.
// Returns the zero Analysis (ScriptUnknown, all counts zero) when s
// contains no Latin or Cyrillic letters.
func Analyze(s string) Analysis {
	var latin, cyrillic int
	for _, r := range s {
		switch {
		case ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z'):
			latin++
		case 'Ѐ' <= r && r <= 'ӿ':
			cyrillic++
		}
	}

	total := latin + cyrillic
	if total == 0 {
		return Analysis{}
	}

	script := ScriptMixed
	switch {
	case latin*dominanceDen >= total*dominanceNum:
		script = ScriptLatin
	case cyrillic*dominanceDen >= total*dominanceNum:
		script = ScriptCyrillic
	}

	return Analysis{
		Script:          script,
		LatinLetters:    latin,
		CyrillicLetters: cyrillic,
		TotalLetters:    total,
		LatinPercent:    float64(latin) / float64(total) * 100,
		CyrillicPercent: float64(cyrillic) / float64(total) * 100,
	}
}

// Suggestion is a recommended conversion direction.
type Suggestion int

const (
	SuggestNone       Suggestion = iota // mixed or unknown script
	SuggestToCyrillic                   // text is Latin: convert toward Cyrillic
	SuggestToLatin                      // text is Cyrillic: convert toward Latin
)

// suggestionNames maps Suggestion values to their string names.
var suggestionNames = [...]string{
	SuggestNone:       "none",
	SuggestToCyrillic: "to-cyrillic",
	SuggestToLatin:    "to-latin",
}

// String returns the name of the suggestion.
func (s Suggestion) String() string {
	if int(s) >= 0 && int(s) < len(suggestionNames) {
		return suggestionNames[s]
	}
	return fmt.Sprintf("Suggestion(%d)", int(s))
}

// MarshalJSON encodes the suggestion as a JSON string (e.g. "to-latin").
func (s Suggestion) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Suggest recommends a default conversion direction for s:
// Latin text suggests converting to Cyrillic, Cyrillic text to Latin,
// and mixed or unknown text yields no suggestion.
func Suggest(s string) Suggestion {
	switch Analyze(s).Script {
	case ScriptLatin:
		return SuggestToCyrillic
	case ScriptCyrillic:
		return SuggestToLatin
	default:
		return SuggestNone
	}
}
