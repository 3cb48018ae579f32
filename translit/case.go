package translit

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// caseShape classifies how a matched chunk is capitalized, so the
// replacement token can be capitalized the same way.
type caseShape int

const (
	shapeNone  caseShape = iota // lower, mixed, or no letters — emit verbatim
	shapeTitle                  // first character uppercase
	shapeUpper                  // every letter uppercase
)

// shapeOf returns the case shape of chunk as it literally appeared in the
// input. A chunk counts as all-caps when it differs from its own lowercase
// form but equals its own uppercase form; a single capital letter therefore
// always counts as all-caps, not title case.
func shapeOf(chunk string) caseShape {
	if chunk != strings.ToLower(chunk) && chunk == strings.ToUpper(chunk) {
		return shapeUpper
	}
	r, _ := utf8.DecodeRuneInString(chunk)
	if unicode.IsUpper(r) {
		return shapeTitle
	}
	return shapeNone
}

// applyShape re-capitalizes target to match shape.
func applyShape(target string, shape caseShape) string {
	switch shape {
	case shapeUpper:
		return strings.ToUpper(target)
	case shapeTitle:
		r, size := utf8.DecodeRuneInString(target)
		if size == 0 {
			return target
		}
		return string(unicode.ToUpper(r)) + target[size:]
	default:
		return target
	}
}
