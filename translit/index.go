package translit

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"
)

// index is an immutable lookup table for one conversion direction: a
// lower-cased source token → target token association plus the tokens
// ordered longest first for greedy matching. Built once at package init
// and never mutated afterward.
type index struct {
	repl map[string]string
	keys []indexKey
}

type indexKey struct {
	token string // lower-cased canonical form
	runes int
}

// newIndex builds a forward index from an ordered pair list.
// The first pair to claim a source token wins; later duplicates are ignored.
func newIndex(pairs []Mapping) *index {
	x := &index{repl: make(map[string]string, len(pairs))}
	for _, m := range pairs {
		x.add(strings.ToLower(m.Source), m.Target)
	}
	x.sortKeys()
	return x
}

// invert builds a reverse index by swapping every pair's target and source,
// then merging extras. Both passes are first-wins, so the pair list order
// resolves inversion collisions and canonical entries shadow extras.
func invert(pairs, extras []Mapping) *index {
	x := &index{repl: make(map[string]string, len(pairs)+len(extras))}
	for _, m := range pairs {
		x.add(strings.ToLower(m.Target), m.Source)
	}
	for _, m := range extras {
		x.add(strings.ToLower(m.Source), m.Target)
	}
	x.sortKeys()
	return x
}

func (x *index) add(token, target string) {
	if _, ok := x.repl[token]; ok {
		return
	}
	x.repl[token] = target
	x.keys = append(x.keys, indexKey{token: token, runes: utf8.RuneCountInString(token)})
}

func (x *index) sortKeys() {
	// Stable: equal-length tokens keep registration order. Matching is by
	// literal equality, so order among same-length keys cannot change the
	// result; stability just keeps the scan deterministic.
	slices.SortStableFunc(x.keys, func(a, b indexKey) int {
		return cmp.Compare(b.runes, a.runes)
	})
}
