// Package convert dispatches text to a registered set of transliteration
// converters, each named by a fixed conversion identifier.
//
// A default registry holding the four canonical converters (generic and
// Uzbek, both directions) is built once at package init; the package-level
// Convert, Resolve and Converters delegate to it. Separate Registry values
// can be built for tests or for callers needing a different converter set.
//
// The default registry is never mutated after init, so all package-level
// functions are safe for concurrent use. A Registry that is still being
// populated must not be shared between goroutines.
package convert

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abdulaziz-sultonmurodov/ScriptlyX/translit"
)

// ID names one (alphabet, direction) conversion.
type ID int

const (
	Unknown ID = iota // zero value, never registered
	GenericLatinToCyrillic
	GenericCyrillicToLatin
	UzbekLatinToCyrillic
	UzbekCyrillicToLatin
)

// idNames maps ID values to their string names.
var idNames = [...]string{
	Unknown:                "",
	GenericLatinToCyrillic: "generic-latin-to-cyrillic",
	GenericCyrillicToLatin: "generic-cyrillic-to-latin",
	UzbekLatinToCyrillic:   "uzbek-latin-to-cyrillic",
	UzbekCyrillicToLatin:   "uzbek-cyrillic-to-latin",
}

// idFromName maps string names back to ID values.
var idFromName = map[string]ID{
	"generic-latin-to-cyrillic": GenericLatinToCyrillic,
	"generic-cyrillic-to-latin": GenericCyrillicToLatin,
	"uzbek-latin-to-cyrillic":   UzbekLatinToCyrillic,
	"uzbek-cyrillic-to-latin":   UzbekCyrillicToLatin,
}

// String returns the name of the conversion, or "" for Unknown.
func (id ID) String() string {
	if int(id) >= 0 && int(id) < len(idNames) {
		return idNames[id]
	}
	return fmt.Sprintf("ID(%d)", int(id))
}

// ParseID resolves a conversion name (e.g. "uzbek-latin-to-cyrillic").
// Unrecognized names return (Unknown, false).
func ParseID(name string) (ID, bool) {
	id, ok := idFromName[name]
	return id, ok
}

// MarshalJSON encodes the id as a JSON string.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

// UnmarshalJSON decodes a JSON string into an ID.
func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, ok := idFromName[s]
	if !ok {
		return fmt.Errorf("convert: unknown conversion: %q", s)
	}
	*id = parsed
	return nil
}

// ErrUnknownConverter reports a conversion id that was never registered.
var ErrUnknownConverter = errors.New("unknown converter")

// Func transliterates text. Implementations must be total: every input
// string has a defined output and no error is possible.
type Func func(string) string

// Converter pairs a conversion id with its function.
type Converter struct {
	ID      ID
	Convert Func
}

// Registry maps conversion ids to converter functions.
type Registry struct {
	order []ID
	funcs map[ID]Func
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[ID]Func)}
}

// Register stores fn under id. Registering an id again silently replaces
// the previous converter (last wins, enabling override); the id keeps its
// original position in Converters order.
func (r *Registry) Register(id ID, fn Func) {
	if _, ok := r.funcs[id]; !ok {
		r.order = append(r.order, id)
	}
	r.funcs[id] = fn
}

// Resolve returns the converter registered under id.
func (r *Registry) Resolve(id ID) (Func, bool) {
	fn, ok := r.funcs[id]
	return fn, ok
}

// Convert transliterates text with the converter registered under id.
// Fails with ErrUnknownConverter when id was never registered.
func (r *Registry) Convert(text string, id ID) (string, error) {
	fn, ok := r.funcs[id]
	if !ok {
		return "", fmt.Errorf("convert %q: %w", id.String(), ErrUnknownConverter)
	}
	return fn(text), nil
}

// Converters returns the registered converters in registration order.
func (r *Registry) Converters() []Converter {
	out := make([]Converter, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, Converter{ID: id, Convert: r.funcs[id]})
	}
	return out
}

// defaultRegistry holds the four canonical converters. Populated once here
// and read-only afterward.
var defaultRegistry = func() *Registry {
	r := NewRegistry()
	r.Register(GenericLatinToCyrillic, translit.LatinToCyrillic)
	r.Register(GenericCyrillicToLatin, translit.CyrillicToLatin)
	r.Register(UzbekLatinToCyrillic, translit.UzbekLatinToCyrillic)
	r.Register(UzbekCyrillicToLatin, translit.UzbekCyrillicToLatin)
	return r
}()

// Convert transliterates text with one of the four canonical converters.
func Convert(text string, id ID) (string, error) {
	return defaultRegistry.Convert(text, id)
}

// Resolve returns one of the four canonical converters.
func Resolve(id ID) (Func, bool) {
	return defaultRegistry.Resolve(id)
}

// Converters returns the four canonical converters in registration order.
func Converters() []Converter {
	return defaultRegistry.Converters()
}
