/*
Package style holds CSS property values and maps of properties.

Elements carry their inline style as a `style` attribute. Package style
parses such declaration lists into a PropertyMap, lets clients change
single properties, and serializes the map back into attribute text.
Parsing is done by github.com/aymerick/douceur.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'widgets.style'
func tracer() tracing.Trace {
	return tracing.Select("widgets.style")
}

// Property is a raw value for a CSS property. For example, with
//
//     display: none
//
// a property value of "none" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- Property Map ----------------------------------------------------------

// PropertyMap holds CSS properties in the order of their first assignment.
// Keys are lower-case property names, e.g. "margin-top".
// The zero value is not usable; use NewPropertyMap.
type PropertyMap struct {
	keys  []string
	props map[string]Property
}

// NewPropertyMap creates an empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{props: make(map[string]Property)}
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Size returns the number of properties in the map.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.keys)
}

// Property returns the value for key, if present.
func (pmap *PropertyMap) Property(key string) (Property, bool) {
	if pmap == nil {
		return NullStyle, false
	}
	p, ok := pmap.props[normalizeKey(key)]
	return p, ok
}

// Set sets the property for key, overwriting an existing value.
// Setting the null-string removes the property.
func (pmap *PropertyMap) Set(key string, value Property) {
	key = normalizeKey(key)
	if value.IsEmpty() {
		pmap.Remove(key)
		return
	}
	if _, exists := pmap.props[key]; !exists {
		pmap.keys = append(pmap.keys, key)
	}
	pmap.props[key] = value
}

// Remove deletes the property for key, if present.
func (pmap *PropertyMap) Remove(key string) {
	key = normalizeKey(key)
	if _, exists := pmap.props[key]; !exists {
		return
	}
	delete(pmap.props, key)
	for i, k := range pmap.keys {
		if k == key {
			pmap.keys = append(pmap.keys[:i], pmap.keys[i+1:]...)
			break
		}
	}
}

// Properties returns all properties in order of assignment.
func (pmap *PropertyMap) Properties() []KeyValue {
	if pmap == nil {
		return nil
	}
	kv := make([]KeyValue, len(pmap.keys))
	for i, k := range pmap.keys {
		kv[i] = KeyValue{Key: k, Value: pmap.props[k]}
	}
	return kv
}

// Merge copies all properties of other into pmap. Existing values are
// overwritten.
func (pmap *PropertyMap) Merge(other *PropertyMap) *PropertyMap {
	for _, kv := range other.Properties() {
		pmap.Set(kv.Key, kv.Value)
	}
	return pmap
}

// String serializes the map in the format of a style attribute,
// e.g. "display: none; color: red".
func (pmap *PropertyMap) String() string {
	var b strings.Builder
	for i, kv := range pmap.Properties() {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(kv.Key)
		b.WriteString(": ")
		b.WriteString(kv.Value.String())
	}
	return b.String()
}
