package dom

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// Attr returns the value of an attribute, or "" if it is not set.
func (e *Element) Attr(key string) string {
	v, _ := e.LookupAttr(key)
	return v
}

// LookupAttr returns the value of an attribute and a flag indicating
// whether the attribute is set.
func (e *Element) LookupAttr(key string) (string, bool) {
	key = strings.ToLower(key)
	for _, a := range e.h.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttr checks if an attribute is set.
func (e *Element) HasAttr(key string) bool {
	_, ok := e.LookupAttr(key)
	return ok
}

// SetAttr sets an attribute, replacing an existing value.
func (e *Element) SetAttr(key, value string) {
	key = strings.ToLower(key)
	for i, a := range e.h.Attr {
		if a.Namespace == "" && a.Key == key {
			e.h.Attr[i].Val = value
			return
		}
	}
	e.h.Attr = append(e.h.Attr, html.Attribute{Key: key, Val: value})
}

// RemoveAttr removes an attribute. It is a no-op if the attribute is not set.
func (e *Element) RemoveAttr(key string) {
	key = strings.ToLower(key)
	attrs := e.h.Attr[:0]
	for _, a := range e.h.Attr {
		if a.Namespace != "" || a.Key != key {
			attrs = append(attrs, a)
		}
	}
	e.h.Attr = attrs
}

// --- Dataset ---------------------------------------------------------------

// Data returns the value of a data attribute. Keys may be given in
// attribute form ("counter-max") or in dataset form ("counterMax").
func (e *Element) Data(key string) (string, bool) {
	return e.LookupAttr(dataAttrName(key))
}

// HasData checks if a data attribute is set.
func (e *Element) HasData(key string) bool {
	return e.HasAttr(dataAttrName(key))
}

// SetData sets a data attribute.
func (e *Element) SetData(key, value string) {
	e.SetAttr(dataAttrName(key), value)
}

// RemoveData removes a data attribute.
func (e *Element) RemoveData(key string) {
	e.RemoveAttr(dataAttrName(key))
}

// Dataset returns all data attributes, keyed in dataset form
// ("data-counter-max" → "counterMax").
func (e *Element) Dataset() map[string]string {
	set := make(map[string]string)
	for _, a := range e.h.Attr {
		if a.Namespace == "" && strings.HasPrefix(a.Key, "data-") {
			set[datasetKey(strings.TrimPrefix(a.Key, "data-"))] = a.Val
		}
	}
	return set
}

// dataAttrName converts "counterMax" or "counter-max" to "data-counter-max".
func dataAttrName(key string) string {
	var b strings.Builder
	b.WriteString("data-")
	for _, r := range key {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// datasetKey converts "counter-max" to "counterMax".
func datasetKey(name string) string {
	var b strings.Builder
	upper := false
	for _, r := range name {
		if r == '-' {
			upper = true
			continue
		}
		if upper && unicode.IsLower(r) {
			r = unicode.ToUpper(r)
		} else if upper {
			b.WriteByte('-')
		}
		upper = false
		b.WriteRune(r)
	}
	return b.String()
}

// --- Classes ---------------------------------------------------------------

// Classes returns the class names of an element.
func (e *Element) Classes() []string {
	return strings.Fields(e.Attr("class"))
}

// HasClass checks if an element has a class name.
func (e *Element) HasClass(cls string) bool {
	for _, c := range e.Classes() {
		if c == cls {
			return true
		}
	}
	return false
}

// AddClass adds class names not already present. The class attribute is
// normalized to single spaces.
func (e *Element) AddClass(classes ...string) {
	current := e.Classes()
	for _, cls := range classes {
		if cls != "" && !contains(current, cls) {
			current = append(current, cls)
		}
	}
	e.setClasses(current)
}

// RemoveClass removes class names.
func (e *Element) RemoveClass(classes ...string) {
	current := e.Classes()
	kept := current[:0]
	for _, c := range current {
		if !contains(classes, c) {
			kept = append(kept, c)
		}
	}
	e.setClasses(kept)
}

// ToggleClass adds a class name if absent and removes it otherwise.
// It returns true if the class is present afterwards.
func (e *Element) ToggleClass(cls string) bool {
	if e.HasClass(cls) {
		e.RemoveClass(cls)
		return false
	}
	e.AddClass(cls)
	return true
}

func (e *Element) setClasses(classes []string) {
	if len(classes) == 0 {
		if e.HasAttr("class") {
			e.SetAttr("class", "")
		}
		return
	}
	e.SetAttr("class", strings.Join(classes, " "))
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
