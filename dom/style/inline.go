package style

import (
	"strings"

	"github.com/aymerick/douceur/parser"
)

// ParseInline parses the text of a style attribute, e.g.
//
//     display: none; color: red !important
//
// into a property map. Later declarations of a key win over earlier ones,
// unless the earlier one is marked important.
func ParseInline(text string) (*PropertyMap, error) {
	pmap := NewPropertyMap()
	if strings.TrimSpace(text) == "" {
		return pmap, nil
	}
	text = strings.TrimSpace(text)
	if !strings.HasSuffix(text, ";") {
		text += ";" // douceur drops a last declaration without terminator
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		tracer().Debugf("cannot parse inline style %q: %v", text, err)
		return pmap, err
	}
	important := make(map[string]bool)
	for _, d := range decls {
		key := normalizeKey(d.Property)
		if important[key] && !d.Important {
			continue
		}
		important[key] = important[key] || d.Important
		pmap.Set(key, Property(strings.TrimSpace(d.Value)))
	}
	return pmap, nil
}

// Display values used for showing and hiding elements.
const (
	DisplayNone  Property = "none"
	DisplayBlock Property = "block"
)
