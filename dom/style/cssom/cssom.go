package cssom

import (
	"sort"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/widgets/dom/style"
	"golang.org/x/net/html"
)

// CSSOM holds the compiled rules of all stylesheets of a document.
type CSSOM struct {
	rules []compiledRule
}

type compiledRule struct {
	selectors cascadia.SelectorGroup
	rule      Rule
	order     int // source order
}

// NewCSSOM creates an empty CSSOM.
func NewCSSOM() *CSSOM {
	return &CSSOM{}
}

// AddStyleSheet compiles the rules of sheet and appends them to the
// CSSOM, after the rules already present.
// Rules with selectors cascadia cannot parse (e.g., at-rules) are skipped.
func (om *CSSOM) AddStyleSheet(sheet StyleSheet) {
	if sheet == nil || sheet.Empty() {
		return
	}
	for _, r := range sheet.Rules() {
		sel, err := cascadia.ParseGroup(r.Selector())
		if err != nil {
			tracer().P("selector", r.Selector()).Debugf("skipping CSS rule: %v", err)
			continue
		}
		om.rules = append(om.rules, compiledRule{
			selectors: sel,
			rule:      r,
			order:     len(om.rules),
		})
	}
}

// Size returns the number of compiled rules.
func (om *CSSOM) Size() int {
	if om == nil {
		return 0
	}
	return len(om.rules)
}

type declaration struct {
	key       string
	value     style.Property
	important bool
	spec      cascadia.Specificity
	order     int
}

// ComputeStyles returns the styles for an HTML element node: all matching
// rules in cascade order, with inline (if non-nil) on top.
// Important rule declarations win over inline declarations.
func (om *CSSOM) ComputeStyles(n *html.Node, inline *style.PropertyMap) *style.PropertyMap {
	pmap := style.NewPropertyMap()
	if n == nil || n.Type != html.ElementNode {
		return pmap
	}
	var decls []declaration
	if om != nil {
		for _, cr := range om.rules {
			spec, matches := matchSpecificity(cr.selectors, n)
			if !matches {
				continue
			}
			for _, key := range cr.rule.Properties() {
				decls = append(decls, declaration{
					key:       key,
					value:     cr.rule.Value(key),
					important: cr.rule.IsImportant(key),
					spec:      spec,
					order:     cr.order,
				})
			}
		}
	}
	sort.SliceStable(decls, func(i, j int) bool {
		a, b := decls[i], decls[j]
		if a.important != b.important {
			return !a.important
		}
		if a.spec != b.spec {
			return a.spec.Less(b.spec)
		}
		return a.order < b.order
	})
	var important []declaration
	for _, d := range decls {
		if d.important {
			important = append(important, d)
			continue
		}
		pmap.Set(d.key, d.value)
	}
	pmap.Merge(inline)
	for _, d := range important {
		pmap.Set(d.key, d.value)
	}
	return pmap
}

// matchSpecificity returns the highest specificity of the selectors in
// group matching n.
func matchSpecificity(group cascadia.SelectorGroup, n *html.Node) (cascadia.Specificity, bool) {
	var max cascadia.Specificity
	matched := false
	for _, sel := range group {
		if sel.Match(n) {
			if s := sel.Specificity(); !matched || max.Less(s) {
				max = s
			}
			matched = true
		}
	}
	return max, matched
}
