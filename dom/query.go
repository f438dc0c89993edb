package dom

import (
	"errors"
	"regexp"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/widgets/tree"
	"golang.org/x/net/html"
)

// QuerySelectorAll returns all elements of the document matching a CSS
// selector group, in document order.
func (doc *Document) QuerySelectorAll(selector string) ([]*Element, error) {
	return doc.queryAll(doc.root, selector)
}

// QuerySelector returns the first element of the document matching a CSS
// selector group, or nil.
func (doc *Document) QuerySelector(selector string) (*Element, error) {
	return doc.query(doc.root, selector)
}

// QuerySelectorAll returns all descendents of e matching a CSS selector
// group, in document order. e itself is never part of the result.
func (e *Element) QuerySelectorAll(selector string) ([]*Element, error) {
	return e.doc.queryAll(e.h, selector)
}

// QuerySelector returns the first descendent of e matching a CSS selector
// group, or nil.
func (e *Element) QuerySelector(selector string) (*Element, error) {
	return e.doc.query(e.h, selector)
}

// QueryAllOrNone is like QuerySelectorAll, but returns an empty list for
// an invalid selector.
func (e *Element) QueryAllOrNone(selector string) []*Element {
	elems, err := e.QuerySelectorAll(selector)
	if err != nil {
		tracer().Errorf("invalid selector %q: %v", selector, err)
		return nil
	}
	return elems
}

// Matches checks if e matches a CSS selector group.
func (e *Element) Matches(selector string) (bool, error) {
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return false, err
	}
	return sel.Match(e.h), nil
}

func (doc *Document) queryAll(n *html.Node, selector string) ([]*Element, error) {
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, err
	}
	nodes := cascadia.QueryAll(n, sel)
	elems := make([]*Element, 0, len(nodes))
	for _, hn := range nodes {
		if e, ok := doc.index[hn]; ok {
			elems = append(elems, e)
		}
	}
	return elems, nil
}

func (doc *Document) query(n *html.Node, selector string) (*Element, error) {
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, err
	}
	if hn := cascadia.Query(n, sel); hn != nil {
		return doc.index[hn], nil
	}
	return nil, nil
}

// GetElementByID returns the first element in document order with a
// given id, or nil.
func (doc *Document) GetElementByID(id string) *Element {
	if id == "" {
		return nil
	}
	var found *html.Node
	var visit func(*html.Node) bool
	visit = func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Namespace == "" && a.Key == "id" && a.Val == id {
					found = n
					return true
				}
			}
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			if visit(ch) {
				return true
			}
		}
		return false
	}
	visit(doc.root)
	if found == nil {
		return nil
	}
	return doc.index[found]
}

// GetElementsByClassName returns all elements of the document having a
// class name.
func (doc *Document) GetElementsByClassName(cls string) []*Element {
	if doc.html == nil {
		return nil
	}
	return doc.html.getByClass(cls, true)
}

// GetElementsByClassName returns all descendents of e having a class name.
func (e *Element) GetElementsByClassName(cls string) []*Element {
	return e.getByClass(cls, false)
}

func (e *Element) getByClass(cls string, self bool) []*Element {
	var elems []*Element
	if self && e.HasClass(cls) {
		elems = append(elems, e)
	}
	hasClass := tree.PayloadIs(func(el *Element) bool {
		return el.HasClass(cls)
	})
	nodes, _ := tree.NewWalker(&e.Node).DescendentsWith(hasClass).Promise()()
	for _, n := range nodes {
		elems = append(elems, n.Payload)
	}
	return elems
}

var errLevelExceeded = errors.New("ancestor search limit exceeded")

var (
	idShortcut    = regexp.MustCompile(`^#[A-Za-z0-9_-]+$`)
	classShortcut = regexp.MustCompile(`^\.[A-Za-z0-9_-]+$`)
)

// GetElement looks up an element by a selector string:
//
//    "#name"   → element with id "name" (searching the whole document)
//    ".name"   → first element with class "name" within container
//    otherwise → first element matching the selector within container
//
// If container is nil, the whole document is searched. An empty or
// invalid selector yields nil.
func (doc *Document) GetElement(selector string, container *Element) *Element {
	switch {
	case selector == "":
		return nil
	case idShortcut.MatchString(selector):
		return doc.GetElementByID(selector[1:])
	}
	if elems := doc.GetElements(selector, container); len(elems) > 0 {
		return elems[0]
	}
	return nil
}

// GetElements looks up elements by a selector string, within container.
// See GetElement for the lookup rules.
func (doc *Document) GetElements(selector string, container *Element) []*Element {
	if selector == "" {
		return nil
	}
	if idShortcut.MatchString(selector) {
		if e := doc.GetElementByID(selector[1:]); e != nil {
			return []*Element{e}
		}
		return nil
	}
	if classShortcut.MatchString(selector) {
		if container == nil {
			return doc.GetElementsByClassName(selector[1:])
		}
		return container.GetElementsByClassName(selector[1:])
	}
	var elems []*Element
	var err error
	if container == nil {
		elems, err = doc.QuerySelectorAll(selector)
	} else {
		elems, err = container.QuerySelectorAll(selector)
	}
	if err != nil {
		tracer().Debugf("cannot look up %q: %v", selector, err)
		return nil
	}
	return elems
}

// FindAncestor returns the nearest ancestor of e (excluding e) for which
// pred holds. At most max levels are searched; max < 0 means no limit.
func (e *Element) FindAncestor(pred func(*Element) bool, max int) *Element {
	level := 0
	match := func(test, _ *tree.Node[*Element]) (*tree.Node[*Element], error) {
		level++
		if max >= 0 && level > max {
			return nil, errLevelExceeded
		}
		if pred(test.Payload) {
			return test, nil
		}
		return nil, nil
	}
	nodes, err := tree.NewWalker(&e.Node).AncestorWith(match).Promise()()
	if err != nil || len(nodes) == 0 {
		return nil
	}
	return nodes[0].Payload
}
