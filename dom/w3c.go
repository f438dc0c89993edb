package dom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/widgets/dom/style"
	"github.com/npillmayer/widgets/dom/w3cdom"
	"golang.org/x/net/html"
)

// W3CNode is a read-only view of a node of a document, implementing
// w3cdom.Node. Unlike Element, it covers all kinds of HTML nodes,
// including text and comments.
type W3CNode struct {
	h   *html.Node
	doc *Document
}

// W3C returns a W3C view of the document.
func (doc *Document) W3C() *W3CDocument {
	return &W3CDocument{W3CNode: &W3CNode{h: doc.root, doc: doc}}
}

// W3C returns a W3C view of an element.
func (e *Element) W3C() *W3CNode {
	return &W3CNode{h: e.h, doc: e.doc}
}

func (doc *Document) w3cNode(n *html.Node) w3cdom.Node {
	if n == nil {
		return nil
	}
	return &W3CNode{h: n, doc: doc}
}

// HTMLNode returns the underlying HTML node.
func (w *W3CNode) HTMLNode() *html.Node {
	return w.h
}

// Element returns the Element for w, if w represents an element.
func (w *W3CNode) Element() (*Element, bool) {
	return w.doc.ElementFor(w.h)
}

// NodeType is part of interface w3cdom.Node.
func (w *W3CNode) NodeType() html.NodeType {
	return w.h.Type
}

// NodeName returns the tag name for elements, "#text" for text nodes,
// "#comment" for comments and "#document" for the document node.
func (w *W3CNode) NodeName() string {
	switch w.h.Type {
	case html.ElementNode:
		return w.h.Data
	case html.TextNode:
		return "#text"
	case html.CommentNode:
		return "#comment"
	case html.DocumentNode:
		return "#document"
	case html.DoctypeNode:
		return w.h.Data
	}
	return "<unknown>"
}

// NodeValue returns the text of text and comment nodes, "" otherwise.
func (w *W3CNode) NodeValue() string {
	if w.h.Type == html.TextNode || w.h.Type == html.CommentNode {
		return w.h.Data
	}
	return ""
}

// HasAttributes is part of interface w3cdom.Node.
func (w *W3CNode) HasAttributes() bool {
	return len(w.h.Attr) > 0
}

// ParentNode is part of interface w3cdom.Node.
func (w *W3CNode) ParentNode() w3cdom.Node {
	return w.doc.w3cNode(w.h.Parent)
}

// HasChildNodes is part of interface w3cdom.Node.
func (w *W3CNode) HasChildNodes() bool {
	return w.h.FirstChild != nil
}

// ChildNodes is part of interface w3cdom.Node.
func (w *W3CNode) ChildNodes() w3cdom.NodeList {
	list := &nodeList{}
	for ch := w.h.FirstChild; ch != nil; ch = ch.NextSibling {
		list.nodes = append(list.nodes, &W3CNode{h: ch, doc: w.doc})
	}
	return list
}

// Children returns the element children of w.
func (w *W3CNode) Children() w3cdom.NodeList {
	list := &nodeList{}
	for ch := w.h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			list.nodes = append(list.nodes, &W3CNode{h: ch, doc: w.doc})
		}
	}
	return list
}

// FirstChild is part of interface w3cdom.Node.
func (w *W3CNode) FirstChild() w3cdom.Node {
	return w.doc.w3cNode(w.h.FirstChild)
}

// NextSibling is part of interface w3cdom.Node.
func (w *W3CNode) NextSibling() w3cdom.Node {
	return w.doc.w3cNode(w.h.NextSibling)
}

// Attributes is part of interface w3cdom.Node.
func (w *W3CNode) Attributes() w3cdom.NamedNodeMap {
	return attrMap(w.h.Attr)
}

// ComputedStyles returns the styles of an element. For other nodes it
// returns nil.
func (w *W3CNode) ComputedStyles() w3cdom.ComputedStyles {
	if e, ok := w.Element(); ok {
		return computedStyles{e.ComputedStyles()}
	}
	return nil
}

// TextContent is part of interface w3cdom.Node.
func (w *W3CNode) TextContent() (string, error) {
	var b strings.Builder
	collectText(w.h, &b)
	return b.String(), nil
}

// TagName is part of interface w3cdom.Element.
func (w *W3CNode) TagName() string {
	if w.h.Type != html.ElementNode {
		return ""
	}
	return w.h.Data
}

// GetAttribute is part of interface w3cdom.Element.
func (w *W3CNode) GetAttribute(key string) (string, bool) {
	if e, ok := w.Element(); ok {
		return e.LookupAttr(key)
	}
	return "", false
}

// ClassList is part of interface w3cdom.Element.
func (w *W3CNode) ClassList() []string {
	if e, ok := w.Element(); ok {
		return e.Classes()
	}
	return nil
}

// Dataset is part of interface w3cdom.Element.
func (w *W3CNode) Dataset() map[string]string {
	if e, ok := w.Element(); ok {
		return e.Dataset()
	}
	return map[string]string{}
}

// IsVisible is part of interface w3cdom.Element.
func (w *W3CNode) IsVisible() bool {
	if e, ok := w.Element(); ok {
		return e.IsVisible()
	}
	return false
}

func (w *W3CNode) String() string {
	if e, ok := w.Element(); ok {
		return e.Describe()
	}
	return w.NodeName()
}

var _ w3cdom.Element = &W3CNode{}

// W3CDocument is a W3C view of a document.
type W3CDocument struct {
	*W3CNode
}

// DocumentElement is part of interface w3cdom.Document.
func (wd *W3CDocument) DocumentElement() w3cdom.Element {
	if wd.doc.html == nil {
		return nil
	}
	return wd.doc.html.W3C()
}

// GetElementByID is part of interface w3cdom.Document.
func (wd *W3CDocument) GetElementByID(id string) w3cdom.Element {
	if e := wd.doc.GetElementByID(id); e != nil {
		return e.W3C()
	}
	return nil
}

// QuerySelectorAll is part of interface w3cdom.Document.
func (wd *W3CDocument) QuerySelectorAll(selector string) (w3cdom.NodeList, error) {
	elems, err := wd.doc.QuerySelectorAll(selector)
	if err != nil {
		return nil, err
	}
	list := &nodeList{}
	for _, e := range elems {
		list.nodes = append(list.nodes, e.W3C())
	}
	return list, nil
}

var _ w3cdom.Document = &W3CDocument{}

// --- Helper types ----------------------------------------------------------

type nodeList struct {
	nodes []*W3CNode
}

func (l *nodeList) Length() int {
	return len(l.nodes)
}

func (l *nodeList) Item(i int) w3cdom.Node {
	if i < 0 || i >= len(l.nodes) {
		return nil
	}
	return l.nodes[i]
}

func (l *nodeList) String() string {
	names := make([]string, len(l.nodes))
	for i, n := range l.nodes {
		names[i] = n.String()
	}
	return fmt.Sprintf("[%s]", strings.Join(names, " "))
}

type attr struct {
	a html.Attribute
}

func (a attr) Namespace() string { return a.a.Namespace }
func (a attr) Key() string       { return a.a.Key }
func (a attr) Value() string     { return a.a.Val }

type attrMap []html.Attribute

func (m attrMap) Length() int {
	return len(m)
}

func (m attrMap) Item(i int) w3cdom.Attr {
	if i < 0 || i >= len(m) {
		return nil
	}
	return attr{m[i]}
}

func (m attrMap) GetNamedItem(key string) w3cdom.Attr {
	for _, a := range m {
		if a.Key == key {
			return attr{a}
		}
	}
	return nil
}

type computedStyles struct {
	pmap *style.PropertyMap
}

func (cs computedStyles) GetPropertyValue(key string) style.Property {
	p, _ := cs.pmap.Property(key)
	return p
}

func (cs computedStyles) Styles() *style.PropertyMap {
	return cs.pmap
}
