package dom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/widgets/tree"
	"golang.org/x/net/html"
)

// Element wraps an HTML element node. It is a node in the element tree of
// a document, with Payload always pointing back to the element itself.
type Element struct {
	tree.Node[*Element] // an element is a node in a tree
	eventTarget
	h   *html.Node // underlying HTML element node
	doc *Document  // owning document
}

// HTMLNode returns the underlying HTML node.
func (e *Element) HTMLNode() *html.Node {
	return e.h
}

// OwnerDocument returns the document this element has been created for.
func (e *Element) OwnerDocument() *Document {
	return e.doc
}

// TagName returns the lowercase tag name of the element, e.g. "div".
func (e *Element) TagName() string {
	return e.h.Data
}

// Is checks if an element has one of the given tag names.
func (e *Element) Is(tags ...string) bool {
	for _, t := range tags {
		if strings.EqualFold(e.h.Data, t) {
			return true
		}
	}
	return false
}

// ID returns the value of the id attribute.
func (e *Element) ID() string {
	return e.Attr("id")
}

// ParentElement returns the parent element, or nil for the document element
// and detached elements.
func (e *Element) ParentElement() *Element {
	if p := e.Parent(); p != nil {
		return p.Payload
	}
	return nil
}

// ChildElements returns the child elements, in document order.
func (e *Element) ChildElements() []*Element {
	children := e.Children()
	elems := make([]*Element, len(children))
	for i, ch := range children {
		elems[i] = ch.Payload
	}
	return elems
}

// Contains checks if other is e or one of its descendents.
func (e *Element) Contains(other *Element) bool {
	if other == nil {
		return false
	}
	return other == e || e.Node.IsAncestorOf(&other.Node)
}

// AppendChild appends ch as the last child of e. If ch is already part of
// a tree, it is moved.
func (e *Element) AppendChild(ch *Element) *Element {
	if ch == nil || ch == e {
		return e
	}
	if ch.h.Parent != nil {
		ch.h.Parent.RemoveChild(ch.h)
	}
	e.h.AppendChild(ch.h)
	e.Node.AddChild(&ch.Node)
	return e
}

// Remove detaches e (and its sub-tree) from the document.
func (e *Element) Remove() {
	if e.h.Parent != nil {
		e.h.Parent.RemoveChild(e.h)
	}
	e.Isolate()
	if e.doc != nil && e.Contains(e.doc.active) {
		e.doc.active = nil
	}
}

// TextContent returns the text of e and all its descendents.
func (e *Element) TextContent() string {
	var b strings.Builder
	collectText(e.h, &b)
	return b.String()
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		collectText(ch, b)
	}
}

// SetTextContent replaces all children of e by a single text node.
func (e *Element) SetTextContent(text string) {
	for _, ch := range e.ChildElements() {
		ch.Isolate()
	}
	for ch := e.h.FirstChild; ch != nil; ch = e.h.FirstChild {
		e.h.RemoveChild(ch)
	}
	if text != "" {
		e.h.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

// Describe returns a short, CSS-like description of an element,
// e.g. `div#menu.open[data-type=selector]`.
func (e *Element) Describe() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(e.h.Data)
	if id := e.ID(); id != "" {
		b.WriteString("#" + id)
	}
	for _, cls := range e.Classes() {
		b.WriteString("." + cls)
	}
	if t, ok := e.Data("type"); ok {
		fmt.Fprintf(&b, "[data-type=%s]", t)
	}
	return b.String()
}

func (e *Element) String() string {
	return e.Describe()
}
