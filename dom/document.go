package dom

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/npillmayer/widgets/dom/style/cssom"
	"github.com/npillmayer/widgets/dom/style/cssom/douceuradapter"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoDocument is returned if an HTML parse tree has no document node.
var ErrNoDocument = errors.New("HTML parse tree is not a document")

// Document is the root of a DOM.
type Document struct {
	eventTarget
	root   *html.Node              // HTML document node
	index  map[*html.Node]*Element // wrappers for HTML element nodes
	html   *Element                // document element
	active *Element                // element having focus
	styles *cssom.CSSOM            // rules from <style> elements
}

// Parse reads an HTML page and builds a Document from it.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return FromHTML(root)
}

// ParseString is a shortcut for Parse(strings.NewReader(s)).
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// FromHTML builds a Document from an HTML parse tree. The parse tree is
// owned by the Document afterwards.
func FromHTML(root *html.Node) (*Document, error) {
	if root == nil || root.Type != html.DocumentNode {
		return nil, ErrNoDocument
	}
	doc := &Document{
		root:  root,
		index: make(map[*html.Node]*Element),
	}
	doc.wrap(root, nil)
	doc.RefreshStyles()
	tracer().Debugf("built DOM with %d elements", len(doc.index))
	return doc, nil
}

// wrap creates Elements for all HTML element nodes below n (including n),
// attaching them to parent.
func (doc *Document) wrap(n *html.Node, parent *Element) {
	if n.Type == html.ElementNode {
		e := doc.newElement(n)
		if parent != nil {
			parent.Node.AddChild(&e.Node)
		} else if doc.html == nil {
			doc.html = e
		}
		parent = e
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		doc.wrap(ch, parent)
	}
}

func (doc *Document) newElement(n *html.Node) *Element {
	e := &Element{h: n, doc: doc}
	e.Payload = e // Payload will always reference the element itself
	doc.index[n] = e
	return e
}

// RefreshStyles re-reads all <style> elements of the document. Clients
// have to call it after changing style elements.
func (doc *Document) RefreshStyles() {
	doc.styles = cssom.NewCSSOM()
	for _, sheet := range douceuradapter.ExtractStyleElements(doc.root) {
		doc.styles.AddStyleSheet(sheet)
	}
}

// HTMLNode returns the underlying HTML document node.
func (doc *Document) HTMLNode() *html.Node {
	return doc.root
}

// DocumentElement returns the <html> element.
func (doc *Document) DocumentElement() *Element {
	return doc.html
}

// Head returns the <head> element, if any.
func (doc *Document) Head() *Element {
	return doc.childOfRoot(atom.Head)
}

// Body returns the <body> element, if any.
func (doc *Document) Body() *Element {
	return doc.childOfRoot(atom.Body)
}

func (doc *Document) childOfRoot(a atom.Atom) *Element {
	if doc.html == nil {
		return nil
	}
	for _, ch := range doc.html.ChildElements() {
		if ch.h.DataAtom == a {
			return ch
		}
	}
	return nil
}

// ElementFor returns the Element wrapping an HTML element node of this
// document.
func (doc *Document) ElementFor(n *html.Node) (*Element, bool) {
	e, ok := doc.index[n]
	return e, ok
}

// CreateElement creates a new, detached element with a given tag name.
func (doc *Document) CreateElement(tag string) *Element {
	tag = strings.ToLower(tag)
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	return doc.newElement(n)
}

// ActiveElement returns the element having focus, or nil.
func (doc *Document) ActiveElement() *Element {
	return doc.active
}

// AddEventListener registers a listener at document level. Bubbling events
// reach the document after all ancestors of their target.
// It returns a function to remove the listener again.
func (doc *Document) AddEventListener(typ string, l Listener) func() {
	return doc.addListener(typ, l)
}

// Render writes the document as HTML.
func (doc *Document) Render(w io.Writer) error {
	return html.Render(w, doc.root)
}

func (doc *Document) String() string {
	var b bytes.Buffer
	if err := doc.Render(&b); err != nil {
		tracer().Errorf("cannot render document: %v", err)
	}
	return b.String()
}
