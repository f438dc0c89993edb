/*
Package w3cdom defines interface types for W3C Document Object Models.

The interfaces cover the read-only part of the DOM Core: navigating nodes,
reading attributes and text, and querying computed styles. Tools which
inspect documents (debugging output, rendering of sketches) are written
against these interfaces, not against a concrete DOM implementation.

See also https://www.w3schools.com/XML/dom_intro.asp

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package w3cdom

import (
	"github.com/npillmayer/widgets/dom/style"
	"golang.org/x/net/html"
)

// Node represents W3C-type Node
type Node interface {
	NodeType() html.NodeType        // type of the underlying HTML node (ElementNode, TextNode, etc.)
	NodeName() string               // node name output depends on the node's type
	NodeValue() string              // node value output depends on the node's type
	HasAttributes() bool            // check for existence of attributes
	ParentNode() Node               // get the parent node, if any
	HasChildNodes() bool            // check for existence of sub-nodes
	ChildNodes() NodeList           // get a list of all children-nodes
	Children() NodeList             // get a list of element child-nodes
	FirstChild() Node               // get the first children-node
	NextSibling() Node              // get the Node's next sibling or nil if last
	Attributes() NamedNodeMap       // get all attributes of a node
	ComputedStyles() ComputedStyles // get computed CSS styles; nil for non-elements
	TextContent() (string, error)   // get text from node and all descendents
}

// NodeList represents W3C-type NodeList
type NodeList interface {
	Length() int
	Item(int) Node
	String() string
}

// Attr represents W3C-type Attr
type Attr interface {
	Namespace() string
	Key() string
	Value() string
}

// NamedNodeMap represents w3C-type NamedNodeMap
type NamedNodeMap interface {
	Length() int
	Item(int) Attr
	GetNamedItem(string) Attr
}

// ComputedStyles represents the CSS styles applying to an element.
type ComputedStyles interface {
	GetPropertyValue(string) style.Property
	Styles() *style.PropertyMap
}

// Element represents a W3C-type Element, including the parts of the HTML
// element interface which tell about a widget's state.
type Element interface {
	Node
	TagName() string                    // lowercase tag name
	GetAttribute(string) (string, bool) // attribute value, if set
	ClassList() []string                // class names
	Dataset() map[string]string         // data-* attributes in dataset form
	IsVisible() bool                    // element and ancestors are displayed
}

// Document represents a W3C-type Document
type Document interface {
	Node
	DocumentElement() Element
	GetElementByID(string) Element
	QuerySelectorAll(string) (NodeList, error)
}
