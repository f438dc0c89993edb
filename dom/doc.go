/*
Package dom implements an in-memory document object model for HTML pages.

Overview

A Document is built from an HTML parse tree (golang.org/x/net/html). Every
HTML element node is wrapped by an Element. Elements are linked into a
tree of their own (package tree), mirroring the element structure of the
parse tree, while attributes and text stay with the HTML nodes. Changes
made through the Element API (attributes, classes, inline styles, form
control state, appended children) are applied to the HTML nodes, thus
rendering a Document always reflects its current state.

The API follows the browser DOM where widgets need it:

   attributes, dataset, className  → Attr, Data, AddClass, …
   style.display                   → Style, SetStyle, Show, Hide
   checked, value, htmlFor, …      → Checked, SetChecked, Value, HTMLFor, …
   querySelector(All), getElement… → QuerySelector(All), GetElementByID, …
   addEventListener, dispatchEvent → AddEventListener, DispatchEvent
   click(), focus(), blur()        → Click, Focus, Blur

Form control properties reflect into their attributes: checking a checkbox
sets its `checked` attribute, setting the value of an input sets its `value`
attribute. This deviates from browsers, where properties and attributes
split after the first change, but lets rendered output show live state.

Events

Events are dispatched synchronously. They are delivered to listeners at
the target, then – for bubbling events – to the target's ancestors, and
finally to the document. Clicking an element performs the default actions
browsers perform for checkboxes, radio buttons and labels.

A Document is not safe for concurrent use.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'widgets.dom'.
func tracer() tracing.Trace {
	return tracing.Select("widgets.dom")
}
