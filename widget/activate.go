package widget

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/widgets/dom"
	"github.com/npillmayer/widgets/maybe"
	"github.com/npillmayer/widgets/result"
	"golang.org/x/net/html"
)

// Callback is called by a widget controller after its state changed.
// The meaning of value and element depends on the widget family.
type Callback func(value string, element *dom.Element)

// Activator activates widgets within one document.
type Activator struct {
	doc          *dom.Document
	trace        tracing.Trace
	onDiagnostic func(Diagnostic)
}

// Option configures an Activator.
type Option func(*Activator)

// WithTrace sets the tracer for diagnostics. Default is the tracer with
// key 'widgets.activate'.
func WithTrace(t tracing.Trace) Option {
	return func(a *Activator) {
		if t != nil {
			a.trace = t
		}
	}
}

// OnDiagnostic sets a hook receiving every diagnostic reported during
// activation and – for missing collaborators – during event handling.
func OnDiagnostic(hook func(Diagnostic)) Option {
	return func(a *Activator) {
		a.onDiagnostic = hook
	}
}

// New creates an Activator for a document.
func New(doc *dom.Document, opts ...Option) *Activator {
	a := &Activator{doc: doc, trace: tracer()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Document returns the document widgets are activated in.
func (a *Activator) Document() *dom.Document {
	return a.doc
}

// Selector activates selectors (data-type "selector" or "form-selector").
//
// container may be a *dom.Element, a *html.Node of the document, a selector
// string or nil. For an element which is a selector itself, just this
// selector is activated. Otherwise all selectors below container are
// activated; nil stands for the whole document.
//
// For a plain selector, the callback receives the data-value of the item
// clicked. For a form-bound selector, it receives the value of the radio
// button checked.
func (a *Activator) Selector(container any, cb Callback) (maybe.Maybe[[]*dom.Element], error) {
	return a.activate(selectors, container, cb)
}

// Switch activates switches (data-type "switch" or "form-switch").
// See Selector for the interpretation of container.
//
// For a plain switch, the callback receives the data-value of the
// container or, if absent, the new state ("on" or "off"). For a
// form-bound switch, it receives the value of the checkbox; it is called
// once during activation.
func (a *Activator) Switch(container any, cb Callback) (maybe.Maybe[[]*dom.Element], error) {
	return a.activate(switches, container, cb)
}

// Collapsible activates collapsibles (data-collapsible or
// data-type "collapsible"). See Selector for the interpretation of
// container.
//
// The callback is called with ("expanded", container) whenever a
// collapsible is opened by a click on its header.
func (a *Activator) Collapsible(container any, cb Callback) (maybe.Maybe[[]*dom.Element], error) {
	return a.activate(collapsibles, container, cb)
}

// Accordion activates accordions (data-type "accordion" or data-boost
// "accordion"). See Selector for the interpretation of container.
//
// The callback is called with ("expanded", item) whenever an item of an
// accordion is opened by a click on its header.
func (a *Activator) Accordion(container any, cb Callback) (maybe.Maybe[[]*dom.Element], error) {
	return a.activate(accordions, container, cb)
}

// ActivateAll activates selectors, switches, collapsibles and accordions
// within container. The list returned contains the widget containers of
// all families. If activation of a family fails, ActivateAll stops and
// returns the error.
func (a *Activator) ActivateAll(container any, cb Callback) (maybe.Maybe[[]*dom.Element], error) {
	var all []*dom.Element
	for _, f := range []*family{selectors, switches, collapsibles, accordions} {
		found, err := a.activate(f, container, cb)
		if err != nil {
			return maybe.Nothing[[]*dom.Element](), err
		}
		roots, ok := found.Get()
		if !ok {
			return found, nil
		}
		all = append(all, roots...)
	}
	return maybe.Just(all), nil
}

// activate resolves container to widget containers of a family and creates
// and activates a controller for each of them.
func (a *Activator) activate(f *family, container any, cb Callback) (maybe.Maybe[[]*dom.Element], error) {
	found, err := a.resolve(f, container)
	if err != nil {
		a.report(Diagnostic{Kind: ConfigurationError, Family: f.name, Err: err})
		return found, err
	}
	var roots []*dom.Element
	switch m := found.Match(); m {
	case m.Just(&roots):
		for _, root := range roots {
			var c controller
			var err error
			switch r := a.create(f, root, cb).Match(); r {
			case r.Ok(&c):
				c.activate()
			case r.Err(&err):
				a.report(Diagnostic{Kind: ConfigurationError, Family: f.name, Element: root, Err: err})
			}
		}
		a.trace.P("family", f.name).Debugf("activated %d widget(s)", len(roots))
	case m.Nothing():
		a.report(Diagnostic{
			Kind:   ResolutionMiss,
			Family: f.name,
			Err:    fmt.Errorf("no element for %v", container),
		})
	}
	return found, nil
}

// resolve finds the widget containers of a family for a container argument.
// Unresolvable strings yield Nothing, invalid arguments an error.
func (a *Activator) resolve(f *family, container any) (maybe.Maybe[[]*dom.Element], error) {
	none := maybe.Nothing[[]*dom.Element]()
	switch c := container.(type) {
	case nil:
		return a.resolveElement(f, nil), nil
	case *dom.Element:
		if c != nil && c.OwnerDocument() != a.doc {
			return none, fmt.Errorf("%w: %s belongs to another document", ErrNotAnElement, c)
		}
		return a.resolveElement(f, c), nil
	case *html.Node:
		if c == nil {
			return a.resolveElement(f, nil), nil
		}
		el, ok := a.doc.ElementFor(c)
		if !ok {
			return none, fmt.Errorf("%w: HTML node of type %d", ErrNotAnElement, c.Type)
		}
		return a.resolveElement(f, el), nil
	case string:
		if strings.TrimSpace(c) == "" {
			return none, nil
		}
		el := a.doc.GetElement(c, nil)
		if el == nil {
			return none, nil
		}
		return a.resolveElement(f, el), nil
	}
	return none, fmt.Errorf("%w: have %T", ErrInvalidContainer, container)
}

// resolveElement returns [el] if el is a container of family f, and all
// containers below el otherwise. For el == nil the whole document is
// searched.
func (a *Activator) resolveElement(f *family, el *dom.Element) maybe.Maybe[[]*dom.Element] {
	var found []*dom.Element
	var err error
	switch {
	case el == nil:
		found, err = a.doc.QuerySelectorAll(f.query)
	case f.match(el):
		found = []*dom.Element{el}
	default:
		found, err = el.QuerySelectorAll(f.query)
	}
	if err != nil {
		a.trace.Errorf("invalid query for %s: %v", f.name, err)
	}
	if found == nil {
		found = []*dom.Element{}
	}
	return maybe.Just(found)
}

// --- Factory ---------------------------------------------------------------

// controller is the behavior of one widget instance.
type controller interface {
	Kind() Kind
	Container() *dom.Element
	activate()
}

// widget holds what all controllers share.
type widget struct {
	a         *Activator
	kind      Kind
	container *dom.Element
	callback  Callback
}

func (w *widget) Kind() Kind {
	return w.kind
}

func (w *widget) Container() *dom.Element {
	return w.container
}

func (w *widget) notify(value string, el *dom.Element) {
	w.a.trace.P("kind", w.kind).Debugf("%s: value=%q", el, value)
	if w.callback != nil {
		w.callback(value, el)
	}
}

func (w *widget) missing(el *dom.Element, format string, args ...interface{}) {
	w.a.report(Diagnostic{
		Kind:    MissingCollaborator,
		Family:  w.kind.String(),
		Element: el,
		Err:     fmt.Errorf("%w: %s", ErrMissingPart, fmt.Sprintf(format, args...)),
	})
}

// create is the factory for controllers. It dispatches over the kind of
// the container.
func (a *Activator) create(f *family, container *dom.Element, cb Callback) result.Result[controller] {
	if container == nil {
		return result.Err[controller](ErrNotAnElement)
	}
	var kind Kind
	if f.kind != nil {
		kind = f.kind(container)
	}
	w := widget{a: a, kind: kind, container: container, callback: cb}
	switch kind {
	case PlainSelector:
		return result.Ok[controller](&plainSelector{widget: w})
	case FormSelector:
		return result.Ok[controller](&formSelector{widget: w})
	case PlainSwitch:
		return result.Ok[controller](&plainSwitch{widget: w})
	case FormSwitch:
		return result.Ok[controller](&formSwitch{widget: w})
	case CollapsibleKind:
		return result.Ok[controller](&collapsible{widget: w})
	case AccordionKind:
		return result.Ok[controller](&accordion{widget: w})
	}
	return result.Err[controller](fmt.Errorf("%w: data-type=%q", ErrUnknownType, dataType(container)))
}

// --- Helpers ---------------------------------------------------------------

func state(e *dom.Element) string {
	s, _ := e.Data("state")
	return s
}

func setState(e *dom.Element, s string) {
	e.SetData("state", s)
}

func onOff(b bool) string {
	if b {
		return On
	}
	return Off
}

// getInput finds the input bound to an element: for a label with a for
// attribute it is the element with this id, otherwise the first input of
// the given type below el.
func getInput(doc *dom.Document, typ string, el *dom.Element) *dom.Element {
	if el.TagName() == "label" {
		if id := strings.TrimSpace(el.HTMLFor()); id != "" {
			return doc.GetElementByID(id)
		}
	}
	for _, input := range el.QueryAllOrNone("input") {
		if input.InputType() == typ {
			return input
		}
	}
	return nil
}
