package widget

import (
	"strings"

	"github.com/npillmayer/widgets/dom"
)

// Kind is the variant of a widget controller. The factory dispatches over
// kinds; every kind belongs to exactly one family.
type Kind int8

// Widget kinds.
const (
	NoKind Kind = iota
	PlainSelector
	FormSelector
	PlainSwitch
	FormSwitch
	CollapsibleKind
	AccordionKind
)

func (k Kind) String() string {
	switch k {
	case PlainSelector:
		return "selector"
	case FormSelector:
		return "form-selector"
	case PlainSwitch:
		return "switch"
	case FormSwitch:
		return "form-switch"
	case CollapsibleKind:
		return "collapsible"
	case AccordionKind:
		return "accordion"
	}
	return "<no kind>"
}

// State values written to and read from data-state.
const (
	On        = "on"
	Off       = "off"
	Expanded  = "expanded"
	Collapsed = "collapsed"
)

// family describes how to find the widget containers of one family and
// how to tell the kind of a container.
type family struct {
	name  string
	query string                  // finds containers below an element
	match func(*dom.Element) bool // is an element a container itself?
	kind  func(*dom.Element) Kind // nil for decorating families
}

func byKind(kind func(*dom.Element) Kind) func(*dom.Element) bool {
	return func(e *dom.Element) bool {
		return kind(e) != NoKind
	}
}

func dataType(e *dom.Element) string {
	t, _ := e.Data("type")
	return strings.TrimSpace(t)
}

var selectors = &family{
	name:  "selector",
	query: `[data-type="selector"],[data-type="form-selector"]`,
	kind:  selectorKind,
	match: byKind(selectorKind),
}

func selectorKind(e *dom.Element) Kind {
	switch dataType(e) {
	case "selector":
		return PlainSelector
	case "form-selector":
		return FormSelector
	}
	return NoKind
}

var switches = &family{
	name:  "switch",
	query: `[data-type="switch"],[data-type="form-switch"]`,
	kind:  switchKind,
	match: byKind(switchKind),
}

func switchKind(e *dom.Element) Kind {
	switch dataType(e) {
	case "switch":
		return PlainSwitch
	case "form-switch":
		return FormSwitch
	}
	return NoKind
}

var collapsibles = &family{
	name:  "collapsible",
	query: `[data-collapsible],[data-type="collapsible"]`,
	kind:  collapsibleKind,
	match: byKind(collapsibleKind),
}

func collapsibleKind(e *dom.Element) Kind {
	if e.HasData("collapsible") || dataType(e) == "collapsible" {
		return CollapsibleKind
	}
	return NoKind
}

var accordions = &family{
	name:  "accordion",
	query: `[data-type="accordion"],[data-boost="accordion"]`,
	kind:  accordionKind,
	match: byKind(accordionKind),
}

func accordionKind(e *dom.Element) Kind {
	if boost, _ := e.Data("boost"); dataType(e) == "accordion" || boost == "accordion" {
		return AccordionKind
	}
	return NoKind
}

var floatingLabels = &family{
	name:  "floating-label",
	query: ".form-label",
	match: func(e *dom.Element) bool { return e.HasClass("form-label") },
}

var counters = &family{
	name:  "input-counter",
	query: "[data-counter]",
	match: func(e *dom.Element) bool { return e.HasData("counter") },
}
