package widget

import (
	"github.com/npillmayer/widgets/dom"
)

// Panel is a region of content which is shown or hidden by clicks on a
// header. Collapsibles and the items of accordions are panels.
//
// The state of a panel is kept in attribute data-state of its container.
// Older markup keeps it in the marker attribute (data-collapsible or
// data-accordion) instead; this is supported as well.
type Panel struct {
	container *dom.Element
	header    *dom.Element // first [data-{name}-header] below container
	content   *dom.Element // first [data-{name}-content] below container
	name      string       // "collapsible" or "accordion"
	onOpen    func(*Panel) // called after a click opened the panel
}

// NewPanel creates a panel for a container element. name is the panel's
// marker name, i.e. "collapsible" or "accordion". Header and content are
// looked up immediately; no event listeners are registered.
func NewPanel(container *dom.Element, name string) *Panel {
	p := &Panel{container: container, name: name}
	p.header, _ = container.QuerySelector("[data-" + name + "-header]")
	p.content, _ = container.QuerySelector("[data-" + name + "-content]")
	return p
}

// Container returns the panel's container element.
func (p *Panel) Container() *dom.Element {
	return p.container
}

// Header returns the header element, or nil.
func (p *Panel) Header() *dom.Element {
	return p.header
}

// Content returns the content element, or nil.
func (p *Panel) Content() *dom.Element {
	return p.content
}

// State returns "expanded", "collapsed" or "" for an undefined state.
func (p *Panel) State() string {
	if s := state(p.container); s != "" {
		return s
	}
	if s, _ := p.container.Data(p.name); isPanelState(s) {
		return s
	}
	return ""
}

func (p *Panel) setState(s string) {
	setState(p.container, s)
	if old, _ := p.container.Data(p.name); isPanelState(old) {
		p.container.SetData(p.name, s)
	}
}

func isPanelState(s string) bool {
	return s == Expanded || s == Collapsed
}

// IsExpanded is true if the panel's state is "expanded".
func (p *Panel) IsExpanded() bool {
	return p.State() == Expanded
}

// IsCollapsed is true if the panel's state is "collapsed".
func (p *Panel) IsCollapsed() bool {
	return p.State() == Collapsed
}

// Open shows the content, sets the state to "expanded" and adds class
// "expanded" to the container.
func (p *Panel) Open() {
	if p.content != nil {
		p.content.Show()
	}
	p.setState(Expanded)
	p.container.AddClass(Expanded)
}

// Close hides the content, sets the state to "collapsed" and removes class
// "expanded" from the container.
func (p *Panel) Close() {
	if p.content != nil {
		p.content.Hide()
	}
	p.setState(Collapsed)
	p.container.RemoveClass(Expanded)
}

// marks is true for elements carrying the panel's marker.
func (p *Panel) marks(e *dom.Element) bool {
	if e.HasData(p.name) {
		return true
	}
	return p.name == "collapsible" && dataType(e) == "collapsible"
}

// bind synchronizes the visual state with the panel's state and registers
// the header's click listener. The widget is notified after a click
// opened the panel.
func (p *Panel) bind(w *widget) bool {
	if p.header == nil {
		w.missing(p.container, "no [data-%s-header]", p.name)
		return false
	}
	if p.content == nil {
		tracer().Debugf("%s %s has no content", p.name, p.container)
	}
	switch p.State() {
	case Collapsed:
		p.Close()
	case Expanded:
		p.Open()
	}
	header := p.header
	header.AddEventListener("click", func(ev *dom.Event) {
		// clicks within nested panels belong to them
		if ev.Target.FindAncestor(p.marks, -1) != p.container {
			return
		}
		if p.IsCollapsed() {
			p.Open()
			if p.onOpen != nil {
				p.onOpen(p)
			}
			w.notify(Expanded, p.container)
		} else if header.ParentElement() == p.container {
			// closing additionally requires the header to be a direct child
			p.Close()
		}
	})
	return true
}

// collapsible is the controller of a single panel.
type collapsible struct {
	widget
	panel *Panel
}

func (c *collapsible) activate() {
	c.panel = NewPanel(c.container, "collapsible")
	c.panel.bind(&c.widget)
}

// accordion is the controller of a group of panels, at most one of which is
// expanded after a click.
type accordion struct {
	widget
	items []*Panel
}

func (acc *accordion) activate() {
	for _, el := range acc.container.QueryAllOrNone("[data-accordion]") {
		p := NewPanel(el, "accordion")
		p.onOpen = acc.closeOthers
		if p.bind(&acc.widget) {
			acc.items = append(acc.items, p)
		}
	}
	tracer().Debugf("accordion %s has %d items", acc.container, len(acc.items))
}

func (acc *accordion) closeOthers(opened *Panel) {
	for _, item := range acc.items {
		if item != opened && item.IsExpanded() {
			item.Close()
		}
	}
}
