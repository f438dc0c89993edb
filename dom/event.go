package dom

import (
	"golang.org/x/net/html/atom"
)

// Event is a DOM event, dispatched to an element.
type Event struct {
	Type          string   // e.g. "click"
	Target        *Element // element the event has been dispatched to
	CurrentTarget *Element // element whose listeners are currently invoked; nil at document level
	Bubbles       bool     // propagate to ancestors and document
	stopped       bool
	prevented     bool
}

// NewEvent creates an event of a given type. Events of types click, input,
// change, focusin and focusout bubble.
func NewEvent(typ string) *Event {
	ev := &Event{Type: typ}
	switch typ {
	case "click", "input", "change", "focusin", "focusout":
		ev.Bubbles = true
	}
	return ev
}

// StopPropagation prevents further propagation of an event to ancestors.
// Listeners of the current target are still invoked.
func (ev *Event) StopPropagation() {
	ev.stopped = true
}

// PreventDefault cancels the default action connected to an event.
func (ev *Event) PreventDefault() {
	ev.prevented = true
}

// DefaultPrevented is true if a listener called PreventDefault.
func (ev *Event) DefaultPrevented() bool {
	return ev.prevented
}

// Listener is a function receiving events.
type Listener func(*Event)

type listener struct {
	fn      Listener
	removed bool
}

// eventTarget holds listeners, grouped by event type.
type eventTarget struct {
	listeners map[string][]*listener
}

func (et *eventTarget) addListener(typ string, fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	if et.listeners == nil {
		et.listeners = make(map[string][]*listener)
	}
	l := &listener{fn: fn}
	et.listeners[typ] = append(et.listeners[typ], l)
	return func() {
		l.removed = true
		list := et.listeners[typ]
		for i, x := range list {
			if x == l {
				et.listeners[typ] = append(list[:i:i], list[i+1:]...)
				break
			}
		}
	}
}

// invoke calls the listeners registered at the time of the call.
func (et *eventTarget) invoke(ev *Event) {
	list := et.listeners[ev.Type]
	if len(list) == 0 {
		return
	}
	snapshot := make([]*listener, len(list))
	copy(snapshot, list)
	for _, l := range snapshot {
		if !l.removed {
			l.fn(ev)
		}
	}
}

func (et *eventTarget) listenerCount(typ string) int {
	return len(et.listeners[typ])
}

// AddEventListener registers a listener for events of a given type.
// It returns a function to remove the listener again.
func (e *Element) AddEventListener(typ string, l Listener) func() {
	return e.addListener(typ, l)
}

// HasEventListeners is true if listeners for an event type are registered
// at e.
func (e *Element) HasEventListeners(typ string) bool {
	return e.listenerCount(typ) > 0
}

// DispatchEvent dispatches an event to e. Listeners are invoked at e and,
// for bubbling events, at its ancestors and the document. DispatchEvent
// returns false if a listener called PreventDefault.
func (e *Element) DispatchEvent(ev *Event) bool {
	ev.Target = e
	tracer().Debugf("dispatch %s to %s", ev.Type, e)
	for el := e; el != nil; el = el.ParentElement() {
		ev.CurrentTarget = el
		el.invoke(ev)
		if ev.stopped || !ev.Bubbles {
			ev.CurrentTarget = nil
			return !ev.prevented
		}
	}
	ev.CurrentTarget = nil
	if e.doc != nil && e.doc.html.Contains(e) {
		e.doc.invoke(ev)
	}
	return !ev.prevented
}

func (e *Element) fire(typ string) bool {
	return e.DispatchEvent(NewEvent(typ))
}

// Click simulates a user click on e, including the default actions of
// browsers:
//
// ▪︎ a checkbox toggles, a radio button gets checked; input and change
// events follow, if the click has not been canceled,
//
// ▪︎ a click on (or within) a label is forwarded to the label's control.
func (e *Element) Click() {
	var undo func()
	switch e.InputType() {
	case "checkbox":
		was := e.Checked()
		e.SetChecked(!was)
		undo = func() { e.SetChecked(was) }
	case "radio":
		if !e.Checked() {
			var prev *Element
			for _, r := range e.RadioGroup() {
				if r.Checked() {
					prev = r
				}
			}
			e.SetChecked(true)
			undo = func() {
				e.SetChecked(false)
				if prev != nil {
					prev.SetChecked(true)
				}
			}
		}
	}
	if !e.fire("click") {
		if undo != nil {
			undo()
		}
		return
	}
	if undo != nil {
		e.fire("input")
		e.fire("change")
		return
	}
	if e.IsCheckable() {
		return
	}
	label := e
	if e.h.DataAtom != atom.Label {
		label = e.FindAncestor(func(a *Element) bool {
			return a.h.DataAtom == atom.Label
		}, -1)
	}
	if label == nil {
		return
	}
	if ctl := label.LabelControl(); ctl != nil && !ctl.Contains(e) {
		tracer().Debugf("label %s forwards click to %s", label, ctl)
		ctl.Click()
	}
}

// Focus moves the focus to e. The previously focused element is blurred.
func (e *Element) Focus() {
	if e.doc == nil || e.doc.active == e {
		return
	}
	if prev := e.doc.active; prev != nil {
		prev.Blur()
	}
	e.doc.active = e
	e.fire("focus")
	e.fire("focusin")
}

// Blur removes the focus from e, if it has focus.
func (e *Element) Blur() {
	if e.doc == nil || e.doc.active != e {
		return
	}
	e.doc.active = nil
	e.fire("blur")
	e.fire("focusout")
}

// Input simulates a user typing into a form control: the value is set and
// an input event is fired.
func (e *Element) Input(value string) {
	e.SetValue(value)
	e.fire("input")
}

// Change sets the value of a form control and fires a change event.
func (e *Element) Change(value string) {
	e.SetValue(value)
	e.fire("change")
}
