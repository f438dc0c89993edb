package widget

import (
	"github.com/npillmayer/widgets/dom"
)

// plainSwitch toggles the data-state of its container on click.
type plainSwitch struct {
	widget
}

func (s *plainSwitch) activate() {
	s.container.AddEventListener("click", func(*dom.Event) {
		next := On
		if state(s.container) == On {
			next = Off
		}
		setState(s.container, next)
		value, ok := s.container.Data("value")
		if !ok {
			value = next
		}
		s.notify(value, s.container)
	})
}

// formSwitch mirrors a checkbox into the data-state of its container.
type formSwitch struct {
	widget
}

func (s *formSwitch) activate() {
	input := getInput(s.a.doc, "checkbox", s.container)
	if input == nil {
		s.missing(s.container, "no checkbox for switch")
		return
	}
	update := func() {
		setState(s.container, onOff(input.Checked()))
		s.notify(input.Value(), s.container)
	}
	update()
	input.AddEventListener("change", func(*dom.Event) {
		update()
	})
}
