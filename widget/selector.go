package widget

import (
	"github.com/npillmayer/widgets/dom"
)

// plainSelector mirrors the selection into the data-state of its items.
type plainSelector struct {
	widget
	current *dom.Element
}

func (s *plainSelector) activate() {
	value, hasValue := s.container.Data("value")
	var preset *dom.Element
	items := s.container.QueryAllOrNone("[data-selector]")
	for _, item := range items {
		item := item
		if state(item) == On {
			s.mark(item) // later pre-marked items win
		}
		if v, _ := item.Data("value"); hasValue && v == value {
			preset = item
		}
		item.AddEventListener("click", func(*dom.Event) {
			s.mark(item)
			v, _ := item.Data("value")
			s.notify(v, item)
		})
	}
	if s.current == nil && preset != nil {
		s.mark(preset)
	}
	tracer().Debugf("selector %s has %d items, current = %s", s.container, len(items), s.current)
}

// mark makes item the current item. The previous current item is turned
// off first.
func (s *plainSelector) mark(item *dom.Element) {
	if s.current != nil && s.current != item {
		setState(s.current, Off)
	}
	s.current = item
	setState(item, On)
}

// formSelector mirrors the selection into a group of radio buttons, one
// for each item.
type formSelector struct {
	widget
	current *dom.Element
}

func (s *formSelector) activate() {
	value, hasValue := s.container.Data("value")
	var preset, presetInput *dom.Element
	items := s.container.QueryAllOrNone("[data-selector]")
	for _, item := range items {
		item := item
		input := getInput(s.a.doc, "radio", item)
		if input == nil {
			s.missing(item, "no radio button for selector item")
			continue
		}
		setState(item, onOff(input.Checked()))
		if input.Checked() {
			s.choose(item, input)
		}
		if hasValue && input.Value() == value {
			preset, presetInput = item, input
		}
		input.AddEventListener("change", func(*dom.Event) {
			s.choose(item, input)
		})
	}
	if s.current == nil && preset != nil {
		s.choose(preset, presetInput)
	}
	tracer().Debugf("form selector %s has %d items, current = %s", s.container, len(items), s.current)
}

// choose checks the radio button of item, makes item the current one and
// calls the callback.
func (s *formSelector) choose(item, input *dom.Element) {
	input.SetChecked(true)
	if s.current != nil && s.current != item {
		setState(s.current, Off)
	}
	s.current = item
	setState(item, On)
	s.notify(input.Value(), item)
}
