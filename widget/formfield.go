package widget

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/widgets/dom"
	"github.com/npillmayer/widgets/maybe"
)

// Classes written by floating labels.
const (
	ClassDown    = "down"    // label rests inside the empty input
	ClassFocused = "focused" // the label's parent holds the focused input
)

// FloatingLabel binds labels of class "form-label" with data-type
// "placeholder" to their inputs (given by the for attribute). While the
// input is empty and not focused, the label carries class "down" and acts as
// a placeholder. When the input gains focus, the label moves up and its
// parent gets class "focused".
//
// Inputs with a placeholder of their own are left alone. container is
// interpreted as for Selector; the list returned holds all form labels
// found.
func (a *Activator) FloatingLabel(container any) (maybe.Maybe[[]*dom.Element], error) {
	found, err := a.resolve(floatingLabels, container)
	if err != nil {
		a.report(Diagnostic{Kind: ConfigurationError, Family: floatingLabels.name, Err: err})
		return found, err
	}
	labels, ok := found.Get()
	if !ok {
		a.report(Diagnostic{Kind: ResolutionMiss, Family: floatingLabels.name,
			Err: fmt.Errorf("no element for %v", container)})
		return found, nil
	}
	for _, label := range labels {
		if dataType(label) != "placeholder" || strings.TrimSpace(label.HTMLFor()) == "" {
			continue
		}
		input := a.doc.GetElementByID(strings.TrimSpace(label.HTMLFor()))
		if input == nil {
			a.report(Diagnostic{Kind: MissingCollaborator, Family: floatingLabels.name, Element: label,
				Err: fmt.Errorf("%w: no input %q for label", ErrMissingPart, label.HTMLFor())})
			continue
		}
		if strings.TrimSpace(input.Placeholder()) != "" {
			a.report(Diagnostic{Kind: Warning, Family: floatingLabels.name, Element: input,
				Err: fmt.Errorf("input %q has a placeholder", label.HTMLFor())})
			continue
		}
		a.bindFloatingLabel(label, input)
		if input.Value() == "" {
			label.AddClass(ClassDown)
		}
	}
	return found, nil
}

func (a *Activator) bindFloatingLabel(label, input *dom.Element) {
	input.AddEventListener("focus", func(*dom.Event) {
		input.SetPlaceholder("")
		label.RemoveClass(ClassDown)
		if parent := label.ParentElement(); parent != nil {
			parent.AddClass(ClassFocused)
		}
	})
	input.AddEventListener("blur", func(*dom.Event) {
		if input.Value() == "" {
			label.AddClass(ClassDown)
		}
		if parent := label.ParentElement(); parent != nil {
			parent.RemoveClass(ClassFocused)
		}
	})
	input.AddEventListener("input", func(*dom.Event) {
		if a.doc.ActiveElement() == input {
			return
		}
		if input.Value() == "" {
			label.AddClass(ClassDown)
		} else {
			label.RemoveClass(ClassDown)
		}
	})
}

// InputCounter binds elements with attribute data-counter to the input
// with the id given by data-counter. The counter element receives
// data-counter-max (the input's maxlength, -1 if unlimited) and
// data-counter-val (the number of characters of the input's value), the
// latter being updated on every input event.
//
// container is interpreted as for Selector; the list returned holds all
// counters found.
func (a *Activator) InputCounter(container any) (maybe.Maybe[[]*dom.Element], error) {
	found, err := a.resolve(counters, container)
	if err != nil {
		a.report(Diagnostic{Kind: ConfigurationError, Family: counters.name, Err: err})
		return found, err
	}
	elems, ok := found.Get()
	if !ok {
		a.report(Diagnostic{Kind: ResolutionMiss, Family: counters.name,
			Err: fmt.Errorf("no element for %v", container)})
		return found, nil
	}
	for _, counter := range elems {
		counter := counter
		ref, _ := counter.Data("counter")
		input := a.doc.GetElementByID(strings.TrimSpace(ref))
		if input == nil {
			a.report(Diagnostic{Kind: MissingCollaborator, Family: counters.name, Element: counter,
				Err: fmt.Errorf("%w: input %q not found", ErrMissingPart, ref)})
			continue
		}
		counter.SetData("counterMax", strconv.Itoa(input.MaxLength()))
		count := func() {
			counter.SetData("counterVal", strconv.Itoa(utf8.RuneCountInString(input.Value())))
		}
		count()
		input.AddEventListener("input", func(*dom.Event) { count() })
	}
	return found, nil
}
