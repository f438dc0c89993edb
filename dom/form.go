package dom

import (
	"strconv"
	"strings"

	"golang.org/x/net/html/atom"
)

// InputType returns the lowercase type of an <input> element, defaulting
// to "text". For other elements it returns "".
func (e *Element) InputType() string {
	if e.h.DataAtom != atom.Input {
		return ""
	}
	if t := strings.ToLower(strings.TrimSpace(e.Attr("type"))); t != "" {
		return t
	}
	return "text"
}

// IsCheckable is true for checkboxes and radio buttons.
func (e *Element) IsCheckable() bool {
	t := e.InputType()
	return t == "checkbox" || t == "radio"
}

// IsFormControl is true for input, textarea and select elements.
func (e *Element) IsFormControl() bool {
	switch e.h.DataAtom {
	case atom.Input, atom.Textarea, atom.Select:
		return true
	}
	return false
}

// Value returns the value of a form control. Checkboxes and radio buttons
// without a value attribute have value "on". The value of a textarea is
// its text content.
func (e *Element) Value() string {
	if e.h.DataAtom == atom.Textarea {
		return e.TextContent()
	}
	if v, ok := e.LookupAttr("value"); ok {
		return v
	}
	if e.IsCheckable() {
		return "on"
	}
	return ""
}

// SetValue sets the value of a form control.
func (e *Element) SetValue(v string) {
	if e.h.DataAtom == atom.Textarea {
		e.SetTextContent(v)
		return
	}
	e.SetAttr("value", v)
}

// Checked returns the checkedness of a checkbox or radio button.
func (e *Element) Checked() bool {
	return e.IsCheckable() && e.HasAttr("checked")
}

// SetChecked sets the checkedness of a checkbox or radio button. Checking
// a radio button unchecks all other radio buttons of its group.
// No events are fired.
func (e *Element) SetChecked(on bool) {
	if !e.IsCheckable() {
		return
	}
	if !on {
		e.RemoveAttr("checked")
		return
	}
	if e.InputType() == "radio" {
		for _, peer := range e.RadioGroup() {
			if peer != e {
				peer.RemoveAttr("checked")
			}
		}
	}
	e.SetAttr("checked", "")
}

// RadioGroup returns all radio buttons sharing name and form owner with e,
// including e. A radio button without a name forms a group of its own.
func (e *Element) RadioGroup() []*Element {
	if e.InputType() != "radio" {
		return nil
	}
	name := e.Attr("name")
	if name == "" || e.doc == nil {
		return []*Element{e}
	}
	form := e.Form()
	scope := e.doc.html
	if form != nil {
		scope = form
	}
	group := []*Element{}
	self := false
	for _, r := range scope.QueryAllOrNone("input") {
		if r.InputType() == "radio" && r.Attr("name") == name && r.Form() == form {
			group = append(group, r)
			self = self || r == e
		}
	}
	if !self { // detached
		group = append(group, e)
	}
	return group
}

// Form returns the form owner of a form control, i.e. the nearest enclosing
// <form> element.
func (e *Element) Form() *Element {
	return e.FindAncestor(func(a *Element) bool {
		return a.h.DataAtom == atom.Form
	}, -1)
}

// Placeholder returns the placeholder attribute.
func (e *Element) Placeholder() string {
	return e.Attr("placeholder")
}

// SetPlaceholder sets the placeholder attribute. An empty value removes it.
func (e *Element) SetPlaceholder(p string) {
	if p == "" {
		e.RemoveAttr("placeholder")
		return
	}
	e.SetAttr("placeholder", p)
}

// HTMLFor returns the for attribute of a label.
func (e *Element) HTMLFor() string {
	return e.Attr("for")
}

// MaxLength returns the maxlength attribute of a form control, or -1 if it
// is absent or invalid.
func (e *Element) MaxLength() int {
	v, ok := e.LookupAttr("maxlength")
	if !ok {
		return -1
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return -1
	}
	return n
}

// LabelControl returns the labeled control of a <label>: the element with
// the id given by the for attribute, or else the first labelable descendent.
func (e *Element) LabelControl() *Element {
	if e.h.DataAtom != atom.Label {
		return nil
	}
	if id := e.HTMLFor(); id != "" {
		if e.doc == nil {
			return nil
		}
		ctl := e.doc.GetElementByID(id)
		if ctl != nil && !ctl.isLabelable() {
			return nil
		}
		return ctl
	}
	for _, d := range e.QueryAllOrNone("input, textarea, select, button") {
		if d.isLabelable() {
			return d
		}
	}
	return nil
}

func (e *Element) isLabelable() bool {
	switch e.h.DataAtom {
	case atom.Textarea, atom.Select, atom.Button:
		return true
	case atom.Input:
		return e.InputType() != "hidden"
	}
	return false
}
