package dom

import (
	"github.com/npillmayer/widgets/dom/style"
)

// Style returns the inline style declarations of an element. Changes to
// the returned map are not reflected in the element; use SetStyle.
func (e *Element) Style() *style.PropertyMap {
	pmap, err := style.ParseInline(e.Attr("style"))
	if err != nil {
		tracer().Errorf("element %s has invalid inline style: %v", e, err)
		return style.NewPropertyMap()
	}
	return pmap
}

// SetStyle sets an inline style property. An empty value removes the
// property.
func (e *Element) SetStyle(key string, value style.Property) {
	pmap := e.Style()
	pmap.Set(key, value)
	if pmap.Size() == 0 {
		e.RemoveAttr("style")
		return
	}
	e.SetAttr("style", pmap.String())
}

// Show sets inline style display to block.
func (e *Element) Show() {
	e.SetStyle("display", style.DisplayBlock)
}

// Hide sets inline style display to none.
func (e *Element) Hide() {
	e.SetStyle("display", style.DisplayNone)
}

// ComputedStyles returns the styles applying to an element, considering
// the document's style sheets and the element's inline style.
// Inheritance is not resolved.
func (e *Element) ComputedStyles() *style.PropertyMap {
	if e.doc == nil || e.doc.styles == nil {
		return e.Style()
	}
	return e.doc.styles.ComputeStyles(e.h, e.Style())
}

// IsVisible checks if an element will be rendered. An element is invisible
// if it or one of its ancestors has a `hidden` attribute or computes to
// `display: none`. Detached elements are invisible.
func (e *Element) IsVisible() bool {
	var last *Element
	for el := e; el != nil; el = el.ParentElement() {
		if el.HasAttr("hidden") {
			return false
		}
		if d, _ := el.ComputedStyles().Property("display"); d == style.DisplayNone {
			return false
		}
		last = el
	}
	return e.doc != nil && last == e.doc.html
}
