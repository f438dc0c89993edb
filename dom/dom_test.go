package dom

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/widgets/dom/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var page = `<!DOCTYPE html>
<html><head><style>
.invisible { display: none; }
[data-state="collapsed"] > .body { display: none; }
</style></head>
<body>
  <div id="menu" class="  nav   open " data-type="selector" data-counter-max="12">
    <a class="item" data-selector="one">One</a>
    <a class="item" data-selector="two">Two</a>
  </div>
  <div id="panel" data-state="collapsed"><p class="body">text</p></div>
  <p id="gone" class="invisible"><span id="inner">x</span></p>
  <p id="attr-hidden" hidden>y</p>
  <form id="f1">
    <label id="l1"><input type="radio" name="g" value="a" checked><span id="la">A</span></label>
    <label id="l2" for="r2">B</label><input id="r2" type="radio" name="g" value="b">
    <input id="cb" type="checkbox">
  </form>
  <input id="outside" type="radio" name="g" value="c" checked>
  <textarea id="ta" maxlength="5">hi</textarea>
</body></html>`

func load(t *testing.T) *Document {
	doc, err := ParseString(page)
	require.NoError(t, err)
	return doc
}

func byID(t *testing.T, doc *Document, id string) *Element {
	e := doc.GetElementByID(id)
	require.NotNil(t, e, "no element with id %q", id)
	return e
}

func TestParseBuildsElementTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgets.dom")
	defer teardown()
	//
	doc := load(t)
	assert.Equal(t, "html", doc.DocumentElement().TagName())
	require.NotNil(t, doc.Body())
	require.NotNil(t, doc.Head())
	menu := byID(t, doc, "menu")
	assert.Equal(t, doc.Body(), menu.ParentElement())
	items := menu.ChildElements()
	require.Len(t, items, 2)
	assert.Equal(t, menu, items[1].ParentElement())
	assert.True(t, doc.Body().Contains(items[0]))
	assert.False(t, items[0].Contains(menu))
	e, ok := doc.ElementFor(menu.HTMLNode())
	assert.True(t, ok)
	assert.Equal(t, menu, e)
}

func TestQueries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgets.dom")
	defer teardown()
	//
	doc := load(t)
	menu := byID(t, doc, "menu")
	items, err := menu.QuerySelectorAll("[data-selector]")
	require.NoError(t, err)
	assert.Len(t, items, 2)
	self, err := menu.QuerySelectorAll(`[data-type="selector"]`)
	require.NoError(t, err)
	assert.Empty(t, self, "element queries must not include the element itself")
	_, err = doc.QuerySelectorAll("div[")
	assert.Error(t, err)
	assert.Len(t, doc.GetElementsByClassName("item"), 2)
	assert.Len(t, doc.GetElementsByClassName("nav"), 1)
	ok, err := menu.Matches("div.open")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGetElementHeuristics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgets.dom")
	defer teardown()
	//
	doc := load(t)
	menu := byID(t, doc, "menu")
	assert.Equal(t, menu, doc.GetElement("#menu", nil))
	assert.Equal(t, menu, doc.GetElement("#menu", byID(t, doc, "panel")), "ids are looked up document-wide")
	assert.Equal(t, "one", mustData(t, doc.GetElement(".item", menu), "selector"))
	assert.Equal(t, "two", mustData(t, doc.GetElement(`[data-selector="two"]`, nil), "selector"))
	assert.Nil(t, doc.GetElement("", nil))
	assert.Nil(t, doc.GetElement("#nope", nil))
	assert.Nil(t, doc.GetElement("###", nil))
	assert.Len(t, doc.GetElements(".item", byID(t, doc, "panel")), 0)
}

func mustData(t *testing.T, e *Element, key string) string {
	require.NotNil(t, e)
	v, ok := e.Data(key)
	require.True(t, ok)
	return v
}

func TestAttributesAndDataset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgets.dom")
	defer teardown()
	//
	doc := load(t)
	menu := byID(t, doc, "menu")
	v, ok := menu.Data("counterMax")
	assert.True(t, ok)
	assert.Equal(t, "12", v)
	menu.SetData("currentValue", "x")
	assert.Equal(t, "x", menu.Attr("data-current-value"))
	set := menu.Dataset()
	assert.Equal(t, "selector", set["type"])
	assert.Equal(t, "12", set["counterMax"])
	assert.Equal(t, "x", set["currentValue"])
	menu.RemoveData("current-value")
	assert.False(t, menu.HasData("currentValue"))
	menu.SetAttr("ROLE", "menu")
	assert.Equal(t, "menu", menu.Attr("role"))
	menu.RemoveAttr("role")
	assert.False(t, menu.HasAttr("role"))
}

func TestClasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgets.dom")
	defer teardown()
	//
	doc := load(t)
	menu := byID(t, doc, "menu")
	assert.Equal(t, []string{"nav", "open"}, menu.Classes())
	menu.AddClass("open", "active")
	assert.Equal(t, "nav open active", menu.Attr("class"))
	menu.RemoveClass("open")
	assert.Equal(t, "nav active", menu.Attr("class"))
	assert.True(t, menu.ToggleClass("open"))
	assert.False(t, menu.ToggleClass("open"))
	assert.False(t, menu.HasClass("open"))
}

func TestStylesAndVisibility(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgets.dom")
	defer teardown()
	//
	doc := load(t)
	assert.True(t, byID(t, doc, "menu").IsVisible())
	assert.False(t, byID(t, doc, "gone").IsVisible())
	assert.False(t, byID(t, doc, "inner").IsVisible(), "ancestor is display:none")
	assert.False(t, byID(t, doc, "attr-hidden").IsVisible())
	body, err := doc.QuerySelector("#panel .body")
	require.NoError(t, err)
	assert.False(t, body.IsVisible())
	body.Show()
	assert.True(t, body.IsVisible())
	assert.Equal(t, "display: block", body.Attr("style"))
	body.SetStyle("color", "red")
	body.Hide()
	assert.Equal(t, "display: none; color: red", body.Attr("style"))
	d, _ := body.Style().Property("display")
	assert.Equal(t, style.DisplayNone, d)
	body.SetStyle("display", "")
	body.SetStyle("color", "")
	assert.False(t, body.HasAttr("style"))
	detached := doc.CreateElement("DIV")
	assert.Equal(t, "div", detached.TagName())
	assert.False(t, detached.IsVisible())
}

func TestFormProperties(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgets.dom")
	defer teardown()
	//
	doc := load(t)
	cb := byID(t, doc, "cb")
	assert.Equal(t, "checkbox", cb.InputType())
	assert.Equal(t, "on", cb.Value())
	assert.False(t, cb.Checked())
	ta := byID(t, doc, "ta")
	assert.Equal(t, "hi", ta.Value())
	assert.Equal(t, 5, ta.MaxLength())
	assert.Equal(t, -1, cb.MaxLength())
	ta.SetValue("hello")
	assert.Equal(t, "hello", ta.Value())
	ta.SetPlaceholder("Name")
	assert.Equal(t, "Name", ta.Placeholder())
	ta.SetPlaceholder("")
	assert.False(t, ta.HasAttr("placeholder"))
	assert.Equal(t, "r2", byID(t, doc, "l2").HTMLFor())
	assert.Equal(t, byID(t, doc, "r2"), byID(t, doc, "l2").LabelControl())
	assert.Equal(t, "a", byID(t, doc, "l1").LabelControl().Value())
}

func TestRadioGroupsAreScopedByForm(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgets.dom")
	defer teardown()
	//
	doc := load(t)
	r2 := byID(t, doc, "r2")
	assert.Len(t, r2.RadioGroup(), 2)
	r2.SetChecked(true)
	ra, _ := doc.QuerySelector(`input[value="a"]`)
	assert.False(t, ra.Checked())
	assert.True(t, byID(t, doc, "outside").Checked(), "radio outside of form is in another group")
}

func TestEventBubbling(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgets.dom")
	defer teardown()
	//
	doc := load(t)
	menu := byID(t, doc, "menu")
	item := menu.ChildElements()[0]
	var trace []string
	item.AddEventListener("click", func(ev *Event) {
		trace = append(trace, "item")
		assert.Equal(t, item, ev.CurrentTarget)
	})
	remove := menu.AddEventListener("click", func(ev *Event) {
		trace = append(trace, "menu")
		assert.Equal(t, item, ev.Target)
	})
	doc.AddEventListener("click", func(ev *Event) {
		trace = append(trace, "doc")
	})
	item.Click()
	assert.Equal(t, []string{"item", "menu", "doc"}, trace)
	trace = nil
	remove()
	item.Click()
	assert.Equal(t, []string{"item", "doc"}, trace)
	trace = nil
	item.AddEventListener("click", func(ev *Event) { ev.StopPropagation() })
	item.Click()
	assert.Equal(t, []string{"item"}, trace)
}

func TestCheckboxClick(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgets.dom")
	defer teardown()
	//
	doc := load(t)
	cb := byID(t, doc, "cb")
	var changes int
	cb.AddEventListener("change", func(ev *Event) {
		changes++
		assert.True(t, ev.Target.Checked())
	})
	cb.Click()
	assert.True(t, cb.Checked())
	assert.Equal(t, 1, changes)
	cancel := cb.AddEventListener("click", func(ev *Event) { ev.PreventDefault() })
	cb.Click()
	assert.True(t, cb.Checked(), "canceled click reverts the toggle")
	assert.Equal(t, 1, changes)
	cancel()
}

func TestLabelForwardsClick(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgets.dom")
	defer teardown()
	//
	doc := load(t)
	r2 := byID(t, doc, "r2")
	var changed []string
	byID(t, doc, "f1").AddEventListener("change", func(ev *Event) {
		changed = append(changed, ev.Target.Value())
	})
	byID(t, doc, "l2").Click()
	assert.True(t, r2.Checked())
	byID(t, doc, "la").Click() // span within label l1
	assert.False(t, r2.Checked())
	assert.Equal(t, []string{"b", "a"}, changed)
	byID(t, doc, "la").Click() // radio is checked already
	assert.Len(t, changed, 2)
}

func TestFocusAndBlur(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgets.dom")
	defer teardown()
	//
	doc := load(t)
	ta, cb := byID(t, doc, "ta"), byID(t, doc, "cb")
	var trace []string
	ta.AddEventListener("focus", func(*Event) { trace = append(trace, "focus") })
	ta.AddEventListener("blur", func(*Event) { trace = append(trace, "blur") })
	doc.Body().AddEventListener("focus", func(*Event) { trace = append(trace, "focus does not bubble") })
	ta.Focus()
	assert.Equal(t, ta, doc.ActiveElement())
	ta.Focus()
	cb.Focus()
	assert.Equal(t, cb, doc.ActiveElement())
	ta.Blur()
	assert.Equal(t, []string{"focus", "blur"}, trace)
}

func TestInputEvent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgets.dom")
	defer teardown()
	//
	doc := load(t)
	ta := byID(t, doc, "ta")
	var got string
	ta.AddEventListener("input", func(ev *Event) { got = ev.Target.Value() })
	ta.Input("typed")
	assert.Equal(t, "typed", got)
}

func TestAppendAndRemove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgets.dom")
	defer teardown()
	//
	doc := load(t)
	panel := byID(t, doc, "panel")
	span := doc.CreateElement("span")
	span.SetAttr("id", "new")
	span.SetTextContent("fresh")
	panel.AppendChild(span)
	assert.Equal(t, span, doc.GetElementByID("new"))
	assert.Equal(t, panel, span.ParentElement())
	assert.Len(t, panel.ChildElements(), 2)
	assert.True(t, strings.Contains(doc.String(), `<span id="new">fresh</span>`))
	byID(t, doc, "menu").AppendChild(span) // move
	assert.Len(t, panel.ChildElements(), 1)
	span.Focus()
	span.Remove()
	assert.Nil(t, doc.GetElementByID("new"))
	assert.Nil(t, doc.ActiveElement())
	assert.Nil(t, span.ParentElement())
}

func TestFindAncestor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgets.dom")
	defer teardown()
	//
	doc := load(t)
	la := byID(t, doc, "la")
	isForm := func(e *Element) bool { return e.TagName() == "form" }
	assert.Equal(t, byID(t, doc, "f1"), la.FindAncestor(isForm, -1))
	assert.Equal(t, byID(t, doc, "f1"), la.FindAncestor(isForm, 2))
	assert.Nil(t, la.FindAncestor(isForm, 1))
	assert.Equal(t, byID(t, doc, "f1"), la.Form())
}

func TestW3CView(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgets.dom")
	defer teardown()
	//
	doc := load(t)
	w := doc.W3C()
	assert.Equal(t, "#document", w.NodeName())
	assert.Equal(t, "html", w.DocumentElement().TagName())
	list, err := w.QuerySelectorAll(".item")
	require.NoError(t, err)
	assert.Equal(t, 2, list.Length())
	menu := w.GetElementByID("menu")
	require.NotNil(t, menu)
	assert.Equal(t, "selector", menu.Dataset()["type"])
	assert.Equal(t, "menu", menu.Attributes().GetNamedItem("id").Value())
	text, _ := list.Item(1).TextContent()
	assert.Equal(t, "Two", text)
	assert.Equal(t, "#text", list.Item(1).FirstChild().NodeName())
	assert.Nil(t, list.Item(1).FirstChild().ComputedStyles())
	assert.False(t, w.GetElementByID("gone").IsVisible())
}
