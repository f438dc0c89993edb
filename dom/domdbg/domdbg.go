/*
Package domdbg implements helpers to debug a DOM tree.

Sketch prints the element tree of a document as indented text, annotated
with the state carried by widgets (data attributes, visibility). ToGraphViz
draws the DOM as a GraphViz diagram.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/template"

	"github.com/npillmayer/widgets/dom/style"
	"github.com/npillmayer/widgets/dom/w3cdom"
	"github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// --- Sketch ----------------------------------------------------------------

// Sketch returns an indented outline of the elements below (and including)
// n. Elements are printed CSS-like, followed by their data attributes.
// Invisible elements are marked with a trailing "(hidden)".
func Sketch(n w3cdom.Node) string {
	if n == nil {
		return ""
	}
	tp := treeprint.NewWithRoot(describe(n))
	sketchChildren(n, tp)
	return tp.String()
}

func sketchElement(n w3cdom.Node, tp treeprint.Tree) {
	if n.Children().Length() == 0 {
		tp.AddNode(describe(n))
		return
	}
	branch := tp.AddBranch(describe(n))
	sketchChildren(n, branch)
}

func sketchChildren(n w3cdom.Node, tp treeprint.Tree) {
	children := n.Children()
	for i := 0; i < children.Length(); i++ {
		sketchElement(children.Item(i), tp)
	}
}

// describe prints an element like `div#id.class [type=selector]`.
func describe(n w3cdom.Node) string {
	el, ok := n.(w3cdom.Element)
	if !ok || n.NodeType() != html.ElementNode {
		return n.NodeName()
	}
	var b strings.Builder
	b.WriteString(el.TagName())
	if id, ok := el.GetAttribute("id"); ok && id != "" {
		b.WriteString("#" + id)
	}
	for _, cls := range el.ClassList() {
		b.WriteString("." + cls)
	}
	if data := el.Dataset(); len(data) > 0 {
		keys := make([]string, 0, len(data))
		for k := range data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " [%s=%s]", k, data[k])
		}
	}
	if !el.IsVisible() {
		b.WriteString(" (hidden)")
	}
	return b.String()
}

// --- GraphViz --------------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname  string
	NodeTmpl  *template.Template
	EdgeTmpl  *template.Template
	StyleTmpl *template.Template
	StyleKeys []string
}

var defaultStyleKeys = []string{"display"}

// ToGraphViz outputs a diagram for a DOM tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root node of
// the DOM, a Writer, and an optional list of style properties.
// For every element, the diagram will include a box with the computed
// values of these properties.
//
// If the client does not provide a list of properties, "display" will be
// used.
func ToGraphViz(doc w3cdom.Node, w io.Writer, styleKeys []string) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
			"describe":    describe,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.StyleTmpl = template.Must(template.New("styles").Parse(stylesTmpl))
	gparams.StyleKeys = styleKeys
	if styleKeys == nil {
		gparams.StyleKeys = defaultStyleKeys
	}
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	g := &graph{w: w, dict: make(map[*html.Node]string, 256), params: &gparams}
	if err = g.nodes(doc); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// graph holds the state of a GraphViz drawing.
type graph struct {
	w      io.Writer
	dict   map[*html.Node]string
	params *graphParamsType
}

type node struct {
	N    w3cdom.Node
	Name string
}

type htmlNoder interface {
	HTMLNode() *html.Node
}

func (g *graph) name(n w3cdom.Node) string {
	var key *html.Node
	if hn, ok := n.(htmlNoder); ok {
		key = hn.HTMLNode()
	}
	name := g.dict[key]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(g.dict)+1)
		g.dict[key] = name
	}
	return name
}

func (g *graph) nodes(n w3cdom.Node) error {
	if err := g.domNode(n); err != nil {
		return err
	}
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		if ch.NodeType() == html.TextNode && strings.TrimSpace(ch.NodeValue()) == "" {
			continue
		}
		if err := g.nodes(ch); err != nil {
			return err
		}
		e := edge{node{n, g.name(n)}, node{ch, g.name(ch)}}
		if err := g.params.EdgeTmpl.Execute(g.w, e); err != nil {
			return err
		}
	}
	return nil
}

type styleBox struct {
	Name       string
	Properties []style.KeyValue
}

func (g *graph) domNode(n w3cdom.Node) error {
	name := g.name(n)
	if err := g.params.NodeTmpl.Execute(g.w, &node{n, name}); err != nil {
		return err
	}
	cs := n.ComputedStyles()
	if cs == nil {
		return nil
	}
	box := styleBox{Name: name}
	for _, key := range g.params.StyleKeys {
		if p := cs.GetPropertyValue(key); !p.IsEmpty() {
			box.Properties = append(box.Properties, style.KeyValue{Key: key, Value: p})
		}
	}
	if len(box.Properties) == 0 {
		return nil
	}
	return g.params.StyleTmpl.Execute(g.w, box)
}

type edge struct {
	N1, N2 node
}

func shortText(n w3cdom.Node) string {
	t := n.NodeValue()
	s := "\"\\\""
	if len(t) > 10 {
		s += t[:10] + "...\\\"\""
	} else {
		s += t + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if eq .N.NodeName "#text" }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ describe .N | printf "%q" }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const stylesTmpl = `{{ .Name }}_styles [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ end }}
    </table>> ] ;
{{ .Name }} -> {{ .Name }}_styles [dir=none weight=1 style="dashed"] ;
`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
