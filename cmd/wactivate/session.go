package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/widgets/config"
	"github.com/npillmayer/widgets/dom"
	"github.com/npillmayer/widgets/dom/domdbg"
	"github.com/npillmayer/widgets/maybe"
	"github.com/npillmayer/widgets/widget"
)

// activation is the entry point of the activator for one widget family.
type activation func(a *widget.Activator, container any, cb widget.Callback) (maybe.Maybe[[]*dom.Element], error)

var families = map[string]activation{
	"selector":    (*widget.Activator).Selector,
	"switch":      (*widget.Activator).Switch,
	"collapsible": (*widget.Activator).Collapsible,
	"accordion":   (*widget.Activator).Accordion,
	"floating-label": func(a *widget.Activator, container any, _ widget.Callback) (maybe.Maybe[[]*dom.Element], error) {
		return a.FloatingLabel(container)
	},
	"input-counter": func(a *widget.Activator, container any, _ widget.Callback) (maybe.Maybe[[]*dom.Element], error) {
		return a.InputCounter(container)
	},
}

var defaultFamilies = []string{"selector", "switch", "collapsible", "accordion", "floating-label", "input-counter"}

// session is a single run of wactivate: a document, its activator and the
// writers for results and diagnostics.
type session struct {
	conf *config.Conf
	doc  *dom.Document
	act  *widget.Activator
	out  io.Writer
	errs io.Writer
}

func newSession(conf *config.Conf, page io.Reader, out, errs io.Writer) (*session, error) {
	doc, err := dom.Parse(page)
	if err != nil {
		return nil, err
	}
	s := &session{conf: conf, doc: doc, out: out, errs: errs}
	s.act = widget.New(doc, widget.OnDiagnostic(func(d widget.Diagnostic) {
		if d.Kind != widget.ResolutionMiss {
			fmt.Fprintf(s.errs, "%s\n", d)
		}
	}))
	return s, nil
}

// run activates all configured widget families, replays the event
// script and prints the resulting document.
func (s *session) run(steps []Step) error {
	if err := s.activate(); err != nil {
		return err
	}
	for _, step := range steps {
		tracer().Debugf("event %s", step)
		if err := step.Apply(s.doc); err != nil {
			return err
		}
	}
	return s.print()
}

func (s *session) activate() error {
	names := s.conf.GetStringList(config.KeyFamilies)
	if len(names) == 0 {
		names = defaultFamilies
	}
	for _, name := range names {
		activate, ok := families[name]
		if !ok {
			return fmt.Errorf("unknown widget family %q", name)
		}
		found, err := activate(s.act, nil, s.callback(name))
		if err != nil {
			return fmt.Errorf("activating %s: %w", name, err)
		}
		roots := found.WithDefault(nil)
		tracer().Infof("%d %s widget(s) activated", len(roots), name)
	}
	return nil
}

func (s *session) callback(family string) widget.Callback {
	return func(value string, e *dom.Element) {
		fmt.Fprintf(s.out, "callback %s value=%s element=%s\n", family, value, e.Describe())
	}
}

func (s *session) print() error {
	switch format := strings.ToLower(s.conf.GetString(config.KeyFormat)); format {
	case "", "html":
		if err := s.doc.Render(s.out); err != nil {
			return err
		}
		_, err := fmt.Fprintln(s.out)
		return err
	case "tree":
		_, err := fmt.Fprint(s.out, domdbg.Sketch(s.doc.W3C()))
		return err
	case "dot":
		return domdbg.ToGraphViz(s.doc.W3C(), s.out, nil)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
