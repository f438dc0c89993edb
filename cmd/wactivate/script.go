package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/widgets/dom"
	"gopkg.in/yaml.v3"
)

// Step is a single user event of an event script. Exactly one of the
// fields has to be set.
type Step struct {
	Click  string     `yaml:"click"`
	Focus  string     `yaml:"focus"`
	Blur   string     `yaml:"blur"`
	Input  *ValueStep `yaml:"input"`
	Change *ValueStep `yaml:"change"`
}

// ValueStep enters a value into a form control.
type ValueStep struct {
	Target string `yaml:"target"`
	Value  string `yaml:"value"`
}

// ErrUnknownTarget is returned for steps whose target does not resolve
// to an element.
var ErrUnknownTarget = errors.New("unknown target")

// LoadScript reads an event script from a YAML file.
func LoadScript(path string) ([]Step, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadScript(f)
}

// ReadScript reads an event script, i.e. a YAML sequence of steps.
func ReadScript(r io.Reader) ([]Step, error) {
	var steps []Step
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&steps); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("reading event script: %w", err)
	}
	for i, s := range steps {
		if n := s.count(); n != 1 {
			return nil, fmt.Errorf("event script step %d: need exactly one event, have %d", i+1, n)
		}
	}
	return steps, nil
}

func (s Step) count() int {
	n := 0
	for _, set := range []bool{s.Click != "", s.Focus != "", s.Blur != "", s.Input != nil, s.Change != nil} {
		if set {
			n++
		}
	}
	return n
}

func (s Step) String() string {
	switch {
	case s.Click != "":
		return "click " + s.Click
	case s.Focus != "":
		return "focus " + s.Focus
	case s.Blur != "":
		return "blur " + s.Blur
	case s.Input != nil:
		return fmt.Sprintf("input %s %q", s.Input.Target, s.Input.Value)
	case s.Change != nil:
		return fmt.Sprintf("change %s %q", s.Change.Target, s.Change.Value)
	}
	return "<empty step>"
}

// Apply performs the step's event within doc.
func (s Step) Apply(doc *dom.Document) error {
	target := func(sel string) (*dom.Element, error) {
		if e := doc.GetElement(sel, nil); e != nil {
			return e, nil
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, sel)
	}
	var e *dom.Element
	var err error
	switch {
	case s.Click != "":
		if e, err = target(s.Click); err == nil {
			e.Click()
		}
	case s.Focus != "":
		if e, err = target(s.Focus); err == nil {
			e.Focus()
		}
	case s.Blur != "":
		if e, err = target(s.Blur); err == nil {
			e.Blur()
		}
	case s.Input != nil:
		if e, err = target(s.Input.Target); err == nil {
			e.Input(s.Input.Value)
		}
	case s.Change != nil:
		if e, err = target(s.Change.Target); err == nil {
			e.Change(s.Change.Value)
		}
	}
	return err
}
