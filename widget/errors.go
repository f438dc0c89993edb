package widget

import (
	"errors"
	"fmt"

	"github.com/npillmayer/widgets/dom"
)

// Errors returned or reported during activation.
var (
	ErrInvalidContainer = errors.New("container must be an element, a selector string or nil")
	ErrNotAnElement     = errors.New("container is not an element of the document")
	ErrUnknownType      = errors.New("unknown widget type")
	ErrMissingPart      = errors.New("widget part is missing")
)

// DiagnosticKind classifies problems found during activation.
type DiagnosticKind int8

// Kinds of diagnostics.
const (
	ConfigurationError  DiagnosticKind = iota // bad container argument; nothing activated
	ResolutionMiss                            // selector string matched nothing
	MissingCollaborator                       // input, header, … not found; widget skipped
	Warning                                   // suspicious markup
)

func (k DiagnosticKind) String() string {
	switch k {
	case ConfigurationError:
		return "configuration error"
	case ResolutionMiss:
		return "resolution miss"
	case MissingCollaborator:
		return "missing collaborator"
	case Warning:
		return "warning"
	}
	return "<unknown diagnostic>"
}

// Diagnostic describes a problem found during activation.
type Diagnostic struct {
	Kind    DiagnosticKind
	Family  string       // widget family, e.g. "selector"
	Element *dom.Element // element concerned; may be nil
	Err     error
}

func (d Diagnostic) String() string {
	if d.Element != nil {
		return fmt.Sprintf("%s: %s %s: %v", d.Kind, d.Family, d.Element.Describe(), d.Err)
	}
	return fmt.Sprintf("%s: %s: %v", d.Kind, d.Family, d.Err)
}

// report routes a diagnostic to the tracer and to the client hook.
func (a *Activator) report(d Diagnostic) {
	t := a.trace.P("family", d.Family)
	switch d.Kind {
	case ConfigurationError, MissingCollaborator:
		t.Errorf("%s", d)
	case Warning:
		t.Infof("%s", d)
	default:
		t.Debugf("%s", d)
	}
	if a.onDiagnostic != nil {
		a.onDiagnostic(d)
	}
}
