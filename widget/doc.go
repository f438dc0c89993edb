/*
Package widget activates declarative widgets in a DOM.

Widgets are described by markup alone. An element carrying a `data-type`
marker is the container of a widget; its children and data attributes
describe the widget's parts and state:

    <div data-type="selector" data-value="b">
        <span data-selector data-value="a">A</span>
        <span data-selector data-value="b">B</span>
    </div>

An Activator scans a container (or the whole document) for widgets of
one family, creates a controller for each of them and binds the
controller to DOM events. Whenever a controller's state changes, it
updates the markup (`data-state`, classes, inline display style) and then
calls a client callback with a value and an element.

Families

    Selector     data-type="selector" | "form-selector"
    Switch       data-type="switch"   | "form-switch"
    Collapsible  data-collapsible     | data-type="collapsible"
    Accordion    data-type="accordion" | data-boost="accordion"

Additionally, FloatingLabel and InputCounter decorate form inputs.

Activation either succeeds, returning the widget containers found, or
fails with a configuration error. A selector string which cannot be
resolved is not an error: the activator returns maybe.Nothing, which
is different from an empty list of containers. Problems with single
widgets (a missing radio button, a collapsible without a header) are
reported as diagnostics and do not stop activation of other widgets.

Controllers are not kept by the Activator. They live on as closures of
the event listeners they register.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package widget

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'widgets.activate'.
func tracer() tracing.Trace {
	return tracing.Select("widgets.activate")
}
