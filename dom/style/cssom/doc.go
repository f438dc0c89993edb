/*
Package cssom provides functionality for CSS styling.

CSSOM is the "CSS Object Model", similar to the DOM for HTML. Documents
may carry `<style>` elements; their rules are collected into a CSSOM, which
computes the styles for an element: all matching rules are applied in the
order of the cascade (importance, specificity, source order), and finally
the element's inline style is laid on top.

CSS handling is de-coupled by introducing the interfaces StyleSheet and
Rule. A concrete implementation may be found in sub-package douceuradapter.
Selector matching and specificity are delegated to
https://godoc.org/github.com/andybalholm/cascadia.

We do not implement inheritance of properties. Clients interested in
inherited values (e.g., whether an element is displayed at all) have to
walk up the tree themselves.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'widgets.style'.
func tracer() tracing.Trace {
	return tracing.Select("widgets.style")
}
