package main

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'widgets.activate'.
func tracer() tracing.Trace {
	return tracing.Select("widgets.activate")
}
