// Package vellum provides a retained-mode UI component tree with a
// constraint-based layout engine for Go.
//
// Users import this single package for the complete public API:
// node construction, styles, layout values, the engine, and hit testing.
// Supporting packages live under pkg/: text measurement, media sizing,
// expression bindings, and layout tracing.
package vellum
