// Package logging wires the zerolog backend used by bigmod. It configures the
// global logger that operation instrumentation writes to and provides a small
// structured Logger interface for application components.
package logging
