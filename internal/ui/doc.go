// Package ui provides the color themes and lipgloss styles shared by the CLI
// presenter, the REPL and the usage text.
package ui
