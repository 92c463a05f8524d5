// Package ui holds the color themes and lipgloss styles shared by the CLI
// presenters. It honors --no-color and the NO_COLOR convention.
package ui
