package ui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used for block output: the result
// heading, the label column of key/value tables and check verdicts.
type Styles struct {
	Heading lipgloss.Style
	Label   lipgloss.Style
	Pass    lipgloss.Style
	Fail    lipgloss.Style
}

// palette maps theme names to lipgloss colors.
var palette = map[string]struct{ primary, secondary, success, failure lipgloss.TerminalColor }{
	"dark":  {lipgloss.Color("39"), lipgloss.Color("245"), lipgloss.Color("82"), lipgloss.Color("196")},
	"light": {lipgloss.Color("27"), lipgloss.Color("240"), lipgloss.Color("28"), lipgloss.Color("124")},
}

// CurrentStyles returns styles matching the active theme. With colors
// disabled every style renders plain text.
func CurrentStyles() Styles {
	p, ok := palette[GetCurrentTheme().Name]
	if !ok {
		plain := lipgloss.NewStyle()
		return Styles{Heading: plain, Label: plain, Pass: plain, Fail: plain}
	}
	return Styles{
		Heading: lipgloss.NewStyle().Bold(true).Foreground(p.primary),
		Label:   lipgloss.NewStyle().Foreground(p.secondary),
		Pass:    lipgloss.NewStyle().Bold(true).Foreground(p.success),
		Fail:    lipgloss.NewStyle().Bold(true).Foreground(p.failure),
	}
}

// LabelWidth pads a label column to width cells.
func (s Styles) LabelWidth(width int) Styles {
	s.Label = s.Label.Width(width)
	return s
}
