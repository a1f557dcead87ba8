package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the widget views.
type Styles struct {
	Title     lipgloss.Style
	UserLabel lipgloss.Style
	BotLabel  lipgloss.Style
	Heading   lipgloss.Style
	Bold      lipgloss.Style
	Status    lipgloss.Style
	Hint      lipgloss.Style
}

// DefaultStyles returns the widget's default color scheme.
func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).Padding(0, 1),
		UserLabel: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		BotLabel:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Heading:   lipgloss.NewStyle().Bold(true).Underline(true),
		Bold:      lipgloss.NewStyle().Bold(true),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Hint:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
