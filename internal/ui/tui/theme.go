package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Toast    lipgloss.Style
	Error    lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Label: lipgloss.NewStyle().Faint(true),
		Value: lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
		Toast: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
