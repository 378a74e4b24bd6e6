package help

import "github.com/charmbracelet/lipgloss"

type styles struct {
	heading lipgloss.Style
	command lipgloss.Style
	empty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		command: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		empty:   lipgloss.NewStyle().Faint(true),
	}
}
