package styles

import "github.com/charmbracelet/lipgloss"

var RedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
var GreenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
var SelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
var DimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
var HelpBarStyle = lipgloss.NewStyle().Padding(0, 1)
var HeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
