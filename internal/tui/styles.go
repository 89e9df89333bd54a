package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle        = lipgloss.NewStyle().Bold(true)
	helpStyle         = lipgloss.NewStyle().Faint(true)
	errorStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	ownStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	brokenStyle       = lipgloss.NewStyle().Italic(true).Faint(true)
	windowStyle       = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder(), false, true)
	activeWindowStyle = windowStyle.Bold(true).Reverse(true)
)
