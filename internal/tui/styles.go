package tui

import "github.com/charmbracelet/lipgloss"

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().Bold(true)

	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	dangerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	toastStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	barFilledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	barEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

	// Pulse cell colors, worst to best.
	bucketStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")), // no rating
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("112")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
	}
)
