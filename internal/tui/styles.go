package tui

import "github.com/charmbracelet/lipgloss"

// styles holds the theme-dependent lipgloss styles. Rebuilt whenever
// the theme color or dark-mode setting changes.
type styles struct {
	activeTab   lipgloss.Style
	inactiveTab lipgloss.Style
	danger      lipgloss.Style
	overlay     lipgloss.Style
	doc         lipgloss.Style
}

func newStyles(themeColor string, darkMode bool) styles {
	inactiveFg := lipgloss.Color("240")
	tabBg := lipgloss.Color("236")
	if !darkMode {
		inactiveFg = lipgloss.Color("245")
		tabBg = lipgloss.Color("254")
	}

	return styles{
		activeTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(themeColor)).
			Background(tabBg).
			Padding(0, 1).
			Bold(true),
		inactiveTab: lipgloss.NewStyle().
			Foreground(inactiveFg).
			Padding(0, 1),
		danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		overlay: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(themeColor)).
			Padding(1, 4).
			Bold(true),
		doc: lipgloss.NewStyle().Padding(1, 2),
	}
}
