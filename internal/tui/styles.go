package tui

import "github.com/charmbracelet/lipgloss"

// One muted palette for the whole journal: the list is plain text, errors
// and conflict banners stand out bold, overlays get a rounded frame.
var (
	appStyle   = lipgloss.NewStyle().Padding(1, 2)
	titleStyle = lipgloss.NewStyle().Bold(true)

	// footer hints and sync status line
	helpStyle = lipgloss.NewStyle().Faint(true)

	errorStyle      = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
