package cli

import "github.com/charmbracelet/lipgloss"

// Style definitions for command output, on the usual dark-terminal palette.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B"))

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3B82F6"))

	successIcon = successStyle.Render("✓")
	warningIcon = warningStyle.Render("!")
	infoIcon    = subtitleStyle.Render("•")
)
