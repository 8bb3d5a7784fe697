// internal/cli/theme.go
package cli

import "github.com/charmbracelet/lipgloss"

// Theme defines the styles used for terminal output
type Theme struct {
	Plain  lipgloss.Style
	Title  lipgloss.Style
	Bold   lipgloss.Style
	Cyan   lipgloss.Style
	Green  lipgloss.Style
	Yellow lipgloss.Style
	Dim    lipgloss.Style

	Bullet string
	Arrow  string
}

// DefaultTheme returns the standard palette
func DefaultTheme() *Theme {
	return &Theme{
		Plain:  lipgloss.NewStyle(),
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")),
		Bold:   lipgloss.NewStyle().Bold(true),
		Cyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Dim:    lipgloss.NewStyle().Faint(true),

		Bullet: "•",
		Arrow:  "→",
	}
}

// Column pads text to width before styling so columns stay aligned
func Column(style lipgloss.Style, text string, width int) string {
	return style.Width(width).Render(text)
}
