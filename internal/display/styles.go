package display

import "github.com/charmbracelet/lipgloss"

// Styles contains styling for the console renderer
type Styles struct {
	Header  lipgloss.Style
	Rule    lipgloss.Style
	Round   lipgloss.Style
	Player  lipgloss.Style
	Object  lipgloss.Style
	Action  lipgloss.Style
	Score   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
}

// DefaultStyles returns the standard color scheme.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Rule: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Round: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Player: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Object: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Action: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Score: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}
