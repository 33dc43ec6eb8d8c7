package commands

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for CLI output.
type Theme struct {
	Primary lipgloss.Color // matched aliases, labels
	Warn    lipgloss.Color // literal-lyric fallbacks
	Dim     lipgloss.Color // hints and suggestions
}

var defaultTheme = Theme{
	Primary: lipgloss.Color("#00ff9f"),
	Warn:    lipgloss.Color("#f0883e"),
	Dim:     lipgloss.Color("#6e7681"),
}

// Styles holds all styles derived from a theme.
type Styles struct {
	Alias    lipgloss.Style
	Fallback lipgloss.Style
	Label    lipgloss.Style
	Help     lipgloss.Style
}

// newStyles creates styles from a theme.
func newStyles(t Theme) Styles {
	return Styles{
		Alias:    lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Fallback: lipgloss.NewStyle().Foreground(t.Warn),
		Label:    lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Help:     lipgloss.NewStyle().Foreground(t.Dim),
	}
}

var styles = newStyles(defaultTheme)
