// Package ui holds the terminal presentation pieces of create-silence:
// the spinner, markdown rendering and the shared color theme.
package ui

import "github.com/charmbracelet/lipgloss"

// Colors are hex colors used by the UI components.
type Colors struct {
	Primary string
	Success string
	Error   string
}

// Theme controls colors for every UI component.
type Theme struct {
	NoColor bool
	Colors  Colors
}

// NewTheme returns the default colored theme.
func NewTheme() *Theme {
	return &Theme{
		Colors: Colors{
			Primary: "#22D3EE",
			Success: "#10B981",
			Error:   "#EF4444",
		},
	}
}

// NewNoColorTheme returns a theme that renders plain text.
func NewNoColorTheme() *Theme {
	t := NewTheme()
	t.NoColor = true
	return t
}

// style returns a foreground style for color, or a plain style when colors
// are disabled.
func (t *Theme) style(color string) lipgloss.Style {
	if t.NoColor {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
