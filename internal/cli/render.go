package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/silence-cli/create-silence/internal/ui"
)

// CLI output styles.
var (
	cliSuccess = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"}).
			Bold(true).
			Italic(true)
	cliError = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}).
			Bold(true).
			Italic(true)
)

func render(theme *ui.Theme, style lipgloss.Style, s string) string {
	if theme.NoColor {
		return s
	}
	return style.Render(s)
}

func renderError(theme *ui.Theme, msg string) string {
	return render(theme, cliError, msg)
}

func renderStep(theme *ui.Theme, step string) string {
	return "\t" + render(theme, cliSuccess, step)
}
