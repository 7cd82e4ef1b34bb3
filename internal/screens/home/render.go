package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizterm/internal/ui/theme"
)

// renderIntro returns the greeting block. Compact mode drops the subtitle.
func renderIntro(cw int, compact bool) string {
	light := lipgloss.NewStyle().Foreground(theme.Text)
	bold := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	text := light.Render("Welcome to the") + "\n" + bold.Render("Frontend Quiz!")
	if !compact {
		text += "\n\n" + lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("Pick a subject to get started.")
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}

func renderEmpty(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render("This catalog has no subjects.")
}
