package session

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizterm/internal/ui/components"
	"github.com/abhisek/quizterm/internal/ui/layout"
	"github.com/abhisek/quizterm/internal/ui/theme"
	"github.com/abhisek/quizterm/internal/view"
)

// twoColumnWidth is the width from which the prompt and the options sit
// side by side.
const twoColumnWidth = 110

// renderQuestionView renders the active question display.
func (s *SessionScreen) renderQuestionView(f view.Frame, width, height int) string {
	submit := components.NewButton("Submit Answer", s.choice.HasSelection(), nil)
	choice := s.choice
	choice.Compact = layout.IsCompactBody(height)

	if width >= twoColumnWidth {
		colWidth := (width - 12) / 2
		left := s.renderPrompt(f, colWidth)
		right := choice.OptionsView(colWidth) + "\n" + submit.View()
		body := lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(colWidth).MarginRight(4).Render(left),
			lipgloss.NewStyle().Width(colWidth).Render(right),
		)
		return components.Panel(body, width, height)
	}

	cw := min(width-8, 72)
	var b strings.Builder
	b.WriteString(s.renderPrompt(f, cw))
	b.WriteString("\n\n")
	b.WriteString(choice.OptionsView(cw))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, submit.View()))
	return components.Panel(b.String(), width, height)
}

// renderPrompt renders the counter, the question text and the progress bar.
func (s *SessionScreen) renderPrompt(f view.Frame, w int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render(f.Counter()))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(w).
		Render(f.Prompt))
	b.WriteString("\n\n")
	b.WriteString(components.NewProgressBar("", f.Progress, false, w).View())
	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Quit this quiz?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Your answers so far will be discarded."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Error).
		Render("[Y] Yes, back to the menu"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return components.Panel(b.String(), width, height)
}

// renderNotice renders a one-line warning above the menu.
func renderNotice(text string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render(text)
}

// menuHeight is the height left for the menu under a notice line.
func menuHeight(height int, notice string) int {
	if notice == "" {
		return height
	}
	return max(height-1, 3)
}
