// Package summary renders the results of a finished quiz.
package summary

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizterm/internal/screen"
	"github.com/abhisek/quizterm/internal/session"
	"github.com/abhisek/quizterm/internal/ui/components"
	"github.com/abhisek/quizterm/internal/ui/keys"
	"github.com/abhisek/quizterm/internal/ui/layout"
	"github.com/abhisek/quizterm/internal/ui/theme"
)

// PlayAgainMsg asks the quiz host to reset to the menu.
type PlayAgainMsg struct{}

// Best is the highest recorded score for the subject. Current is set when
// that record is the quiz just finished.
type Best struct {
	Score   int
	Total   int
	Current bool
}

// SummaryScreen displays the final score.
type SummaryScreen struct {
	summary session.Summary
	best    *Best
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary session.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

// SetBest records the best stored score. It arrives after the screen is
// shown because the lookup runs as a command.
func (s *SummaryScreen) SetBest(b Best) {
	s.best = &b
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Play Again"},
		{Key: "T", Description: "Theme"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		if key.Matches(kmsg, keys.Enter, keys.Back) {
			return s, func() tea.Msg { return PlayAgainMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	cw := components.ContentWidth(width)

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("Quiz completed"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("You scored..."))
	b.WriteString("\n\n")

	// Score card.
	var card strings.Builder
	card.WriteString(components.SubjectTile(sum.Subject, components.TileBoxed))
	card.WriteString("\n")
	card.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(sum.Subject))
	card.WriteString("\n\n")
	card.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("%d", sum.Score)))
	card.WriteString("\n")
	card.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("out of %d", sum.Total)))
	card.WriteString("\n\n")
	card.WriteString(lipgloss.NewStyle().
		Foreground(accuracyColor(sum.Accuracy)).
		Render(fmt.Sprintf("%.0f%% correct", sum.Accuracy*100)))
	if s.best != nil {
		card.WriteString("\n")
		card.WriteString(renderBest(*s.best))
	}
	b.WriteString(components.Card(card.String(), cw))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center,
		components.WideButton("Play Again", true, 22)))

	return components.Panel(b.String(), width, height)
}

func renderBest(best Best) string {
	if best.Current {
		return lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("New best!")
	}
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Best: %d out of %d", best.Score, best.Total))
}

func accuracyColor(acc float64) color.Color {
	switch {
	case acc >= 0.8:
		return theme.Success
	case acc < 0.5:
		return theme.Error
	default:
		return theme.Text
	}
}
