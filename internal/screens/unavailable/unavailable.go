// Package unavailable explains why a feature cannot be shown.
package unavailable

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizterm/internal/router"
	"github.com/abhisek/quizterm/internal/screen"
	"github.com/abhisek/quizterm/internal/ui/keys"
	"github.com/abhisek/quizterm/internal/ui/layout"
	"github.com/abhisek/quizterm/internal/ui/theme"
)

// UnavailableScreen shows a reason in place of a feature.
type UnavailableScreen struct {
	title  string
	reason string
}

var _ screen.Screen = (*UnavailableScreen)(nil)
var _ screen.KeyHintProvider = (*UnavailableScreen)(nil)

// New creates a new UnavailableScreen with the given title.
func New(title, reason string) *UnavailableScreen {
	return &UnavailableScreen{title: title, reason: reason}
}

func (p *UnavailableScreen) Init() tea.Cmd {
	return nil
}

func (p *UnavailableScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Back)
}

func (p *UnavailableScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(kmsg, keys.Back) {
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return p, nil
}

func (p *UnavailableScreen) View(width, height int) string {
	heading := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("╌╌ " + p.title + " unavailable ╌╌")
	body := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(min(width-4, 60)).
		Align(lipgloss.Center).
		Render(p.reason)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(heading + "\n\n" + body)
}

func (p *UnavailableScreen) Title() string {
	return p.title
}
