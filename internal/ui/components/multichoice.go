package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizterm/internal/ui/keys"
	"github.com/abhisek/quizterm/internal/ui/theme"
)

// NoSelection marks a MultiChoice with nothing highlighted.
const NoSelection = -1

// MultiChoice is a multiple-choice selector component. Nothing is selected
// until the player moves or presses an option key, and Enter does nothing
// until then.
type MultiChoice struct {
	Question    string
	Labels      []string
	Options     []string
	Selected    int
	Submitted   bool
	ChosenIndex int

	// Compact drops the option borders for short terminals.
	Compact bool
}

// NewMultiChoice creates a new multiple-choice component. labels[i] is
// shown in front of options[i].
func NewMultiChoice(question string, labels, options []string) MultiChoice {
	return MultiChoice{
		Question:    question,
		Labels:      labels,
		Options:     options,
		Selected:    NoSelection,
		ChosenIndex: NoSelection,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// HasSelection reports whether an option is highlighted and can be submitted.
func (m MultiChoice) HasSelection() bool {
	return m.Selected >= 0 && m.Selected < len(m.Options)
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted || len(m.Options) == 0 {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, keys.Up):
		switch {
		case m.Selected == NoSelection:
			m.Selected = len(m.Options) - 1
		case m.Selected > 0:
			m.Selected--
		}
	case key.Matches(kmsg, keys.Down):
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case key.Matches(kmsg, keys.Choose):
		if i, ok := keys.ChoiceIndex(kmsg.String()); ok && i < len(m.Options) {
			m.Selected = i
		}
	case key.Matches(kmsg, keys.Submit):
		if m.HasSelection() {
			m.Submitted = true
			m.ChosenIndex = m.Selected
		}
	}

	return m, nil
}

// View renders the prompt and the options at the given width.
func (m MultiChoice) View(width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(width).
		Render(m.Question))
	b.WriteString("\n\n")
	b.WriteString(m.OptionsView(width))

	return b.String()
}

// OptionsView renders the options without the prompt.
func (m MultiChoice) OptionsView(width int) string {
	var b strings.Builder

	for i, opt := range m.Options {
		label := ""
		if i < len(m.Labels) {
			label = m.Labels[i]
		}

		selected := i == m.Selected
		tag := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Background(theme.Bg).
			Bold(true).
			Padding(0, 1)
		text := lipgloss.NewStyle().Foreground(theme.Text)
		border := theme.Border
		prefix := "  "
		if selected {
			tag = tag.Foreground(theme.ButtonActive.GetForeground()).Background(theme.Primary)
			text = text.Bold(true)
			border = theme.Primary
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s  %s", prefix, tag.Render(label), text.Render(opt))
		if m.Compact {
			b.WriteString(lipgloss.NewStyle().Width(width).Render(line))
			b.WriteString("\n")
			continue
		}
		b.WriteString(lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Width(width).
			Render(line))
		b.WriteString("\n")
	}

	return b.String()
}
