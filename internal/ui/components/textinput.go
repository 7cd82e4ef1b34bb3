package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizterm/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with quizterm styling and optional
// tab-completion against a fixed word list.
type TextInput struct {
	Model    textinput.Model
	MaxWidth int
}

// NewTextInput creates a new styled text input. It starts blurred.
func NewTextInput(placeholder string, suggestions []string, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "/ "
	if len(suggestions) > 0 {
		ti.ShowSuggestions = true
		ti.SetSuggestions(suggestions)
	}
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
		ti.SetWidth(maxWidth)
	}

	return TextInput{
		Model:    ti,
		MaxWidth: maxWidth,
	}
}

// Focus starts accepting key presses.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur stops accepting key presses.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input accepts key presses.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Reset clears the value.
func (t *TextInput) Reset() {
	t.Model.Reset()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if !t.Model.Focused() {
		style = style.Foreground(theme.TextDim)
	}
	return style.Render(t.Model.View())
}

// Value returns the trimmed input value.
func (t TextInput) Value() string {
	return strings.TrimSpace(t.Model.Value())
}
