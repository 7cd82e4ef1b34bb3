// Package keys holds the key bindings shared by every screen.
package keys

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/quizterm/internal/ui/layout"
)

var (
	Up = key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "Up"),
	)
	Down = key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "Down"),
	)
	Enter = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "Select"),
	)
	Submit = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "Submit"),
	)
	Choose = key.NewBinding(
		key.WithKeys("a", "b", "c", "d", "A", "B", "C", "D", "1", "2", "3", "4"),
		key.WithHelp("A-D", "Choose"),
	)
	Back = key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "Back"),
	)
	Theme = key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("T", "Theme"),
	)
	History = key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("H", "History"),
	)
	Filter = key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "Filter"),
	)
	Quit = key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("Ctrl+C", "Quit"),
	)
	Yes = key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("Y", "Yes"),
	)
	No = key.NewBinding(
		key.WithKeys("n", "N", "esc"),
		key.WithHelp("N", "No"),
	)
)

// ChoiceIndex maps a choose key ("a"-"d", "A"-"D" or "1"-"4") to an option
// position. ok is false for any other key.
func ChoiceIndex(k string) (int, bool) {
	if len(k) != 1 {
		return 0, false
	}
	switch c := k[0]; {
	case c >= 'a' && c <= 'd':
		return int(c - 'a'), true
	case c >= 'A' && c <= 'D':
		return int(c - 'A'), true
	case c >= '1' && c <= '4':
		return int(c - '1'), true
	}
	return 0, false
}

// Hints converts bindings to footer hints, skipping disabled ones.
func Hints(bindings ...key.Binding) []layout.KeyHint {
	hints := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}
