// Package home renders the subject menu.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizterm/internal/screen"
	"github.com/abhisek/quizterm/internal/ui/components"
	"github.com/abhisek/quizterm/internal/ui/keys"
	"github.com/abhisek/quizterm/internal/ui/layout"
	"github.com/abhisek/quizterm/internal/view"
)

// SubjectChosenMsg asks the quiz host to start the named subject.
type SubjectChosenMsg struct {
	Name string
}

// HomeScreen lists the catalog's subjects.
type HomeScreen struct {
	menu     components.Menu
	subjects []view.MenuItem
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen for the given subjects, in catalog order.
func New(subjects []view.MenuItem) *HomeScreen {
	items := make([]components.MenuItem, 0, len(subjects))
	for _, s := range subjects {
		name := s.Name
		items = append(items, components.MenuItem{
			Label:  name,
			Prefix: components.SubjectTile(name),
			Action: func() tea.Cmd {
				return func() tea.Msg { return SubjectChosenMsg{Name: name} }
			},
		})
	}
	return &HomeScreen{
		menu:     components.NewMenu(items),
		subjects: subjects,
	}
}

// Selected returns the highlighted subject name, or "" for an empty menu.
func (h *HomeScreen) Selected() string {
	if h.menu.Selected < 0 || h.menu.Selected >= len(h.subjects) {
		return ""
	}
	return h.subjects[h.menu.Selected].Name
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Up, keys.Down, keys.Enter, keys.History, keys.Theme, keys.Quit)
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderIntro(cw, layout.IsCompactBody(height)))

	if len(h.subjects) == 0 {
		sections = append(sections, renderEmpty(cw))
	} else {
		sections = append(sections, components.Card(h.menu.View(), cw))
	}

	content := strings.Join(sections, "\n\n")
	return components.Panel(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Menu"
}
