// Package history lists completed quizzes from the result log.
package history

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizterm/internal/router"
	"github.com/abhisek/quizterm/internal/screen"
	"github.com/abhisek/quizterm/internal/store"
	"github.com/abhisek/quizterm/internal/ui/components"
	"github.com/abhisek/quizterm/internal/ui/keys"
	"github.com/abhisek/quizterm/internal/ui/layout"
	"github.com/abhisek/quizterm/internal/ui/theme"
)

// PageSize is the number of results loaded at once.
const PageSize = 50

type historyLoadedMsg struct {
	Subject string
	Results []store.ResultEventRecord
	Err     error
}

// HistoryScreen displays past quiz results, optionally filtered by subject.
type HistoryScreen struct {
	repo     store.ResultRepo
	subjects []string
	results  []store.ResultEventRecord
	filter   components.TextInput
	subject  string
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)
var _ screen.InputCapturer = (*HistoryScreen)(nil)

// New creates a new HistoryScreen. subjects feed tab completion in the filter.
func New(repo store.ResultRepo, subjects []string) *HistoryScreen {
	return &HistoryScreen{
		repo:     repo,
		subjects: subjects,
		filter:   components.NewTextInput("subject", subjects, 24),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return s.query("")
}

func (s *HistoryScreen) query(subject string) tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		results, err := repo.QueryResults(context.Background(), store.QueryOpts{
			Limit:   PageSize,
			Subject: subject,
		})
		return historyLoadedMsg{Subject: subject, Results: results, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

// CapturingInput is true while the filter field has focus.
func (s *HistoryScreen) CapturingInput() bool {
	return s.filter.Focused()
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	if s.filter.Focused() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Tab", Description: "Complete"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return keys.Hints(keys.Up, keys.Down, keys.Filter, keys.Back)
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.errMsg = ""
			s.results = msg.Results
			s.subject = msg.Subject
			s.selected = 0
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		if s.filter.Focused() {
			return s.updateFilter(msg)
		}
		switch {
		case key.Matches(msg, keys.Back):
			if s.subject != "" {
				s.filter.Reset()
				return s, s.query("")
			}
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case key.Matches(msg, keys.Up):
			if s.selected > 0 {
				s.selected--
			}
		case key.Matches(msg, keys.Down):
			if s.selected < len(s.results)-1 {
				s.selected++
			}
		case key.Matches(msg, keys.Filter):
			return s, s.filter.Focus()
		}
	}
	return s, nil
}

func (s *HistoryScreen) updateFilter(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		s.filter.Blur()
		return s, nil
	case key.Matches(msg, keys.Enter):
		s.filter.Blur()
		return s, s.query(s.canonical(s.filter.Value()))
	}
	var cmd tea.Cmd
	s.filter, cmd = s.filter.Update(msg)
	return s, cmd
}

// canonical maps a typed subject onto the catalog's spelling so the
// exact-match store filter finds it.
func (s *HistoryScreen) canonical(typed string) string {
	for _, name := range s.subjects {
		if strings.EqualFold(name, typed) {
			return name
		}
	}
	return typed
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}

	var b strings.Builder
	b.WriteString("\n")

	if s.filter.Focused() || s.subject != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.filter.View()))
		b.WriteString("\n\n")
	}

	if len(s.results) == 0 {
		empty := "No quizzes completed yet. Pick a subject to play!"
		if s.subject != "" {
			empty = fmt.Sprintf("No %s quizzes completed yet.", s.subject)
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render(empty))
		return b.String()
	}

	rows := visibleRows(height)
	start := 0
	if s.selected >= rows {
		start = s.selected - rows + 1
	}
	for i := start; i < len(s.results) && i < start+rows; i++ {
		r := s.results[i]
		dateStr := r.Timestamp.Local().Format("Jan 02, 2006 15:04")

		var pct float64
		if r.Total > 0 {
			pct = float64(r.Score) / float64(r.Total) * 100
		}

		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s  %-14s %2d/%-2d  %3.0f%%",
			prefix, dateStr, r.Subject, r.Score, r.Total, pct)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			components.SubjectTile(r.Subject)+" "+style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

// visibleRows leaves room for the filter line and padding.
func visibleRows(height int) int {
	return max(height-4, 1)
}
