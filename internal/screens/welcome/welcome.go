// Package welcome is the splash screen shown while the catalog loads.
package welcome

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizterm/internal/catalog"
	"github.com/abhisek/quizterm/internal/router"
	"github.com/abhisek/quizterm/internal/screen"
	"github.com/abhisek/quizterm/internal/ui/layout"
	"github.com/abhisek/quizterm/internal/ui/theme"
)

const tickInterval = 100 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// LoadFunc fetches the catalog.
type LoadFunc func(ctx context.Context) (*catalog.Catalog, error)

type tickMsg time.Time

type catalogLoadedMsg struct {
	Catalog *catalog.Catalog
	Err     error
}

// WelcomeScreen loads the catalog and replaces itself with the screen built
// by next once it arrives. A load failure is shown until a key is pressed,
// which ends the program with the error.
type WelcomeScreen struct {
	load         LoadFunc
	next         func(*catalog.Catalog) screen.Screen
	tickCount    int
	loaded       bool
	err          error
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen.
func New(load LoadFunc, next func(*catalog.Catalog) screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		load: load,
		next: next,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	if w.err != nil {
		return []layout.KeyHint{{Key: "Any key", Description: "Exit"}}
	}
	return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	load := w.load
	return tea.Batch(tick(), func() tea.Msg {
		c, err := load(context.Background())
		return catalogLoadedMsg{Catalog: c, Err: err}
	})
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if w.loaded {
			return w, nil
		}
		w.tickCount++
		return w, tick()

	case catalogLoadedMsg:
		w.loaded = true
		if msg.Err != nil {
			w.err = msg.Err
			return w, nil
		}
		return w, w.transition(msg.Catalog)

	case tea.KeyPressMsg:
		if w.err != nil {
			err := w.err
			return w, func() tea.Msg { return screen.FatalErrMsg{Err: err} }
		}
	}

	return w, nil
}

func (w *WelcomeScreen) transition(c *catalog.Catalog) tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next(c)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{RenderBanner(width), ""}

	if w.err != nil {
		sections = append(sections,
			lipgloss.NewStyle().
				Foreground(theme.Error).
				Bold(true).
				Render("Could not load the quiz catalog"),
			"",
			lipgloss.NewStyle().
				Foreground(theme.Text).
				Width(min(width-4, 70)).
				Align(lipgloss.Center).
				Render(w.err.Error()),
			"",
			lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Italic(true).
				Render("press any key to exit"),
		)
	} else {
		frame := spinnerFrames[w.tickCount%len(spinnerFrames)]
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.Accent).Render(frame)+" "+
				lipgloss.NewStyle().Foreground(theme.TextDim).Render("Loading questions..."),
		)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
