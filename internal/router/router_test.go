package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizterm/internal/screen"
)

type pingMsg struct{}

// recorder counts Init calls and the messages it receives.
type recorder struct {
	title string
	inits int
	keys  int
	pings int
}

func (r *recorder) Init() tea.Cmd {
	r.inits++
	return nil
}

func (r *recorder) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tea.KeyPressMsg:
		r.keys++
	case pingMsg:
		r.pings++
	}
	return r, nil
}

func (r *recorder) View(int, int) string { return r.title }
func (r *recorder) Title() string        { return r.title }

func TestNewDoesNotInit(t *testing.T) {
	menu := &recorder{title: "menu"}
	r := New(menu)
	assert.Equal(t, 0, menu.inits)
	assert.Equal(t, "menu", r.View(80, 24))
}

func TestPushAndPop(t *testing.T) {
	menu := &recorder{title: "menu"}
	history := &recorder{title: "history"}
	r := New(menu)

	r.Update(PushScreenMsg{Screen: history})
	require.Equal(t, 2, r.Depth())
	assert.Equal(t, "history", r.Active().Title())
	assert.Equal(t, 1, history.inits)

	r.Update(PopScreenMsg{})
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "menu", r.Active().Title())
}

func TestPopKeepsLastScreen(t *testing.T) {
	r := New(&recorder{title: "menu"})
	r.Pop()
	r.Pop()
	assert.Equal(t, 1, r.Depth())
}

func TestReplaceKeepsDepth(t *testing.T) {
	loading := &recorder{title: "loading"}
	quiz := &recorder{title: "quiz"}
	r := New(loading)

	r.Update(ReplaceScreenMsg{Screen: quiz})
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "quiz", r.Active().Title())
	assert.Equal(t, 1, quiz.inits)
}

func TestKeysReachOnlyTopScreen(t *testing.T) {
	menu := &recorder{title: "menu"}
	history := &recorder{title: "history"}
	r := New(menu)
	r.Push(history)

	r.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 0, menu.keys)
	assert.Equal(t, 1, history.keys)
}

func TestOtherMessagesReachCoveredScreens(t *testing.T) {
	menu := &recorder{title: "menu"}
	history := &recorder{title: "history"}
	r := New(menu)
	r.Push(history)

	r.Update(pingMsg{})
	assert.Equal(t, 1, menu.pings, "covered screen should still get command results")
	assert.Equal(t, 1, history.pings)
}
