// Package router keeps the stack of screens. Key and mouse input reaches only
// the top screen; every other message is delivered to the whole stack so that
// results of commands started by a covered screen still reach it.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizterm/internal/screen"
)

// PushScreenMsg opens Screen on top of the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg closes the top screen.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the top screen for Screen.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router manages a stack of screens. The bottom screen is never popped.
type Router struct {
	stack []screen.Screen
}

// New creates a Router showing initial. initial.Init is not called; the
// program's Init does that.
func New(initial screen.Screen) *Router {
	return &Router{stack: []screen.Screen{initial}}
}

// Push adds s on top and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop removes the top screen unless it is the last one.
func (r *Router) Pop() {
	if len(r.stack) > 1 {
		r.stack = r.stack[:len(r.stack)-1]
	}
}

// Replace swaps the top screen for s and returns its Init command.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// Active returns the top screen.
func (r *Router) Active() screen.Screen {
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update applies navigation messages and forwards everything else.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		r.Pop()
		return nil
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	if isInput(msg) {
		return r.updateAt(len(r.stack)-1, msg)
	}

	cmds := make([]tea.Cmd, 0, len(r.stack))
	for i := range r.stack {
		cmds = append(cmds, r.updateAt(i, msg))
	}
	return tea.Batch(cmds...)
}

func (r *Router) updateAt(i int, msg tea.Msg) tea.Cmd {
	updated, cmd := r.stack[i].Update(msg)
	r.stack[i] = updated
	return cmd
}

func isInput(msg tea.Msg) bool {
	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg, tea.PasteMsg:
		return true
	}
	return false
}

// View renders the top screen.
func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
