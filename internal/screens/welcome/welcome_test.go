package welcome

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizterm/internal/catalog"
	"github.com/abhisek/quizterm/internal/router"
	"github.com/abhisek/quizterm/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{ c *catalog.Catalog }

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "menu" }
func (s *stubScreen) Title() string                          { return "Menu" }

func newTestWelcome(loadErr error) (*WelcomeScreen, *int) {
	calls := 0
	load := func(context.Context) (*catalog.Catalog, error) {
		if loadErr != nil {
			return nil, loadErr
		}
		return catalog.Parse(catalog.DefaultDocument())
	}
	next := func(c *catalog.Catalog) screen.Screen {
		calls++
		return &stubScreen{c: c}
	}
	return New(load, next), &calls
}

// runLoad executes the load command directly, bypassing the tick batch.
func runLoad(w *WelcomeScreen) tea.Msg {
	c, err := w.load(context.Background())
	return catalogLoadedMsg{Catalog: c, Err: err}
}

func TestInitReturnsCommand(t *testing.T) {
	w, _ := newTestWelcome(nil)
	if w.Init() == nil {
		t.Fatal("Init should start loading")
	}
}

func TestLoadingView(t *testing.T) {
	w, _ := newTestWelcome(nil)
	view := w.View(80, 24)
	if !strings.Contains(view, "Loading questions") {
		t.Errorf("expected loading text, got %q", view)
	}
}

func TestTicksAdvanceSpinnerUntilLoaded(t *testing.T) {
	w, _ := newTestWelcome(nil)
	for i := 0; i < 3; i++ {
		_, cmd := w.Update(tickMsg(time.Now()))
		if cmd == nil {
			t.Fatalf("tick %d: expected next tick", i)
		}
	}
	if w.tickCount != 3 {
		t.Errorf("tickCount = %d, want 3", w.tickCount)
	}

	w.Update(runLoad(w))
	if _, cmd := w.Update(tickMsg(time.Now())); cmd != nil {
		t.Error("ticks should stop once loaded")
	}
}

func TestLoadedEmitsReplace(t *testing.T) {
	w, calls := newTestWelcome(nil)

	_, cmd := w.Update(runLoad(w))
	if cmd == nil {
		t.Fatal("expected a command after load")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	stub, ok := msg.Screen.(*stubScreen)
	if !ok || stub.c == nil || len(stub.c.Subjects) != 4 {
		t.Fatalf("next screen not seeded with the catalog: %#v", msg.Screen)
	}
	if *calls != 1 {
		t.Errorf("factory should be called once, got %d", *calls)
	}

	if _, cmd := w.Update(runLoad(w)); cmd != nil {
		t.Error("second load should not transition again")
	}
}

func TestKeypressWhileLoadingDoesNothing(t *testing.T) {
	w, calls := newTestWelcome(nil)
	if _, cmd := w.Update(tea.KeyPressMsg{Code: ' '}); cmd != nil {
		t.Error("keypress during load should not produce a command")
	}
	if *calls != 0 {
		t.Errorf("factory called %d times", *calls)
	}
}

func TestLoadErrorShownThenFatal(t *testing.T) {
	loadErr := &catalog.LoadError{Source: "missing.json", Err: errors.New("no such file")}
	w, calls := newTestWelcome(loadErr)

	if _, cmd := w.Update(runLoad(w)); cmd != nil {
		t.Fatal("load error should wait for a key press")
	}
	if *calls != 0 {
		t.Errorf("factory should not be called on error, got %d", *calls)
	}

	view := w.View(80, 24)
	if !strings.Contains(view, "Could not load") {
		t.Errorf("expected error view, got %q", view)
	}

	_, cmd := w.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Fatal("expected a command after key press")
	}
	fatal, ok := cmd().(screen.FatalErrMsg)
	if !ok {
		t.Fatalf("expected FatalErrMsg, got %T", cmd())
	}
	if !errors.Is(fatal.Err, catalog.ErrLoad) {
		t.Errorf("fatal error should be a load error, got %v", fatal.Err)
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestWelcome(nil)
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}
