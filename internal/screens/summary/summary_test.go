package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizterm/internal/session"
)

func testSummary() session.Summary {
	return session.Summary{
		SessionID: "test-session-id",
		Subject:   "CSS",
		Icon:      "./assets/images/icon-css.svg",
		Score:     8,
		Total:     10,
		Accuracy:  0.8,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(100, 30)
	for _, want := range []string{"You scored", "CSS", "8", "out of 10", "80% correct", "Play Again"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "Best") {
		t.Error("best score should not show before it is known")
	}
}

func TestSummaryScreen_Best(t *testing.T) {
	s := New(testSummary())
	s.SetBest(Best{Score: 9, Total: 10})
	if !strings.Contains(s.View(100, 30), "Best: 9 out of 10") {
		t.Error("expected previous best")
	}

	s.SetBest(Best{Score: 8, Total: 10, Current: true})
	if !strings.Contains(s.View(100, 30), "New best!") {
		t.Error("expected new best marker")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(PlayAgainMsg); !ok {
		t.Errorf("expected PlayAgainMsg, got %T", cmd())
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc")
	}
}

func TestSummaryScreen_OtherKeysIgnored(t *testing.T) {
	s := New(testSummary())
	if _, cmd := s.Update(tea.KeyPressMsg{Code: 'x', Text: "x"}); cmd != nil {
		t.Error("unexpected command")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary())
	hints := s.KeyHints()
	if len(hints) != 3 {
		t.Errorf("KeyHints length = %d, want 3", len(hints))
	}
}
