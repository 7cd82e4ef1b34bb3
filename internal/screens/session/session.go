// Package session hosts a quiz: it owns the state machine, routes key
// presses into its transitions and renders whichever view the state
// projects to.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizterm/internal/router"
	"github.com/abhisek/quizterm/internal/screen"
	"github.com/abhisek/quizterm/internal/screens/history"
	"github.com/abhisek/quizterm/internal/screens/home"
	"github.com/abhisek/quizterm/internal/screens/summary"
	"github.com/abhisek/quizterm/internal/screens/unavailable"
	sess "github.com/abhisek/quizterm/internal/session"
	"github.com/abhisek/quizterm/internal/store"
	"github.com/abhisek/quizterm/internal/ui/components"
	"github.com/abhisek/quizterm/internal/ui/keys"
	"github.com/abhisek/quizterm/internal/ui/layout"
	"github.com/abhisek/quizterm/internal/view"
)

// SessionScreen drives one quiz session through menu, questions and results.
type SessionScreen struct {
	sess    *sess.Session
	results store.ResultRepo
	logger  *slog.Logger
	start   string

	home        *home.HomeScreen
	choice      components.MultiChoice
	summary     *summary.SummaryScreen
	confirmQuit bool
	notice      string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.BadgeProvider = (*SessionScreen)(nil)

// Option configures a SessionScreen.
type Option func(*SessionScreen)

// WithResults persists completed quizzes to repo and backs the history
// screen.
func WithResults(repo store.ResultRepo) Option {
	return func(s *SessionScreen) { s.results = repo }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *SessionScreen) { s.logger = l }
}

// WithSubject starts the named subject as soon as the screen is shown.
func WithSubject(name string) Option {
	return func(s *SessionScreen) { s.start = name }
}

// New creates a SessionScreen around a session in the menu phase.
func New(q *sess.Session, opts ...Option) *SessionScreen {
	s := &SessionScreen{
		sess:   q,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.home = home.New(s.frame().Subjects)
	return s
}

func (s *SessionScreen) frame() view.Frame {
	return view.Project(s.sess.Catalog(), s.sess.State())
}

func (s *SessionScreen) Init() tea.Cmd {
	if s.start == "" {
		return nil
	}
	name := s.start
	return func() tea.Msg { return home.SubjectChosenMsg{Name: name} }
}

func (s *SessionScreen) Title() string {
	f := s.frame()
	switch f.Kind {
	case view.KindQuestion:
		return f.Counter()
	case view.KindResults:
		return s.summaryScreen().Title()
	default:
		return s.home.Title()
	}
}

// Badge shows the active subject in the header.
func (s *SessionScreen) Badge() *layout.Badge {
	b := s.frame().Badge
	if b == nil {
		return nil
	}
	return &layout.Badge{Name: b.Name, Icon: b.Icon}
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return keys.Hints(keys.Yes, keys.No)
	}
	switch s.sess.State().Phase {
	case sess.PhaseInProgress:
		submit := keys.Submit
		submit.SetEnabled(s.choice.HasSelection())
		back := keys.Back
		back.SetHelp("Esc", "Quit quiz")
		return keys.Hints(keys.Choose, keys.Up, keys.Down, submit, back, keys.Theme)
	case sess.PhaseFinished:
		return s.summaryScreen().KeyHints()
	default:
		return keys.Hints(keys.Up, keys.Down, keys.Enter, keys.History, keys.Theme, keys.Quit)
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case home.SubjectChosenMsg:
		return s, s.selectSubject(msg.Name)

	case summary.PlayAgainMsg:
		s.reset()
		return s, nil

	case resultSavedMsg:
		s.resultSaved(msg)
		return s, nil

	case noticeMsg:
		s.notice = msg.Text
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	// Quit confirmation dialog.
	if s.confirmQuit {
		switch {
		case key.Matches(msg, keys.Yes):
			s.confirmQuit = false
			s.logger.Info("quiz abandoned",
				"session", s.sess.State().SessionID,
				"question", s.sess.State().Position())
			s.reset()
		case key.Matches(msg, keys.No):
			s.confirmQuit = false
		}
		return s, nil
	}

	switch s.sess.State().Phase {
	case sess.PhaseInProgress:
		if key.Matches(msg, keys.Back) {
			s.confirmQuit = true
			return s, nil
		}
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		if s.choice.Submitted {
			return s, tea.Batch(cmd, s.submit(sess.Choice(s.choice.ChosenIndex)))
		}
		return s, cmd

	case sess.PhaseFinished:
		_, cmd := s.summaryScreen().Update(msg)
		return s, cmd

	default:
		if key.Matches(msg, keys.History) {
			next := s.historyScreen()
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
		s.notice = ""
		_, cmd := s.home.Update(msg)
		return s, cmd
	}
}

func (s *SessionScreen) historyScreen() screen.Screen {
	if s.results == nil {
		return unavailable.New("History",
			"Quiz results are not being saved because the database could not be opened. "+
				"Check --db or QUIZTERM_DB and the log file.")
	}
	return history.New(s.results, s.sess.Catalog().Names())
}

func (s *SessionScreen) selectSubject(name string) tea.Cmd {
	ev, err := s.sess.SelectSubject(name)
	if err != nil {
		s.logger.Warn("select subject", "subject", name, "error", err)
		if errors.Is(err, sess.ErrSubjectNotFound) {
			text := fmt.Sprintf("No subject named %q", name)
			return func() tea.Msg { return noticeMsg{Text: text} }
		}
		return nil
	}
	s.notice = ""
	s.summary = nil
	s.logger.Info("quiz started",
		"session", s.sess.State().SessionID,
		"subject", ev.Subject,
		"questions", ev.Total)
	s.loadQuestion(ev)
	return nil
}

func (s *SessionScreen) loadQuestion(ev sess.QuestionLoaded) {
	s.choice = components.NewMultiChoice(ev.Question.Prompt, sess.Letters[:], ev.Question.Options)
}

// submit grades the choice and advances to the next question or the results.
func (s *SessionScreen) submit(choice sess.Choice) tea.Cmd {
	correct := s.sess.IsCorrect(choice)
	ev, err := s.sess.SubmitAnswer(choice)
	if err != nil {
		s.logger.Warn("submit answer", "choice", int(choice), "error", err)
		return nil
	}
	s.logger.Debug("answer submitted",
		"session", s.sess.State().SessionID,
		"choice", choice.Letter(),
		"correct", correct)

	switch ev := ev.(type) {
	case sess.QuestionLoaded:
		s.loadQuestion(ev)
		return nil
	case sess.QuizCompleted:
		s.logger.Info("quiz completed",
			"session", ev.SessionID,
			"subject", ev.Subject,
			"score", ev.Score,
			"total", ev.Total)
		s.summary = nil
		return s.saveResult(ev)
	}
	return nil
}

// saveResult appends the result and looks up the best score for the subject.
func (s *SessionScreen) saveResult(ev sess.QuizCompleted) tea.Cmd {
	if s.results == nil {
		return nil
	}
	repo := s.results
	return func() tea.Msg {
		ctx := context.Background()
		err := repo.AppendResult(ctx, store.ResultEventData{
			SessionID: ev.SessionID,
			Subject:   ev.Subject,
			Score:     ev.Score,
			Total:     ev.Total,
		})
		if err != nil {
			return resultSavedMsg{SessionID: ev.SessionID, Err: fmt.Errorf("append result: %w", err)}
		}
		best, ok, err := repo.BestScore(ctx, ev.Subject)
		if err != nil {
			return resultSavedMsg{SessionID: ev.SessionID, Err: fmt.Errorf("best score: %w", err)}
		}
		return resultSavedMsg{
			SessionID: ev.SessionID,
			Best:      best.Score,
			BestTotal: best.Total,
			BestIsNew: best.SessionID == ev.SessionID,
			HasBest:   ok,
		}
	}
}

func (s *SessionScreen) resultSaved(msg resultSavedMsg) {
	if msg.Err != nil {
		s.logger.Warn("save result", "session", msg.SessionID, "error", msg.Err)
		return
	}
	st := s.sess.State()
	if !msg.HasBest || st.Phase != sess.PhaseFinished || st.SessionID != msg.SessionID {
		return
	}
	s.summaryScreen().SetBest(summary.Best{
		Score:   msg.Best,
		Total:   msg.BestTotal,
		Current: msg.BestIsNew,
	})
}

// summaryScreen lazily builds the results screen for the finished quiz.
func (s *SessionScreen) summaryScreen() *summary.SummaryScreen {
	if s.summary == nil {
		sum, _ := sess.BuildSummary(s.sess.State())
		s.summary = summary.New(sum)
	}
	return s.summary
}

func (s *SessionScreen) reset() {
	s.sess.Reset()
	s.summary = nil
	s.confirmQuit = false
	s.home = home.New(s.frame().Subjects)
}

func (s *SessionScreen) View(width, height int) string {
	f := s.frame()
	switch f.Kind {
	case view.KindQuestion:
		if s.confirmQuit {
			return renderQuitConfirm(width, height)
		}
		return s.renderQuestionView(f, width, height)
	case view.KindResults:
		return s.summaryScreen().View(width, height)
	default:
		out := s.home.View(width, menuHeight(height, s.notice))
		if s.notice != "" {
			out = renderNotice(s.notice, width) + "\n" + out
		}
		return out
	}
}
