package session

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/quizterm/internal/catalog"
)

// Event is emitted by a successful transition.
type Event interface {
	isEvent()
}

// QuestionLoaded reports that Question is now the current question.
type QuestionLoaded struct {
	Subject  string
	Index    int // zero-based
	Total    int
	Question catalog.Question
}

// QuizCompleted reports that the last question was answered.
type QuizCompleted struct {
	SessionID string
	Subject   string
	Score     int
	Total     int
}

func (QuestionLoaded) isEvent() {}
func (QuizCompleted) isEvent()  {}

// Session owns the quiz state for a single player. It is not safe for
// concurrent use; the UI event loop is its only caller.
type Session struct {
	catalog *catalog.Catalog
	state   State
	newID   func() string
}

// New creates a session in PhaseMenu seeded with c.
func New(c *catalog.Catalog) *Session {
	return &Session{
		catalog: c,
		newID:   func() string { return uuid.New().String() },
	}
}

// Catalog returns the catalog the session was seeded with.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// State returns a snapshot of the current state.
func (s *Session) State() State {
	return s.state
}

// SelectSubject starts a quiz for the subject matching name case-insensitively.
// It is accepted from any phase and restarts the quiz.
func (s *Session) SelectSubject(name string) (QuestionLoaded, error) {
	subj, ok := s.catalog.Subject(name)
	if !ok {
		return QuestionLoaded{}, fmt.Errorf("%w: %q", ErrSubjectNotFound, name)
	}
	if len(subj.Questions) == 0 {
		return QuestionLoaded{}, fmt.Errorf("subject %q has no questions", subj.Name)
	}

	s.state = State{
		SessionID: s.newID(),
		Subject:   subj,
		Phase:     PhaseInProgress,
	}
	return s.loaded(), nil
}

// CurrentQuestion returns the question being asked.
func (s *Session) CurrentQuestion() (catalog.Question, error) {
	if s.state.Phase != PhaseInProgress {
		return catalog.Question{}, ErrNoActiveQuestion
	}
	return s.state.Subject.Questions[s.state.Index], nil
}

// SubmitAnswer grades choice against the current question and advances.
// The returned event is a QuestionLoaded for the next question or a
// QuizCompleted after the last one. On error the state is unchanged.
func (s *Session) SubmitAnswer(choice Choice) (Event, error) {
	if s.state.Phase != PhaseInProgress {
		return nil, fmt.Errorf("%w: submit in %s", ErrInvalidPhase, s.state.Phase)
	}
	if choice == NoChoice {
		return nil, ErrNoSelection
	}
	if !choice.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChoice, int(choice))
	}

	q := s.state.Subject.Questions[s.state.Index]
	if int(choice) >= len(q.Options) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChoice, int(choice))
	}

	if q.Options[choice] == q.Answer {
		s.state.Score++
	}
	s.state.Index++

	if s.state.Index < len(s.state.Subject.Questions) {
		return s.loaded(), nil
	}

	s.state.Phase = PhaseFinished
	return QuizCompleted{
		SessionID: s.state.SessionID,
		Subject:   s.state.Subject.Name,
		Score:     s.state.Score,
		Total:     len(s.state.Subject.Questions),
	}, nil
}

// SubmitValue submits the option whose text equals value.
func (s *Session) SubmitValue(value string) (Event, error) {
	q, err := s.CurrentQuestion()
	if err != nil {
		return nil, fmt.Errorf("%w: submit in %s", ErrInvalidPhase, s.state.Phase)
	}
	for i, o := range q.Options {
		if o == value {
			return s.SubmitAnswer(Choice(i))
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidChoice, value)
}

// Reset returns to PhaseMenu. It always succeeds.
func (s *Session) Reset() {
	s.state = State{}
}

// IsCorrect reports whether choice would score on the current question.
// It does not change state.
func (s *Session) IsCorrect(choice Choice) bool {
	q, err := s.CurrentQuestion()
	if err != nil || !choice.Valid() || int(choice) >= len(q.Options) {
		return false
	}
	return q.Options[choice] == q.Answer
}

func (s *Session) loaded() QuestionLoaded {
	return QuestionLoaded{
		Subject:  s.state.Subject.Name,
		Index:    s.state.Index,
		Total:    len(s.state.Subject.Questions),
		Question: s.state.Subject.Questions[s.state.Index],
	}
}
