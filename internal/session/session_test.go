package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizterm/internal/catalog"
)

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{Subjects: []catalog.Subject{
		{Name: "HTML", Icon: "icon-html.svg", Questions: []catalog.Question{
			{Prompt: "h1", Options: []string{"a", "b", "c", "d"}, Answer: "a"},
			{Prompt: "h2", Options: []string{"a", "b", "c", "d"}, Answer: "b"},
			{Prompt: "h3", Options: []string{"a", "b", "c", "d"}, Answer: "c"},
		}},
		{Name: "CSS", Icon: "icon-css.svg", Questions: []catalog.Question{
			{Prompt: "c1", Options: []string{"w", "x", "y", "z"}, Answer: "x"}, // B
			{Prompt: "c2", Options: []string{"w", "x", "y", "z"}, Answer: "w"}, // A
		}},
	}}
}

func newTestSession() *Session {
	s := New(testCatalog())
	s.newID = func() string { return "test-session-id" }
	return s
}

func mustLetter(t *testing.T, l string) Choice {
	t.Helper()
	c, err := ChoiceFromLetter(l)
	require.NoError(t, err)
	return c
}

func TestNewStartsInMenu(t *testing.T) {
	st := New(testCatalog()).State()
	assert.Equal(t, PhaseMenu, st.Phase)
	assert.Nil(t, st.Subject)
	assert.Zero(t, st.Index)
	assert.Zero(t, st.Score)
}

func TestSelectSubjectEverySubject(t *testing.T) {
	c := testCatalog()
	for _, subj := range c.Subjects {
		t.Run(subj.Name, func(t *testing.T) {
			s := New(c)
			ev, err := s.SelectSubject(subj.Name)
			require.NoError(t, err)

			st := s.State()
			assert.Equal(t, PhaseInProgress, st.Phase)
			assert.Zero(t, st.Index)
			assert.Zero(t, st.Score)
			assert.Equal(t, subj.Name, st.Subject.Name)
			assert.NotEmpty(t, st.SessionID)

			assert.Equal(t, subj.Name, ev.Subject)
			assert.Zero(t, ev.Index)
			assert.Equal(t, len(subj.Questions), ev.Total)
			assert.Equal(t, subj.Questions[0], ev.Question)
		})
	}
}

func TestSelectSubjectIgnoresCase(t *testing.T) {
	a := New(testCatalog())
	b := New(testCatalog())

	_, err := a.SelectSubject("HTML")
	require.NoError(t, err)
	_, err = b.SelectSubject("html")
	require.NoError(t, err)

	assert.Equal(t, a.State().Subject.Name, b.State().Subject.Name)
}

func TestSelectSubjectNotFound(t *testing.T) {
	s := newTestSession()
	_, err := s.SelectSubject("Python")
	require.ErrorIs(t, err, ErrSubjectNotFound)
	assert.Equal(t, PhaseMenu, s.State().Phase)
}

func TestSelectSubjectNewSessionID(t *testing.T) {
	s := New(testCatalog())
	_, err := s.SelectSubject("html")
	require.NoError(t, err)
	first := s.State().SessionID

	_, err = s.SelectSubject("html")
	require.NoError(t, err)
	assert.NotEqual(t, first, s.State().SessionID)
}

func TestCSSScenario(t *testing.T) {
	s := newTestSession()
	_, err := s.SelectSubject("CSS")
	require.NoError(t, err)

	ev, err := s.SubmitAnswer(mustLetter(t, "B"))
	require.NoError(t, err)
	loaded, ok := ev.(QuestionLoaded)
	require.True(t, ok, "expected QuestionLoaded, got %T", ev)
	assert.Equal(t, 1, loaded.Index)
	assert.Equal(t, "c2", loaded.Question.Prompt)

	ev, err = s.SubmitAnswer(mustLetter(t, "C"))
	require.NoError(t, err)
	done, ok := ev.(QuizCompleted)
	require.True(t, ok, "expected QuizCompleted, got %T", ev)
	assert.Equal(t, QuizCompleted{SessionID: "test-session-id", Subject: "CSS", Score: 1, Total: 2}, done)

	st := s.State()
	assert.Equal(t, PhaseFinished, st.Phase)
	assert.Equal(t, 1, st.Score)
}

func TestScoreEqualsCorrectCount(t *testing.T) {
	// correct answers for HTML are A, B, C
	tests := []struct {
		name    string
		letters []string
		want    int
	}{
		{"all correct", []string{"A", "B", "C"}, 3},
		{"none correct", []string{"D", "D", "D"}, 0},
		{"first only", []string{"A", "A", "A"}, 1},
		{"last two", []string{"B", "B", "C"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession()
			_, err := s.SelectSubject("html")
			require.NoError(t, err)

			var ev Event
			for _, l := range tt.letters {
				ev, err = s.SubmitAnswer(mustLetter(t, l))
				require.NoError(t, err)
			}
			assert.IsType(t, QuizCompleted{}, ev)
			assert.Equal(t, tt.want, s.State().Score)
			assert.Equal(t, PhaseFinished, s.State().Phase)
		})
	}
}

func TestSubmitRejectedOutsideInProgress(t *testing.T) {
	s := newTestSession()

	before := s.State()
	_, err := s.SubmitAnswer(0)
	require.ErrorIs(t, err, ErrInvalidPhase)
	assert.Equal(t, before, s.State())

	_, err = s.SelectSubject("css")
	require.NoError(t, err)
	_, err = s.SubmitAnswer(0)
	require.NoError(t, err)
	_, err = s.SubmitAnswer(0)
	require.NoError(t, err)
	require.Equal(t, PhaseFinished, s.State().Phase)

	before = s.State()
	_, err = s.SubmitAnswer(0)
	require.ErrorIs(t, err, ErrInvalidPhase)
	assert.Equal(t, before, s.State())
}

func TestSubmitWithoutSelection(t *testing.T) {
	s := newTestSession()
	_, err := s.SelectSubject("html")
	require.NoError(t, err)

	before := s.State()
	_, err = s.SubmitAnswer(NoChoice)
	require.ErrorIs(t, err, ErrNoSelection)
	assert.Equal(t, before, s.State())
}

func TestSubmitOutOfRange(t *testing.T) {
	s := newTestSession()
	_, err := s.SelectSubject("html")
	require.NoError(t, err)

	before := s.State()
	for _, c := range []Choice{4, 99, -2} {
		_, err = s.SubmitAnswer(c)
		require.ErrorIs(t, err, ErrInvalidChoice)
	}
	assert.Equal(t, before, s.State())
}

func TestSubmitValue(t *testing.T) {
	s := newTestSession()
	_, err := s.SelectSubject("css")
	require.NoError(t, err)

	_, err = s.SubmitValue("nope")
	require.ErrorIs(t, err, ErrInvalidChoice)
	assert.Zero(t, s.State().Index)

	_, err = s.SubmitValue("x")
	require.NoError(t, err)
	assert.Equal(t, 1, s.State().Score)

	s.Reset()
	_, err = s.SubmitValue("x")
	require.ErrorIs(t, err, ErrInvalidPhase)
}

func TestCurrentQuestion(t *testing.T) {
	s := newTestSession()
	_, err := s.CurrentQuestion()
	require.ErrorIs(t, err, ErrNoActiveQuestion)

	_, err = s.SelectSubject("html")
	require.NoError(t, err)
	q, err := s.CurrentQuestion()
	require.NoError(t, err)
	assert.Equal(t, "h1", q.Prompt)

	_, err = s.SubmitAnswer(0)
	require.NoError(t, err)
	q, err = s.CurrentQuestion()
	require.NoError(t, err)
	assert.Equal(t, "h2", q.Prompt)
}

func TestIsCorrect(t *testing.T) {
	s := newTestSession()
	assert.False(t, s.IsCorrect(0))

	_, err := s.SelectSubject("css")
	require.NoError(t, err)
	assert.True(t, s.IsCorrect(1))
	assert.False(t, s.IsCorrect(0))
	assert.False(t, s.IsCorrect(NoChoice))
	assert.Zero(t, s.State().Score)
}

func TestResetFromEveryPhase(t *testing.T) {
	setups := map[string]func(*Session){
		"menu": func(*Session) {},
		"in progress": func(s *Session) {
			_, _ = s.SelectSubject("html")
			_, _ = s.SubmitAnswer(0)
		},
		"finished": func(s *Session) {
			_, _ = s.SelectSubject("css")
			_, _ = s.SubmitAnswer(0)
			_, _ = s.SubmitAnswer(0)
		},
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			s := newTestSession()
			setup(s)
			s.Reset()
			assert.Equal(t, State{}, s.State())

			s.Reset()
			assert.Equal(t, PhaseMenu, s.State().Phase)
			assert.Nil(t, s.State().Subject)
		})
	}
}

func TestChoiceFromLetter(t *testing.T) {
	for i, l := range Letters {
		c, err := ChoiceFromLetter(l)
		require.NoError(t, err)
		assert.Equal(t, Choice(i), c)
		assert.Equal(t, l, c.Letter())
	}

	c, err := ChoiceFromLetter(" b ")
	require.NoError(t, err)
	assert.Equal(t, Choice(1), c)

	_, err = ChoiceFromLetter("E")
	assert.ErrorIs(t, err, ErrInvalidChoice)
	assert.Empty(t, NoChoice.Letter())
}

func TestSessionPlaysEmbeddedCatalog(t *testing.T) {
	c, err := catalog.NewLoader().Load(context.Background(), "")
	require.NoError(t, err)

	s := New(c)
	_, err = s.SelectSubject("accessibility")
	require.NoError(t, err)

	for s.State().Phase == PhaseInProgress {
		q, err := s.CurrentQuestion()
		require.NoError(t, err)
		_, err = s.SubmitValue(q.Answer)
		require.NoError(t, err)
	}
	st := s.State()
	assert.Equal(t, st.Total(), st.Score)
}
