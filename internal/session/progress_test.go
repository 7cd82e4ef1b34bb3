package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressCountsCompletedQuestions(t *testing.T) {
	s := newTestSession()
	assert.Zero(t, s.State().Progress())
	assert.Zero(t, s.State().Position())

	_, err := s.SelectSubject("html")
	require.NoError(t, err)

	n := s.State().Total()
	for i := 0; i < n; i++ {
		st := s.State()
		assert.InDelta(t, float64(i)/float64(n), st.Progress(), 1e-9, "after %d answers", i)
		assert.Equal(t, i+1, st.Position())
		assert.Less(t, st.Progress(), 1.0)

		_, err := s.SubmitAnswer(0)
		require.NoError(t, err)
	}

	assert.Equal(t, 1.0, s.State().Progress())
	assert.Zero(t, s.State().Position())
}

func TestBuildSummary(t *testing.T) {
	s := newTestSession()
	_, ok := BuildSummary(s.State())
	assert.False(t, ok)

	_, err := s.SelectSubject("css")
	require.NoError(t, err)
	_, err = s.SubmitAnswer(1)
	require.NoError(t, err)

	_, ok = BuildSummary(s.State())
	assert.False(t, ok)

	_, err = s.SubmitAnswer(2)
	require.NoError(t, err)

	sum, ok := BuildSummary(s.State())
	require.True(t, ok)
	assert.Equal(t, "CSS", sum.Subject)
	assert.Equal(t, "icon-css.svg", sum.Icon)
	assert.Equal(t, 1, sum.Score)
	assert.Equal(t, 2, sum.Total)
	assert.InDelta(t, 0.5, sum.Accuracy, 1e-9)
	assert.Equal(t, "test-session-id", sum.SessionID)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "menu", PhaseMenu.String())
	assert.Equal(t, "in-progress", PhaseInProgress.String())
	assert.Equal(t, "finished", PhaseFinished.String())
	assert.Equal(t, "phase(9)", Phase(9).String())
}
