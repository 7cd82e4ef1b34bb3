package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizterm/internal/catalog"
	"github.com/abhisek/quizterm/internal/session"
)

const testDoc = `{"quizzes":[{"title":"CSS","icon":"./assets/images/icon-css.svg","questions":[
 {"question":"What does CSS stand for?","options":["Colorful Style Sheets","Cascading Style Sheets","Computer Style Sheets","Creative Style Sheets"],"answer":"Cascading Style Sheets"},
 {"question":"Which property changes text colour?","options":["color","font-color","text-color","fgcolor"],"answer":"color"}
]}]}`

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Parse([]byte(testDoc))
	require.NoError(t, err)
	return c
}

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestRunPreviewScoresAnswers(t *testing.T) {
	var out bytes.Buffer
	err := runPreview(testCatalog(t), "css", strings.NewReader("b\nC\n"), &out)
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "Question 1 of 2")
	assert.Contains(t, got, "B) Cascading Style Sheets")
	assert.Contains(t, got, "✓ Correct!")
	assert.Contains(t, got, "✗ Wrong. Answer: color")
	assert.Contains(t, got, "Score: 1/2")
}

func TestRunPreviewRepromptsOnBadInput(t *testing.T) {
	var out bytes.Buffer
	err := runPreview(testCatalog(t), "CSS", strings.NewReader("e\nb\na\n"), &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Please answer A, B, C or D.")
	assert.Contains(t, out.String(), "Score: 2/2")
}

func TestRunPreviewStopsOnEOF(t *testing.T) {
	var out bytes.Buffer
	err := runPreview(testCatalog(t), "CSS", strings.NewReader("b\n"), &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "(stopped)")
	assert.Contains(t, out.String(), "Score: 1/2")
}

func TestRunPreviewUnknownSubject(t *testing.T) {
	var out bytes.Buffer
	err := runPreview(testCatalog(t), "Go", strings.NewReader(""), &out)
	require.ErrorIs(t, err, session.ErrSubjectNotFound)
	assert.Contains(t, err.Error(), "CSS")
}

func TestPreviewCommandReadsCommandInput(t *testing.T) {
	out, err := execute(t, "x\nq\n", "preview", "html", "--catalog", "")
	require.NoError(t, err)
	assert.Contains(t, out, "Question 1 of")
	assert.Contains(t, out, "Please answer A, B, C or D.")
	assert.Contains(t, out, "(stopped)")
}
