package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() *Catalog {
	return &Catalog{Subjects: []Subject{
		{Name: "HTML", Questions: []Question{
			{Prompt: "q1", Options: []string{"a", "b", "c", "d"}, Answer: "a"},
		}},
		{Name: "JavaScript", Questions: []Question{
			{Prompt: "q1", Options: []string{"a", "b", "c", "d"}, Answer: "e"},
			{Prompt: "q2", Options: []string{"a", "a", "c", "d"}, Answer: "a"},
			{Prompt: "q3", Options: []string{"a", "b", "c", "d"}, Answer: "d"},
		}},
	}}
}

func TestSubjectLookupIgnoresCase(t *testing.T) {
	c := sampleCatalog()
	for _, name := range []string{"javascript", "JAVASCRIPT", "JavaScript"} {
		s, ok := c.Subject(name)
		require.True(t, ok, name)
		assert.Equal(t, "JavaScript", s.Name)
	}

	_, ok := c.Subject("python")
	assert.False(t, ok)
}

func TestSubjectReturnsCatalogEntry(t *testing.T) {
	c := sampleCatalog()
	s, ok := c.Subject("html")
	require.True(t, ok)
	assert.Same(t, &c.Subjects[0], s)
}

func TestNilCatalog(t *testing.T) {
	var c *Catalog
	_, ok := c.Subject("html")
	assert.False(t, ok)
	assert.Nil(t, c.Names())
	assert.Zero(t, c.QuestionCount())
	assert.Nil(t, c.Lint())
}

func TestQuestionCount(t *testing.T) {
	assert.Equal(t, 4, sampleCatalog().QuestionCount())
}

func TestLint(t *testing.T) {
	warnings := sampleCatalog().Lint()
	require.Len(t, warnings, 2)

	assert.Equal(t, Warning{Subject: "JavaScript", Question: 0, Message: "answer matches no option"}, warnings[0])
	assert.Equal(t, "JavaScript", warnings[1].Subject)
	assert.Equal(t, 1, warnings[1].Question)
	assert.Equal(t, "JavaScript #2: answer matches 2 options", warnings[1].String())
}
