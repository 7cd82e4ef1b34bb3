package session

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizterm/internal/catalog"
)

// Phase represents where the player is in a quiz.
type Phase int

const (
	PhaseMenu       Phase = iota // Choosing a subject
	PhaseInProgress              // Answering questions
	PhaseFinished                // Showing the final score
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseInProgress:
		return "in-progress"
	case PhaseFinished:
		return "finished"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Letters maps option positions to the labels shown beside them. Grading and
// rendering both index into this table.
var Letters = [catalog.OptionCount]string{"A", "B", "C", "D"}

// Choice is a zero-based option position.
type Choice int

// NoChoice means the player has not picked an option yet.
const NoChoice Choice = -1

// ChoiceFromLetter parses "A".."D" (any case) into a Choice.
func ChoiceFromLetter(letter string) (Choice, error) {
	l := strings.ToUpper(strings.TrimSpace(letter))
	for i, s := range Letters {
		if s == l {
			return Choice(i), nil
		}
	}
	return NoChoice, fmt.Errorf("%w: %q", ErrInvalidChoice, letter)
}

// Letter returns the label for c, or "" if c is out of range.
func (c Choice) Letter() string {
	if c < 0 || int(c) >= len(Letters) {
		return ""
	}
	return Letters[c]
}

// Valid reports whether c refers to one of the presented options.
func (c Choice) Valid() bool {
	return c >= 0 && int(c) < catalog.OptionCount
}

// State is a read-only snapshot of a session.
type State struct {
	// SessionID identifies the current attempt. Empty in PhaseMenu.
	SessionID string

	// Subject is the selected subject, nil in PhaseMenu.
	Subject *catalog.Subject

	// Index is the number of questions answered so far.
	Index int

	// Score is the number of correct answers so far.
	Score int

	Phase Phase
}

// Total returns the number of questions in the selected subject.
func (s State) Total() int {
	if s.Subject == nil {
		return 0
	}
	return len(s.Subject.Questions)
}
