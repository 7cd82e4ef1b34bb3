// Package view projects session state onto the three quiz views. It holds no
// state of its own and never writes back into the session.
package view

import (
	"fmt"

	"github.com/abhisek/quizterm/internal/catalog"
	"github.com/abhisek/quizterm/internal/session"
)

// Kind identifies which view is visible. Exactly one is visible at a time.
type Kind int

const (
	KindMenu Kind = iota
	KindQuestion
	KindResults
)

func (k Kind) String() string {
	switch k {
	case KindMenu:
		return "menu"
	case KindQuestion:
		return "question"
	case KindResults:
		return "results"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// SubjectBadge is the subject name and icon shown in the header.
type SubjectBadge struct {
	Name string
	Icon string
}

// MenuItem is one selectable subject on the menu.
type MenuItem struct {
	Name string
	Icon string
}

// Option is one labelled answer on the question view.
type Option struct {
	Letter string
	Text   string
}

// Frame carries every field the visible view needs.
type Frame struct {
	Kind Kind

	// Badge is set on the question and results views.
	Badge *SubjectBadge

	// Menu view.
	Subjects []MenuItem

	// Question view.
	Prompt   string
	Options  []Option
	Position int // 1-based
	Total    int
	Progress float64

	// Results view.
	Score int
}

// Counter returns the "Question i of n" label.
func (f Frame) Counter() string {
	if f.Kind != KindQuestion {
		return ""
	}
	return fmt.Sprintf("Question %d of %d", f.Position, f.Total)
}

// ScoreLine returns the "out of n" label shown under the score.
func (f Frame) ScoreLine() string {
	if f.Kind != KindResults {
		return ""
	}
	return fmt.Sprintf("out of %d", f.Total)
}

// Project computes the frame for st.
func Project(c *catalog.Catalog, st session.State) Frame {
	switch st.Phase {
	case session.PhaseInProgress:
		return projectQuestion(st)
	case session.PhaseFinished:
		return Frame{
			Kind:     KindResults,
			Badge:    badge(st.Subject),
			Total:    st.Total(),
			Score:    st.Score,
			Progress: st.Progress(),
		}
	default:
		return projectMenu(c)
	}
}

func projectMenu(c *catalog.Catalog) Frame {
	f := Frame{Kind: KindMenu}
	if c == nil {
		return f
	}
	f.Subjects = make([]MenuItem, 0, len(c.Subjects))
	for _, s := range c.Subjects {
		f.Subjects = append(f.Subjects, MenuItem{Name: s.Name, Icon: s.Icon})
	}
	return f
}

func projectQuestion(st session.State) Frame {
	q := st.Subject.Questions[st.Index]
	opts := make([]Option, 0, len(q.Options))
	for i, text := range q.Options {
		opts = append(opts, Option{Letter: session.Choice(i).Letter(), Text: text})
	}
	return Frame{
		Kind:     KindQuestion,
		Badge:    badge(st.Subject),
		Prompt:   q.Prompt,
		Options:  opts,
		Position: st.Position(),
		Total:    st.Total(),
		Progress: st.Progress(),
	}
}

func badge(s *catalog.Subject) *SubjectBadge {
	if s == nil {
		return nil
	}
	return &SubjectBadge{Name: s.Name, Icon: s.Icon}
}
