package catalog

import "strings"

// OptionCount is the number of options every question presents.
const OptionCount = 4

// Question is a single multiple-choice prompt.
type Question struct {
	Prompt  string   `json:"question"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
}

// Subject is a named group of questions, e.g. "HTML" or "CSS".
type Subject struct {
	Name      string     `json:"title"`
	Icon      string     `json:"icon"`
	Questions []Question `json:"questions"`
}

// Catalog is the ordered, read-only list of subjects loaded at startup.
type Catalog struct {
	Subjects []Subject
}

// document mirrors the on-disk JSON shape.
type document struct {
	Quizzes []Subject `json:"quizzes"`
}

// Subject returns the subject whose name matches name case-insensitively.
func (c *Catalog) Subject(name string) (*Subject, bool) {
	if c == nil {
		return nil, false
	}
	for i := range c.Subjects {
		if strings.EqualFold(c.Subjects[i].Name, name) {
			return &c.Subjects[i], true
		}
	}
	return nil, false
}

// Names returns the subject names in catalog order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.Subjects))
	for _, s := range c.Subjects {
		names = append(names, s.Name)
	}
	return names
}

// QuestionCount returns the total number of questions across all subjects.
func (c *Catalog) QuestionCount() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, s := range c.Subjects {
		n += len(s.Questions)
	}
	return n
}
