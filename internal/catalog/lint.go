package catalog

import "fmt"

// Warning flags a question that loads but cannot be scored as intended.
type Warning struct {
	Subject  string
	Question int
	Message  string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s #%d: %s", w.Subject, w.Question+1, w.Message)
}

// Lint reports questions whose answer matches no option or more than one.
// Such catalogs are still playable; matching is by exact string equality.
func (c *Catalog) Lint() []Warning {
	if c == nil {
		return nil
	}
	var out []Warning
	for _, s := range c.Subjects {
		for i, q := range s.Questions {
			switch n := q.matches(); {
			case n == 0:
				out = append(out, Warning{Subject: s.Name, Question: i, Message: "answer matches no option"})
			case n > 1:
				out = append(out, Warning{Subject: s.Name, Question: i, Message: fmt.Sprintf("answer matches %d options", n)})
			}
		}
	}
	return out
}

func (q Question) matches() int {
	n := 0
	for _, o := range q.Options {
		if o == q.Answer {
			n++
		}
	}
	return n
}
