package session

// Progress returns the fraction of questions answered: Index/Total while in
// progress, so the bar reaches (n-1)/n just before the final submission and
// never shows full while a question is still open. It is 0 in PhaseMenu
// and 1 in PhaseFinished.
func (s State) Progress() float64 {
	switch s.Phase {
	case PhaseInProgress:
		total := s.Total()
		if total == 0 {
			return 0
		}
		return float64(s.Index) / float64(total)
	case PhaseFinished:
		return 1
	default:
		return 0
	}
}

// Position returns the 1-based number of the question on screen.
func (s State) Position() int {
	if s.Phase != PhaseInProgress {
		return 0
	}
	return s.Index + 1
}
