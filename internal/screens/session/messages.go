package session

// resultSavedMsg reports that a completed quiz was written to the result
// log, along with the best score now on record for its subject.
type resultSavedMsg struct {
	SessionID string
	Best      int
	BestTotal int
	BestIsNew bool
	HasBest   bool
	Err       error
}

// noticeMsg shows a one-line message above the menu.
type noticeMsg struct {
	Text string
}
