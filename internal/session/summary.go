package session

// Summary holds the data displayed on the results screen.
type Summary struct {
	SessionID string
	Subject   string
	Icon      string
	Score     int
	Total     int
	Accuracy  float64
}

// BuildSummary creates a Summary from a finished state. It returns false
// outside PhaseFinished.
func BuildSummary(st State) (Summary, bool) {
	if st.Phase != PhaseFinished || st.Subject == nil {
		return Summary{}, false
	}

	total := st.Total()
	var accuracy float64
	if total > 0 {
		accuracy = float64(st.Score) / float64(total)
	}

	return Summary{
		SessionID: st.SessionID,
		Subject:   st.Subject.Name,
		Icon:      st.Subject.Icon,
		Score:     st.Score,
		Total:     total,
		Accuracy:  accuracy,
	}, true
}
