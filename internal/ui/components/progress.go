package components

import (
	"fmt"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizterm/internal/ui/theme"
)

// ProgressBar is the thin track under the question counter.
type ProgressBar struct {
	Label       string
	Percent     float64 // fraction in [0, 1]; clamped when drawn
	ShowPercent bool
	Width       int
}

func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

func (p ProgressBar) View() string {
	pct := min(max(p.Percent, 0), 1)

	var prefix, suffix string
	if p.Label != "" {
		prefix = lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}
	if p.ShowPercent {
		suffix = lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %3d%%", int(math.Round(pct*100))))
	}

	track := max(p.Width-lipgloss.Width(prefix)-lipgloss.Width(suffix), 4)
	filled := int(math.Round(float64(track) * pct))

	bar := lipgloss.NewStyle().Foreground(theme.Primary).Render(strings.Repeat("━", filled)) +
		lipgloss.NewStyle().Foreground(theme.BgCard).Render(strings.Repeat("━", track-filled))
	return prefix + bar + suffix
}
