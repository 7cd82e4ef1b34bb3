package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizterm/internal/ui/theme"
)

// TileSize selects how large a subject tile is drawn.
type TileSize int

const (
	TileInline TileSize = iota // glyph on a single line
	TileBoxed                  // glyph inside a rounded box
)

// SubjectTile renders the glyph for a subject in its accent colour.
func SubjectTile(name string, size ...TileSize) string {
	s := TileInline
	if len(size) > 0 {
		s = size[0]
	}

	fg := theme.SubjectColor(name)
	glyph := lipgloss.NewStyle().
		Foreground(fg).
		Bold(true).
		Render(theme.SubjectGlyph(name))

	if s == TileInline {
		return glyph
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(fg).
		Width(7).
		Align(lipgloss.Center).
		Render(glyph)
}
