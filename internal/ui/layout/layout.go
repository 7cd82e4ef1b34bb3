// Package layout draws the frame around every screen: a header with the
// subject badge and theme switch, the screen body and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizterm/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	// barHeight is the height of the bordered header and footer bars.
	barHeight = 3

	// compactBody is the body height below which screens drop decoration.
	compactBody = 24
)

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below MinWidth x MinHeight.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// BodyHeight returns the rows left for a screen in a terminal of the given
// height.
func BodyHeight(totalHeight int) int {
	return max(totalHeight-2*barHeight, 0)
}

// IsCompactBody reports whether a screen body of this height should use the
// compact rendering.
func IsCompactBody(bodyHeight int) bool {
	return bodyHeight < compactBody
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// Badge is the active subject shown at the left of the header.
type Badge struct {
	Name string
	Icon string
}

// RenderHeader renders the header bar: the subject badge (or the app name
// when no quiz is active) on the left, the title centred and the theme
// switch on the right.
func RenderHeader(title string, badge *Badge, light bool, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Frontend Quiz")
	if badge != nil && badge.Name != "" {
		left = RenderBadge(badge.Name)
	}
	right := RenderThemeToggle(light)

	inner := max(width-4, 0)
	side := max((inner-lipgloss.Width(title))/2, lipgloss.Width(left), lipgloss.Width(right))
	center := max(inner-2*side, 0)

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.PlaceHorizontal(side, lipgloss.Left, left),
		lipgloss.PlaceHorizontal(center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(title)),
		lipgloss.PlaceHorizontal(side, lipgloss.Right, right),
	)
	return bar(width).Padding(0, 1).Render(row)
}

// RenderBadge renders a subject's glyph tile followed by its name.
func RenderBadge(name string) string {
	tile := lipgloss.NewStyle().
		Foreground(theme.SubjectColor(name)).
		Background(theme.Bg).
		Bold(true).
		Padding(0, 1).
		Render(theme.SubjectGlyph(name))
	label := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(name)
	return tile + " " + label
}

// RenderThemeToggle renders the sun/moon switch. The knob sits on the sun
// side when light is on.
func RenderThemeToggle(light bool) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	on := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	sun, moon := dim.Render("☀"), dim.Render("☾")
	track := on.Render("●") + dim.Render("━")
	if light {
		sun = on.Render("☀")
	} else {
		moon = on.Render("☾")
		track = dim.Render("━") + on.Render("●")
	}
	return sun + " " + track + " " + moon
}

// RenderFooter renders the key hints, separated by dots.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	sep := descStyle.Render("  ·  ")

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Description))
	}
	return bar(width).Padding(0, 2).Render(strings.Join(parts, sep))
}

// bar is the bordered card style shared by the header and footer.
func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// RenderFrame stacks header, body and footer, stretching the body so the
// frame fills height.
func RenderFrame(header, body, footer string, width, height int) string {
	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.NewStyle().Width(width).Height(bodyHeight).Render(body),
		footer,
	)
}
