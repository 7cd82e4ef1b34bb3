package theme

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
)

// Palette is a full set of UI colours.
type Palette struct {
	Name      string
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
}

// Dark is the navy scheme.
var Dark = Palette{
	Name:      "dark",
	Primary:   lipgloss.Color("#A729F5"), // Purple
	Secondary: lipgloss.Color("#A729F5"),
	Accent:    lipgloss.Color("#FF7E35"), // Orange
	Success:   lipgloss.Color("#26D782"), // Green
	Error:     lipgloss.Color("#EE5454"), // Red
	Text:      lipgloss.Color("#FFFFFF"),
	TextDim:   lipgloss.Color("#ABC1E1"), // Light bluish
	Bg:        lipgloss.Color("#313E51"), // Dark navy
	BgCard:    lipgloss.Color("#3B4D66"), // Navy
	Border:    lipgloss.Color("#626C7F"), // Grey navy
}

// Light is the pale grey scheme.
var Light = Palette{
	Name:      "light",
	Primary:   lipgloss.Color("#A729F5"),
	Secondary: lipgloss.Color("#A729F5"),
	Accent:    lipgloss.Color("#FF7E35"),
	Success:   lipgloss.Color("#26D782"),
	Error:     lipgloss.Color("#EE5454"),
	Text:      lipgloss.Color("#313E51"),
	TextDim:   lipgloss.Color("#626C7F"),
	Bg:        lipgloss.Color("#F4F6FA"), // Light grey
	BgCard:    lipgloss.Color("#FFFFFF"),
	Border:    lipgloss.Color("#ABC1E1"),
}

// Active colours. Use replaces them.
var (
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
)

// Typography
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
)

// Layout
var (
	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style
)

// States
var (
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
)

// Components
var (
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style
	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style
)

var current Palette

func init() {
	Use(Dark)
}

// Current returns the palette most recently passed to Use.
func Current() Palette {
	return current
}

// Use makes p the active palette and rebuilds every style from it.
// Call it from the Bubble Tea update loop only.
func Use(p Palette) {
	current = p

	Primary = p.Primary
	Secondary = p.Secondary
	Accent = p.Accent
	Success = p.Success
	Error = p.Error
	Text = p.Text
	TextDim = p.TextDim
	Bg = p.Bg
	BgCard = p.BgCard
	Border = p.Border

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	ProgressFilled = lipgloss.NewStyle().
		Background(Primary)

	ProgressEmpty = lipgloss.NewStyle().
		Background(Border)

	ButtonActive = lipgloss.NewStyle().
		Background(Primary).
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(true).
		Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
		Foreground(TextDim).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
}

// ByName returns the palette called "light" or "dark" (default).
func ByName(name string) Palette {
	if strings.EqualFold(name, Light.Name) {
		return Light
	}
	return Dark
}

// Subject accent colours keyed by lower-cased subject name.
var subjectColors = map[string]color.Color{
	"html":          lipgloss.Color("#FF7E35"), // Orange
	"css":           lipgloss.Color("#2FD887"), // Green
	"javascript":    lipgloss.Color("#306AFF"), // Blue
	"accessibility": lipgloss.Color("#A729F5"), // Purple
}

// SubjectColor returns the accent colour for a subject, falling back to Primary.
func SubjectColor(name string) color.Color {
	if c, ok := subjectColors[strings.ToLower(name)]; ok {
		return c
	}
	return Primary
}

// Short glyphs standing in for the subject icons, keyed like subjectColors.
var subjectGlyphs = map[string]string{
	"html":          "</>",
	"css":           "{ }",
	"javascript":    "JS",
	"accessibility": "(i)",
}

// SubjectGlyph returns the icon glyph for a subject. Unknown subjects get
// their upper-cased first letter.
func SubjectGlyph(name string) string {
	if g, ok := subjectGlyphs[strings.ToLower(name)]; ok {
		return g
	}
	for _, r := range strings.ToUpper(strings.TrimSpace(name)) {
		return string(r)
	}
	return "?"
}
