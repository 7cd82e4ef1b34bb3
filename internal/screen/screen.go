package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizterm/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// BadgeProvider is implemented by screens that show a subject badge in the
// header. A nil badge shows the app name instead.
type BadgeProvider interface {
	Badge() *layout.Badge
}

// InputCapturer is implemented by screens that sometimes consume every key
// press, e.g. while a text field has focus. Global shortcuts are suppressed
// while CapturingInput is true.
type InputCapturer interface {
	CapturingInput() bool
}

// FatalErrMsg stops the program. The app returns Err from Run.
type FatalErrMsg struct {
	Err error
}
