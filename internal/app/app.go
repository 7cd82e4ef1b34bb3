package app

import (
	"context"
	"fmt"
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizterm/internal/catalog"
	"github.com/abhisek/quizterm/internal/preference"
	"github.com/abhisek/quizterm/internal/router"
	"github.com/abhisek/quizterm/internal/screen"
	sessionscreen "github.com/abhisek/quizterm/internal/screens/session"
	"github.com/abhisek/quizterm/internal/screens/welcome"
	"github.com/abhisek/quizterm/internal/session"
	"github.com/abhisek/quizterm/internal/store"
	"github.com/abhisek/quizterm/internal/ui/keys"
	"github.com/abhisek/quizterm/internal/ui/layout"
	"github.com/abhisek/quizterm/internal/ui/theme"
)

// Options holds the dependencies for the TUI.
type Options struct {
	// Loader fetches the catalog from Source ("" for the embedded one).
	Loader *catalog.Loader
	Source string

	// Results is optional; without it quizzes are not recorded.
	Results store.ResultRepo

	// Theme is optional; without it the dark palette is used and the
	// toggle is not persisted.
	Theme *preference.Controller

	// Subject, when set, starts that quiz straight away.
	Subject string

	Logger *slog.Logger
}

// ApplyTheme is the presentation hook for preference.Controller.
func ApplyTheme(p preference.Preference) {
	theme.Use(theme.ByName(p.String()))
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	theme  *preference.Controller
	logger *slog.Logger
	width  int
	height int
	err    error
}

// newAppModel creates a new AppModel with the loading screen.
func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	loader := opts.Loader
	if loader == nil {
		loader = catalog.NewLoader(catalog.WithLogger(logger))
	}
	themeCtl := opts.Theme
	if themeCtl == nil {
		themeCtl = preference.NewController(nil, nil, ApplyTheme, preference.WithLogger(logger))
	}

	load := func(ctx context.Context) (*catalog.Catalog, error) {
		return loader.Load(ctx, opts.Source)
	}
	next := func(c *catalog.Catalog) screen.Screen {
		screenOpts := []sessionscreen.Option{sessionscreen.WithLogger(logger)}
		if opts.Results != nil {
			screenOpts = append(screenOpts, sessionscreen.WithResults(opts.Results))
		}
		if opts.Subject != "" {
			screenOpts = append(screenOpts, sessionscreen.WithSubject(opts.Subject))
		}
		return sessionscreen.New(session.New(c), screenOpts...)
	}

	return AppModel{
		router: router.New(welcome.New(load, next)),
		theme:  themeCtl,
		logger: logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.FatalErrMsg:
		m.logger.Error("fatal", "error", msg.Err)
		m.err = msg.Err
		return m, tea.Quit

	case tea.KeyPressMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, keys.Theme) && !m.capturing() {
			p, err := m.theme.Flip(context.Background())
			if err != nil {
				m.logger.Warn("toggle theme", "error", err)
			}
			m.logger.Debug("theme toggled", "theme", p)
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// capturing reports whether the active screen wants every key press.
func (m AppModel) capturing() bool {
	if c, ok := m.router.Active().(screen.InputCapturer); ok {
		return c.CapturingInput()
	}
	return false
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.WindowTitle = "Frontend Quiz"
	v.BackgroundColor = theme.Bg
	return v
}

// render draws the header, active screen and footer for the current size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	var badge *layout.Badge
	if active != nil {
		title = active.Title()
		if bp, ok := active.(screen.BadgeProvider); ok {
			badge = bp.Badge()
		}
	}

	header := layout.RenderHeader(title, badge, m.theme.Current().Checked(), m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else {
		footerHints = keys.Hints(keys.Back, keys.Theme, keys.Quit)
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program. It returns the error that ended the
// program, such as a *catalog.LoadError.
func Run(ctx context.Context, opts Options) error {
	if opts.Theme != nil {
		p := opts.Theme.Initial(ctx)
		if opts.Logger != nil {
			opts.Logger.Info("theme", "preference", p)
		}
	}

	p := tea.NewProgram(newAppModel(opts), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	if fm, ok := final.(AppModel); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
