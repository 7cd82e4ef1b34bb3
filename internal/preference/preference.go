// Package preference persists the light/dark theme choice.
package preference

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
)

// Preference is the user's colour scheme.
type Preference string

const (
	Light Preference = "light"
	Dark  Preference = "dark"
)

// Key is the storage key the preference is persisted under.
const Key = "quizTheme"

// Parse interprets a stored value. Only "light" selects Light; any other
// stored value selects Dark.
func Parse(s string) Preference {
	if s == string(Light) {
		return Light
	}
	return Dark
}

// ParseStrict accepts "light" or "dark" in any case and rejects everything else.
func ParseStrict(s string) (Preference, error) {
	switch Preference(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", fmt.Errorf("unknown theme %q (want light or dark)", s)
	}
}

// FromToggle maps the toggle state to a preference: checked means Light.
func FromToggle(checked bool) Preference {
	if checked {
		return Light
	}
	return Dark
}

// Checked reports the toggle state that displays p.
func (p Preference) Checked() bool {
	return p == Light
}

// Opposite returns the other preference.
func (p Preference) Opposite() Preference {
	if p == Light {
		return Dark
	}
	return Light
}

func (p Preference) String() string {
	return string(p)
}

// Repo is the persisted key/value store the controller reads and writes.
type Repo interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Controller owns the current theme preference.
type Controller struct {
	repo       Repo
	darkSignal func() bool
	apply      func(Preference)
	logger     *slog.Logger

	mu      sync.Mutex
	current Preference
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for persistence failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// NewController creates a Controller. darkSignal is consulted only when no
// preference has been stored; apply is called whenever the preference
// changes and may be nil.
func NewController(repo Repo, darkSignal func() bool, apply func(Preference), opts ...Option) *Controller {
	if darkSignal == nil {
		darkSignal = func() bool { return true }
	}
	if apply == nil {
		apply = func(Preference) {}
	}
	c := &Controller{
		repo:       repo,
		darkSignal: darkSignal,
		apply:      apply,
		logger:     slog.New(slog.DiscardHandler),
		current:    Dark,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Initial resolves the startup preference (stored value, else the
// environment signal), applies it and returns it. A failing read is
// logged and treated as "not stored".
func (c *Controller) Initial(ctx context.Context) Preference {
	p := c.resolve(ctx)

	c.mu.Lock()
	c.current = p
	c.mu.Unlock()

	c.apply(p)
	return p
}

func (c *Controller) resolve(ctx context.Context) Preference {
	if c.repo != nil {
		v, ok, err := c.repo.Get(ctx, Key)
		switch {
		case err != nil:
			c.logger.Warn("read theme preference", "error", err)
		case ok:
			return Parse(v)
		}
	}
	if c.darkSignal() {
		return Dark
	}
	return Light
}

// Set applies p and persists it. The new preference stays applied even if
// persisting fails.
func (c *Controller) Set(ctx context.Context, p Preference) error {
	c.mu.Lock()
	c.current = p
	c.mu.Unlock()

	c.apply(p)

	if c.repo == nil {
		return nil
	}
	if err := c.repo.Set(ctx, Key, string(p)); err != nil {
		c.logger.Warn("persist theme preference", "theme", p, "error", err)
		return fmt.Errorf("persist theme: %w", err)
	}
	return nil
}

// Toggle sets the preference from the toggle state.
func (c *Controller) Toggle(ctx context.Context, checked bool) (Preference, error) {
	p := FromToggle(checked)
	return p, c.Set(ctx, p)
}

// Flip switches to the opposite preference.
func (c *Controller) Flip(ctx context.Context) (Preference, error) {
	return c.Toggle(ctx, !c.Current().Checked())
}

// Current returns the active preference.
func (c *Controller) Current() Preference {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// TerminalSignal returns the environment signal for NewController. An
// override of "light" or "dark" wins over the terminal query; anything else
// is ignored.
func TerminalSignal(override string) func() bool {
	return func() bool {
		if p, err := ParseStrict(override); err == nil {
			return p == Dark
		}
		return lipgloss.HasDarkBackground(os.Stdin, os.Stdout)
	}
}
