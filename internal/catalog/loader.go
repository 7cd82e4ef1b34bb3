package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

// EmbeddedSource names the catalog compiled into the binary.
const EmbeddedSource = "embedded"

//go:embed data.json
var defaultDocument []byte

// DefaultDocument returns a copy of the embedded catalog document.
func DefaultDocument() []byte {
	out := make([]byte, len(defaultDocument))
	copy(out, defaultDocument)
	return out
}

// Loader fetches and parses catalog documents.
type Loader struct {
	client *http.Client
	logger *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithHTTPClient sets the client used for http(s) sources.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) { l.client = c }
}

// WithTimeout sets the HTTP timeout for remote sources.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) { l.client = &http.Client{Timeout: d} }
}

// WithLogger sets the logger used for lint warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

// NewLoader creates a Loader. Remote fetches time out after 10s by default.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		client: &http.Client{Timeout: 10 * time.Second},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the catalog from source: empty or "embedded" selects the built-in
// document, an http(s) URL is fetched, anything else is a file path.
// Every failure is returned as a *LoadError. There is no retry.
func (l *Loader) Load(ctx context.Context, source string) (*Catalog, error) {
	name := source
	if name == "" {
		name = EmbeddedSource
	}

	raw, err := l.fetch(ctx, source)
	if err != nil {
		return nil, &LoadError{Source: name, Err: err}
	}

	c, err := Parse(raw)
	if err != nil {
		return nil, &LoadError{Source: name, Err: err}
	}

	for _, w := range c.Lint() {
		l.logger.Warn("catalog lint", "source", name, "subject", w.Subject, "question", w.Question, "problem", w.Message)
	}
	l.logger.Info("catalog loaded", "source", name, "subjects", len(c.Subjects), "questions", c.QuestionCount())
	return c, nil
}

func (l *Loader) fetch(ctx context.Context, source string) ([]byte, error) {
	switch {
	case source == "" || source == EmbeddedSource:
		return DefaultDocument(), nil
	case strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://"):
		return l.download(ctx, source)
	default:
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		return data, nil
	}
}

func (l *Loader) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return data, nil
}

// Parse validates raw against the catalog schema and decodes it.
func Parse(raw []byte) (*Catalog, error) {
	if err := validateShape(raw); err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := checkUniqueNames(doc.Quizzes); err != nil {
		return nil, err
	}
	return &Catalog{Subjects: doc.Quizzes}, nil
}
