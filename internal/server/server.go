// Package server hosts a catalog document and its icon assets over HTTP,
// laid out like the static site the catalog was written for.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/abhisek/quizterm/internal/catalog"
)

// Options configures the router.
type Options struct {
	// Dir holds data.json and an assets/ directory. Empty serves the
	// embedded catalog and no assets.
	Dir string

	// BasePath is the mount prefix, e.g. "/Frontend-quiz-app/".
	BasePath string

	Logger *slog.Logger
}

// New builds the HTTP handler.
func New(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	base := "/" + strings.Trim(opts.BasePath, "/")

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(chimiddleware.Recoverer)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	h := &catalogHandler{dir: opts.Dir, logger: logger}

	mount := func(r chi.Router) {
		r.Get("/data.json", h.document)
		r.Get("/subjects", h.subjects)
		r.Handle("/assets/*", h.assets(base))
	}

	if base == "/" {
		mount(r)
	} else {
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			http.Redirect(w, req, base+"/data.json", http.StatusFound)
		})
		r.Route(base, mount)
	}

	return r
}

type catalogHandler struct {
	dir    string
	logger *slog.Logger
}

func (h *catalogHandler) raw() ([]byte, error) {
	if h.dir == "" {
		return catalog.DefaultDocument(), nil
	}
	return os.ReadFile(filepath.Join(h.dir, "data.json"))
}

func (h *catalogHandler) document(w http.ResponseWriter, r *http.Request) {
	data, err := h.raw()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("read catalog", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "read catalog"})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(data)
}

type subjectInfo struct {
	Title     string `json:"title"`
	Icon      string `json:"icon"`
	Questions int    `json:"questions"`
}

func (h *catalogHandler) subjects(w http.ResponseWriter, r *http.Request) {
	data, err := h.raw()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("read catalog", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "read catalog"})
		return
	}

	c, err := catalog.Parse(data)
	if err != nil {
		h.logger.Warn("served catalog is invalid", "error", err)
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}

	out := make([]subjectInfo, 0, len(c.Subjects))
	for _, s := range c.Subjects {
		out = append(out, subjectInfo{Title: s.Name, Icon: s.Icon, Questions: len(s.Questions)})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *catalogHandler) assets(base string) http.Handler {
	if h.dir == "" {
		return http.NotFoundHandler()
	}
	prefix := strings.TrimSuffix(base, "/")
	return http.StripPrefix(prefix, http.FileServer(http.Dir(h.dir)))
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// requestLogger logs one line per request through slog.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.Info("request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"remote", r.RemoteAddr,
					"duration", time.Since(start),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

// Serve runs an HTTP server on addr until ctx is cancelled, then shuts it
// down gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving catalog", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
