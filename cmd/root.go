package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizterm/internal/catalog"
	"github.com/abhisek/quizterm/internal/config"
	"github.com/abhisek/quizterm/internal/logging"
	"github.com/abhisek/quizterm/internal/store"
)

// cfg is loaded once before any command runs.
var cfg = &config.Config{}

var rootCmd = &cobra.Command{
	Use:   "quizterm",
	Short: "Frontend quiz in the terminal",
	Long:  "quizterm runs multiple-choice quizzes on HTML, CSS, JavaScript and Accessibility in your terminal.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
	SilenceUsage: true,
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZTERM_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Catalog file path or http(s) URL (overrides QUIZTERM_CATALOG env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(subjectsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then QUIZTERM_DB (env or .env), then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// catalogSource returns --catalog, then QUIZTERM_CATALOG, then "" for the
// embedded catalog.
func catalogSource(cmd *cobra.Command) string {
	if s, _ := cmd.Flags().GetString("catalog"); s != "" {
		return s
	}
	return cfg.Catalog
}

// openStore opens the database chosen by resolveDBPath.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// stderrLogger is the logger for non-interactive commands.
func stderrLogger() *slog.Logger {
	return logging.New(os.Stderr, cfg.LogLevel)
}

// loadCatalog loads the catalog chosen by catalogSource.
func loadCatalog(cmd *cobra.Command, logger *slog.Logger) (*catalog.Catalog, error) {
	loader := catalog.NewLoader(catalog.WithLogger(logger))
	return loader.Load(cmd.Context(), catalogSource(cmd))
}
