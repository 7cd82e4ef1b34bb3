package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizterm/internal/app"
	"github.com/abhisek/quizterm/internal/catalog"
	"github.com/abhisek/quizterm/internal/logging"
	"github.com/abhisek/quizterm/internal/preference"
)

// runApp opens the store, builds dependencies, and launches the TUI. A
// non-empty subject starts that quiz once the catalog is loaded.
func runApp(cmd *cobra.Command, subject string) error {
	ctx := cmd.Context()

	// The TUI owns the terminal, so logs go to a file.
	logger, closer, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
		logger = logging.Discard()
	} else {
		defer closer.Close()
	}

	opts := app.Options{
		Loader:  catalog.NewLoader(catalog.WithLogger(logger)),
		Source:  catalogSource(cmd),
		Subject: subject,
		Logger:  logger,
	}

	// The quiz works without the store; only history and the theme
	// preference are lost.
	st, err := openStore(cmd)
	if err != nil {
		logger.Warn("store unavailable", "error", err)
		fmt.Fprintln(os.Stderr, "Store unavailable:", err)
		fmt.Fprintln(os.Stderr, "Results and theme will not be saved.")
		opts.Theme = preference.NewController(nil, preference.TerminalSignal(cfg.Theme), app.ApplyTheme,
			preference.WithLogger(logger))
	} else {
		defer st.Close()
		opts.Results = st.ResultRepo()
		opts.Theme = preference.NewController(st.PreferenceRepo(), preference.TerminalSignal(cfg.Theme), app.ApplyTheme,
			preference.WithLogger(logger))
	}

	logger.Info("starting", "version", version, "catalog", opts.Source, "subject", subject)
	return app.Run(ctx, opts)
}
