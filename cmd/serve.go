package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/quizterm/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host a catalog over HTTP",
	Long: `Serve data.json and its assets/ directory under a base path, the way
the web quiz was deployed. The TUI can then load it with
--catalog http://host:port/Frontend-quiz-app/data.json.

Without --dir the embedded catalog is served and assets return 404.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		addr, _ := cmd.Flags().GetString("addr")
		base, _ := cmd.Flags().GetString("base")
		if addr == "" {
			addr = cfg.Addr
		}
		if base == "" {
			base = cfg.BasePath
		}

		logger := stderrLogger()
		handler := server.New(server.Options{
			Dir:      dir,
			BasePath: base,
			Logger:   logger,
		})
		logger.Info("catalog mounted", "base", base, "dir", dir)
		return server.Serve(cmd.Context(), addr, handler, logger)
	},
}

func init() {
	serveCmd.Flags().String("dir", "", "Directory containing data.json and assets/")
	serveCmd.Flags().String("addr", "", "Listen address (overrides QUIZTERM_ADDR, default :8080)")
	serveCmd.Flags().String("base", "", "Base path (overrides QUIZTERM_BASE_PATH, default /Frontend-quiz-app/)")
}
