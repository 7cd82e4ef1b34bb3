package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizterm/internal/catalog"
)

var validateCmd = &cobra.Command{
	Use:   "validate [path|url]",
	Short: "Check that a catalog loads and every answer matches one option",
	Long: `Load a catalog and report problems. Schema errors make the command fail;
answers matching no option (or several) are printed as warnings.

Without an argument the --catalog flag, QUIZTERM_CATALOG or the embedded
catalog is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := catalogSource(cmd)
		if len(args) == 1 {
			source = args[0]
		}

		// Lint warnings are printed below, not logged.
		loader := catalog.NewLoader()
		c, err := loader.Load(cmd.Context(), source)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		warnings := c.Lint()
		for _, w := range warnings {
			fmt.Fprintln(out, "warning:", w)
		}

		name := source
		if name == "" {
			name = catalog.EmbeddedSource
		}
		fmt.Fprintf(out, "%s: %d subjects, %d questions, %d warnings\n",
			name, len(c.Subjects), c.QuestionCount(), len(warnings))
		return nil
	},
}
