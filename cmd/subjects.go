package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizterm/internal/catalog"
)

var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "List the subjects in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog(cmd, stderrLogger())
		if err != nil {
			return err
		}
		printSubjects(cmd.OutOrStdout(), c)
		return nil
	},
}

func printSubjects(out io.Writer, c *catalog.Catalog) {
	for _, s := range c.Subjects {
		fmt.Fprintf(out, "%-16s %3d questions\n", s.Name, len(s.Questions))
	}
	fmt.Fprintf(out, "\n%d subjects, %d questions\n", len(c.Subjects), c.QuestionCount())
}
