package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizterm/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List completed quizzes, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		results, err := st.ResultRepo().QueryResults(cmd.Context(), store.QueryOpts{
			Subject: subject,
			Limit:   limit,
		})
		if err != nil {
			return fmt.Errorf("query results: %w", err)
		}
		return printHistory(cmd.OutOrStdout(), results)
	},
}

func init() {
	historyCmd.Flags().String("subject", "", "Only show this subject (exact name, e.g. CSS)")
	historyCmd.Flags().Int("limit", 20, "Maximum number of results (0 = all)")
}

func printHistory(out io.Writer, results []store.ResultEventRecord) error {
	if len(results) == 0 {
		fmt.Fprintln(out, "No quizzes completed yet.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tSUBJECT\tSCORE\tACCURACY")
	for _, r := range results {
		pct := 0.0
		if r.Total > 0 {
			pct = float64(r.Score) / float64(r.Total) * 100
		}
		fmt.Fprintf(tw, "%s\t%s\t%d/%d\t%.0f%%\n",
			r.Timestamp.Local().Format("2006-01-02 15:04"), r.Subject, r.Score, r.Total, pct)
	}
	return tw.Flush()
}
