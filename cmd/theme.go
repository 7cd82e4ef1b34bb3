package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizterm/internal/preference"
)

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark]",
	Short: "Show or set the saved colour theme",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		repo := st.PreferenceRepo()
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			v, ok, err := repo.Get(ctx, preference.Key)
			if err != nil {
				return fmt.Errorf("read theme: %w", err)
			}
			if !ok {
				fmt.Fprintln(out, "not set (follows the terminal background)")
				return nil
			}
			fmt.Fprintln(out, preference.Parse(v))
			return nil
		}

		p, err := preference.ParseStrict(args[0])
		if err != nil {
			return err
		}
		ctl := preference.NewController(repo, nil, nil, preference.WithLogger(stderrLogger()))
		if err := ctl.Set(ctx, p); err != nil {
			return err
		}
		fmt.Fprintln(out, "theme set to", p)
		return nil
	},
}
