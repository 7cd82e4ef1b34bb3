package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play <subject>",
	Short: "Start a quiz for a subject straight away",
	Long: `Launch the quiz with a subject already chosen. The subject name is
matched case-insensitively; an unknown name shows the subject menu.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, args[0])
	},
}
