package cmd

import (
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log the build table and cache report as plain text",
	Long: `Log the Gradle build table and the cache report as plain text lines.
Nothing is written to the job summary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := loadInputs()
		if err != nil {
			return err
		}
		// The sink is never written on this path.
		newReporter(nil).LogJobSummary(in.results, in.listener)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
}
