package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "solidstats <booking-history.pdf>",
	Short: "Year-in-review stats from your class booking history",
	Long: "SolidStats recovers class bookings from an exported booking-history PDF\n" +
		"and shows a year-in-review stats card in the terminal.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, args[0])
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("vocab", "", "Path to a YAML vocabulary override file")
	rootCmd.PersistentFlags().Int("year", 0, "Year to open (defaults to the most recent year with classes)")

	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}
