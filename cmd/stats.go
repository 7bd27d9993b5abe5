package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/solidstats/internal/class"
	"github.com/abhisek/solidstats/internal/personality"
	"github.com/abhisek/solidstats/internal/stats"
)

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var statsCmd = &cobra.Command{
	Use:   "stats <booking-history.pdf>",
	Short: "Print the year-in-review stats without the TUI",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := loadRecords(cmd, args[0])
		if err != nil {
			return err
		}
		year, err := resolveYear(cmd, records)
		if err != nil {
			return err
		}

		filtered := class.FilterYear(records, year)
		agg := stats.Aggregate(filtered, year)
		label := personality.Classify(agg, filtered, nil)

		fmt.Printf("%d year in review\n\n", year)
		fmt.Printf("Classes:     %d\n", agg.TotalClasses)
		fmt.Printf("Minutes:     %d\n", agg.TotalMinutes)
		fmt.Printf("Max streak:  %d days\n", agg.MaxStreak)
		if agg.TopLocation != "" {
			fmt.Printf("Home studio: %s\n", agg.TopLocation)
		}

		fmt.Printf("\nTop coaches (%d in total):\n", agg.DistinctCoaches)
		for _, ic := range agg.TopInstructors {
			fmt.Printf("  %-20s %d\n", ic.Name, ic.Count)
		}

		fmt.Println("\nFormats:")
		for _, tc := range agg.TypeCounts {
			fmt.Printf("  %-14s %d\n", tc.Type, tc.Count)
		}

		fmt.Println("\nTime of day:")
		for _, b := range agg.TimeOfDay {
			fmt.Printf("  %-10s %3d  (%.0f%%)\n", b.Name, b.Count, b.Percent*100)
		}

		fmt.Println("\nMonthly activity:")
		for i, n := range agg.MonthlyActivity {
			if n == 0 {
				continue
			}
			fmt.Printf("  %s  %d\n", monthNames[i], n)
		}

		fmt.Printf("\n%s %s\n%s\n", label.Emoji, label.Title, label.Description)
		return nil
	},
}
