package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/solidstats/internal/class"
)

var recordsCmd = &cobra.Command{
	Use:   "records <booking-history.pdf>",
	Short: "Print every recovered booking record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := loadRecords(cmd, args[0])
		if err != nil {
			return err
		}
		if year, _ := cmd.Flags().GetInt("year"); year != 0 {
			records = class.FilterYear(records, year)
		}

		for _, r := range records {
			fmt.Printf("%s  %-8s  %-13s  %-20s  %s\n",
				r.Date.Format("2006-01-02"),
				r.Time,
				r.Type,
				r.Instructor,
				r.Location)
		}
		fmt.Printf("\n%d records\n", len(records))
		return nil
	},
}
