package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/solidstats/internal/app"
	"github.com/abhisek/solidstats/internal/class"
	"github.com/abhisek/solidstats/internal/extract"
	"github.com/abhisek/solidstats/internal/parse"
)

// runApp loads records from the input file and launches the TUI.
func runApp(cmd *cobra.Command, path string) error {
	records, err := loadRecords(cmd, path)
	if err != nil {
		return err
	}
	year, err := resolveYear(cmd, records)
	if err != nil {
		return err
	}
	return app.Run(records, year)
}

// loadRecords extracts text from the input file and recovers the
// booking records. Plain-text files are accepted alongside PDFs.
func loadRecords(cmd *cobra.Command, path string) ([]class.Record, error) {
	parser, err := resolveParser(cmd)
	if err != nil {
		return nil, err
	}

	var text string
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		result, err := extract.Text(path, func(page, total int) {
			fmt.Fprintf(os.Stderr, "\rReading page %d/%d...", page, total)
		})
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		if err := parser.CheckDensity(result.Text, result.Pages); err != nil {
			return nil, err
		}
		text = result.Text
	} else {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		text = string(raw)
	}

	return parser.ExtractRecords(text)
}

// resolveParser builds a parser from the default vocabulary, merged
// with the --vocab override file when given.
func resolveParser(cmd *cobra.Command) (*parse.Parser, error) {
	path, _ := cmd.Flags().GetString("vocab")
	if path == "" {
		return parse.Default(), nil
	}
	vocab, err := parse.LoadVocabulary(path)
	if err != nil {
		return nil, fmt.Errorf("load vocabulary %s: %w", path, err)
	}
	return parse.New(vocab), nil
}

// resolveYear returns the --year flag when set, otherwise the most
// recent year with records.
func resolveYear(cmd *cobra.Command, records []class.Record) (int, error) {
	year, _ := cmd.Flags().GetInt("year")
	years := class.Years(records)
	if year == 0 {
		if len(years) == 0 {
			return 0, fmt.Errorf("no dated records found")
		}
		return years[0], nil
	}
	for _, y := range years {
		if y == year {
			return year, nil
		}
	}
	return 0, fmt.Errorf("no classes found in %d (have: %v)", year, years)
}
