package results

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/solidstats/internal/class"
	"github.com/abhisek/solidstats/internal/personality"
	"github.com/abhisek/solidstats/internal/router"
	"github.com/abhisek/solidstats/internal/screen"
	"github.com/abhisek/solidstats/internal/screens/receipts"
	"github.com/abhisek/solidstats/internal/stats"
	"github.com/abhisek/solidstats/internal/ui/components"
	"github.com/abhisek/solidstats/internal/ui/layout"
	"github.com/abhisek/solidstats/internal/ui/theme"
)

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// ResultsScreen displays the year-in-review stats card.
type ResultsScreen struct {
	records []class.Record
	years   []int
	yearIdx int

	agg   stats.Aggregates
	label personality.Label
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen over the full record set, opened on the
// given year (or the most recent year with records if year is 0).
func New(records []class.Record, year int) *ResultsScreen {
	years := class.Years(records)
	if len(years) == 0 {
		years = []int{time.Now().Year()}
	}

	idx := 0
	for i, y := range years {
		if y == year {
			idx = i
			break
		}
	}

	s := &ResultsScreen{
		records: records,
		years:   years,
		yearIdx: idx,
	}
	s.recompute()
	return s
}

func (s *ResultsScreen) recompute() {
	year := s.years[s.yearIdx]
	filtered := class.FilterYear(s.records, year)
	s.agg = stats.Aggregate(filtered, year)
	s.label = personality.Classify(s.agg, filtered, nil)
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Year in Review"
}

// Year reports the selected year for the header.
func (s *ResultsScreen) Year() int {
	return s.years[s.yearIdx]
}

// Classes reports the class count for the header.
func (s *ResultsScreen) Classes() int {
	return s.agg.TotalClasses
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Year"},
		{Key: "Enter", Description: "Receipts"},
		{Key: "Q", Description: "Quit"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "left", "h":
			if s.yearIdx < len(s.years)-1 {
				s.yearIdx++
				s.recompute()
			}
			return s, nil
		case "right", "l":
			if s.yearIdx > 0 {
				s.yearIdx--
				s.recompute()
			}
			return s, nil
		case "enter", "r":
			year := s.years[s.yearIdx]
			rs := receipts.New(class.FilterYear(s.records, year), year)
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: rs} }
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	if s.agg.TotalClasses == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render(fmt.Sprintf("\n\n  No classes found in %d", s.years[s.yearIdx]))
	}

	var b strings.Builder
	b.WriteString("\n")

	center := func(line string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	// Headline totals.
	hours := s.agg.TotalMinutes / 60
	mins := s.agg.TotalMinutes % 60
	center(theme.StatValue.Render(fmt.Sprintf("%d classes", s.agg.TotalClasses)) +
		theme.StatLabel.Render(fmt.Sprintf("   %dh %dm on the Megaformer", hours, mins)))
	b.WriteString("\n")

	// Personality.
	center(theme.Title.Render(fmt.Sprintf("%s  %s", s.label.Emoji, s.label.Title)))
	center(theme.StatLabel.Render(s.label.Description))
	b.WriteString("\n")

	barWidth := min(width-20, 44)

	// Monthly activity.
	center(theme.StatLabel.Render("Monthly activity"))
	maxMonth := 0
	for _, n := range s.agg.MonthlyActivity {
		if n > maxMonth {
			maxMonth = n
		}
	}
	for i, n := range s.agg.MonthlyActivity {
		bar := components.NewStatBar(monthNames[i], n, maxMonth, barWidth)
		center(bar.View())
	}
	b.WriteString("\n")

	// Time of day.
	center(theme.StatLabel.Render("Time of day"))
	for _, bucket := range s.agg.TimeOfDay {
		bar := components.NewPercentBar(
			fmt.Sprintf("%-9s", bucket.Name), bucket.Percent, barWidth)
		center(bar.View())
	}
	b.WriteString("\n")

	// Formats.
	center(theme.StatLabel.Render("Formats"))
	for _, tc := range s.agg.TypeCounts {
		center(fmt.Sprintf("%s  %s",
			theme.Body.Render(fmt.Sprintf("%-14s", string(tc.Type))),
			theme.StatValue.Render(fmt.Sprintf("%d", tc.Count))))
	}
	b.WriteString("\n")

	// Coaches and studio.
	for i, ic := range s.agg.TopInstructors {
		marker := "  "
		if i == 0 {
			marker = "★ "
		}
		center(fmt.Sprintf("%s%s  %s",
			theme.StatLabel.Render(marker),
			theme.Body.Render(ic.Name),
			theme.StatValue.Render(fmt.Sprintf("%d", ic.Count))))
	}
	center(theme.StatLabel.Render(fmt.Sprintf("%d coaches in total", s.agg.DistinctCoaches)))
	if s.agg.TopLocation != "" {
		center(theme.StatLabel.Render("Home studio: ") + theme.Body.Render(s.agg.TopLocation))
	}
	b.WriteString("\n")

	// Streak.
	if s.agg.MaxStreak > 1 {
		center(theme.StatValue.Render(fmt.Sprintf("%d-day streak", s.agg.MaxStreak)) +
			theme.StatLabel.Render("  longest run of consecutive days"))
	}

	return b.String()
}
