package receipts

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/solidstats/internal/class"
	"github.com/abhisek/solidstats/internal/router"
	"github.com/abhisek/solidstats/internal/screen"
	"github.com/abhisek/solidstats/internal/ui/layout"
	"github.com/abhisek/solidstats/internal/ui/theme"
)

// ReceiptsScreen lists every recovered class booking for one year,
// newest first.
type ReceiptsScreen struct {
	records  []class.Record
	year     int
	selected int
	offset   int
}

var _ screen.Screen = (*ReceiptsScreen)(nil)
var _ screen.KeyHintProvider = (*ReceiptsScreen)(nil)

// New creates a ReceiptsScreen over records already filtered to year.
func New(records []class.Record, year int) *ReceiptsScreen {
	return &ReceiptsScreen{records: records, year: year}
}

func (s *ReceiptsScreen) Init() tea.Cmd {
	return nil
}

func (s *ReceiptsScreen) Title() string {
	return "Receipts"
}

// Year reports the filtered year for the header.
func (s *ReceiptsScreen) Year() int {
	return s.year
}

// Classes reports the record count for the header.
func (s *ReceiptsScreen) Classes() int {
	return len(s.records)
}

func (s *ReceiptsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ReceiptsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
			return s, nil
		case "home", "g":
			s.selected = 0
			return s, nil
		case "end", "G":
			if len(s.records) > 0 {
				s.selected = len(s.records) - 1
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *ReceiptsScreen) View(width, height int) string {
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing booked this year")
	}

	// Keep the selection inside the visible window.
	visible := height - 2
	if visible < 1 {
		visible = 1
	}
	if s.selected < s.offset {
		s.offset = s.selected
	}
	if s.selected >= s.offset+visible {
		s.offset = s.selected - visible + 1
	}

	var b strings.Builder
	b.WriteString("\n")

	end := s.offset + visible
	if end > len(s.records) {
		end = len(s.records)
	}

	for i := s.offset; i < end; i++ {
		r := s.records[i]

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-8s  %-13s  %-18s  %s",
			prefix,
			r.Date.Format("Jan 02, 2006"),
			r.Time,
			string(r.Type),
			truncate(r.Instructor, 18),
			truncate(r.Location, 24))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
