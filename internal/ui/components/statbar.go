package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/solidstats/internal/ui/theme"
)

// StatBar displays a labeled horizontal bar scaled against a maximum,
// used for the monthly activity and class format charts.
type StatBar struct {
	Label       string
	Count       int
	Max         int
	ShowPercent bool
	Percent     float64
	Width       int
}

// NewStatBar creates a count bar scaled against max.
func NewStatBar(label string, count, max, width int) StatBar {
	return StatBar{
		Label: label,
		Count: count,
		Max:   max,
		Width: width,
	}
}

// NewPercentBar creates a bar annotated with a percentage instead of
// a raw count.
func NewPercentBar(label string, percent float64, width int) StatBar {
	return StatBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: true,
		Width:       width,
	}
}

// View renders the bar.
func (b StatBar) View() string {
	var result string

	if b.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(b.Label) + "  "
	}

	suffix := fmt.Sprintf("  %d", b.Count)
	frac := 0.0
	if b.ShowPercent {
		suffix = fmt.Sprintf("  %d%%", int(b.Percent*100+0.5))
		frac = b.Percent
	} else if b.Max > 0 {
		frac = float64(b.Count) / float64(b.Max)
	}

	labelWidth := lipgloss.Width(result)
	barWidth := b.Width - labelWidth - len(suffix)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth)*frac + 0.5)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	result += lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))
	result += lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(suffix)

	return result
}
