package results

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/solidstats/internal/class"
)

func testRecords() []class.Record {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return []class.Record{
		{Date: day(2024, time.March, 15), Time: "4:30pm", Type: class.Signature50, Instructor: "Sarah J.", Location: "Arsenal Yards"},
		{Date: day(2024, time.March, 14), Time: "6:00am", Type: class.Power30, Instructor: "Jen S.", Location: "Arsenal Yards"},
		{Date: day(2023, time.November, 2), Time: "6:30pm", Type: class.Signature50, Instructor: "Sarah J.", Location: "Seaport"},
	}
}

func TestResultsScreen_Title(t *testing.T) {
	s := New(testRecords(), 2024)
	if s.Title() != "Year in Review" {
		t.Errorf("Title = %q, want %q", s.Title(), "Year in Review")
	}
}

func TestResultsScreen_OpensOnRequestedYear(t *testing.T) {
	s := New(testRecords(), 2023)
	if s.Year() != 2023 {
		t.Errorf("Year = %d, want 2023", s.Year())
	}
	if s.Classes() != 1 {
		t.Errorf("Classes = %d, want 1", s.Classes())
	}
}

func TestResultsScreen_DefaultsToMostRecentYear(t *testing.T) {
	s := New(testRecords(), 0)
	if s.Year() != 2024 {
		t.Errorf("Year = %d, want 2024", s.Year())
	}
}

func TestResultsScreen_YearSwitching(t *testing.T) {
	s := New(testRecords(), 2024)

	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if s.Year() != 2023 {
		t.Errorf("after left: Year = %d, want 2023", s.Year())
	}

	// Already at the oldest year; another left is a no-op.
	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if s.Year() != 2023 {
		t.Errorf("after second left: Year = %d, want 2023", s.Year())
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if s.Year() != 2024 {
		t.Errorf("after right: Year = %d, want 2024", s.Year())
	}
}

func TestResultsScreen_ViewShowsHeadline(t *testing.T) {
	s := New(testRecords(), 2024)
	view := s.View(80, 40)
	if !strings.Contains(view, "2 classes") {
		t.Errorf("view missing class count:\n%s", view)
	}
	if !strings.Contains(view, "Arsenal Yards") {
		t.Errorf("view missing home studio:\n%s", view)
	}
}

func TestResultsScreen_EnterPushesReceipts(t *testing.T) {
	s := New(testRecords(), 2024)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a push command on enter")
	}
}

func TestResultsScreen_EmptyRecordSet(t *testing.T) {
	s := New(nil, 0)
	if view := s.View(80, 40); view == "" {
		t.Error("expected a non-empty placeholder view")
	}
}
