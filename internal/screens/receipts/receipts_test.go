package receipts

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/solidstats/internal/class"
)

func manyRecords(n int) []class.Record {
	out := make([]class.Record, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, class.Record{
			Date:       time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Time:       "6:00am",
			Type:       class.Signature50,
			Instructor: "Sarah J.",
			Location:   "Arsenal Yards",
		})
	}
	return out
}

func TestReceiptsScreen_Title(t *testing.T) {
	s := New(manyRecords(1), 2024)
	if s.Title() != "Receipts" {
		t.Errorf("Title = %q, want %q", s.Title(), "Receipts")
	}
	if s.Year() != 2024 || s.Classes() != 1 {
		t.Errorf("header info %d/%d, want 2024/1", s.Year(), s.Classes())
	}
}

func TestReceiptsScreen_Navigation(t *testing.T) {
	s := New(manyRecords(5), 2024)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 2 {
		t.Errorf("selected = %d, want 2", s.selected)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}

	// Bounds hold at both ends.
	for i := 0; i < 10; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	}
	if s.selected != 0 {
		t.Errorf("selected = %d, want 0", s.selected)
	}
	for i := 0; i < 10; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if s.selected != 4 {
		t.Errorf("selected = %d, want 4", s.selected)
	}
}

func TestReceiptsScreen_ScrollFollowsSelection(t *testing.T) {
	s := New(manyRecords(50), 2024)
	for i := 0; i < 30; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	view := s.View(100, 12)
	if !strings.Contains(view, ">") {
		t.Errorf("selection marker scrolled out of view:\n%s", view)
	}
}

func TestReceiptsScreen_EscPops(t *testing.T) {
	s := New(manyRecords(1), 2024)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a pop command on esc")
	}
}

func TestReceiptsScreen_Empty(t *testing.T) {
	s := New(nil, 2024)
	if view := s.View(80, 24); view == "" {
		t.Error("expected a non-empty placeholder view")
	}
}
