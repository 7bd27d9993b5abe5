package parse

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/solidstats/internal/class"
	"github.com/abhisek/solidstats/internal/stats"
)

const cleanEntry = "Friday, 15 March, 2024 [solidcore] Signature50 - Full Body MA, Arsenal Yards w/ Sarah Johnson 4:30pm (50 min)"

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExtractRecords_SingleEntry(t *testing.T) {
	records, err := ExtractRecords(cleanEntry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	r := records[0]
	if !r.Date.Equal(date(2024, time.March, 15)) {
		t.Errorf("got date %v, want 2024-03-15", r.Date)
	}
	if r.Time != "4:30pm" {
		t.Errorf("got time %q, want 4:30pm", r.Time)
	}
	if r.Type != class.Signature50 {
		t.Errorf("got type %q, want Signature50", r.Type)
	}
	if r.Variant != "Full Body" {
		t.Errorf("got variant %q, want Full Body", r.Variant)
	}
	if r.Instructor != "Sarah J." {
		t.Errorf("got instructor %q, want Sarah J.", r.Instructor)
	}
	if r.Location != "Arsenal Yards" {
		t.Errorf("got location %q, want Arsenal Yards", r.Location)
	}
}

func TestExtractRecords_MessyExtraction(t *testing.T) {
	// Marker before the date, spaced-out letters, ratio colon, split
	// meridiem: every artifact at once.
	in := "[solidcore] Friday, 15 March, 2024 S i g n a t u r e 5 0 - Full Body M A, A r s e n a l Y a r d s w/ Sarah Johnson 4∶30 P M (50 min)"
	records, err := ExtractRecords(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	r := records[0]
	if r.Type != class.Signature50 || r.Location != "Arsenal Yards" || r.Instructor != "Sarah J." {
		t.Errorf("got %+v", r)
	}
}

func TestExtractRecords_MultipleEntriesSortedDescending(t *testing.T) {
	in := strings.Join([]string{
		"3 January, 2024 [solidcore] Power30 - Core MA, Back Bay w/ Jen Smith 7:00am (30 min)",
		"15 March, 2024 [solidcore] Signature50 - Full Body MA, Arsenal Yards w/ Sarah Johnson 4:30pm (50 min)",
		"9 February, 2024 [solidcore] Foundation50 - Basics MA, Seaport w/ Amy Lee 12:00pm (50 min)",
	}, " ")

	records, err := ExtractRecords(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i].Date.After(records[i-1].Date) {
			t.Errorf("records out of order at %d: %v after %v",
				i, records[i].Date, records[i-1].Date)
		}
	}
	if records[0].Instructor != "Sarah J." {
		t.Errorf("got first record %+v, want the March entry", records[0])
	}
}

func TestExtractRecords_FallbackAssociation(t *testing.T) {
	// The extractor scattered the entry: page junk separates the date,
	// the class code, and the tail, so the composite pattern cannot
	// span it.
	in := "Friday, 15 March, 2024 page 3 of 12 Signature50 booking confirmed MA, Arsenal Yards w/ Sarah Johnson 4:30pm (50 min)"
	records, err := ExtractRecords(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	r := records[0]
	if !r.Date.Equal(date(2024, time.March, 15)) {
		t.Errorf("got date %v, want 2024-03-15", r.Date)
	}
	if r.Type != class.Signature50 {
		t.Errorf("got type %q, want Signature50", r.Type)
	}
	if r.Instructor != "Sarah J." {
		t.Errorf("got instructor %q, want Sarah J.", r.Instructor)
	}
}

func TestExtractRecords_FallbackPrefersPrecedingDate(t *testing.T) {
	// A date before the tail wins over a nearer one after it.
	in := "1 June, 2024 filler Signature50 filler MA, Seaport w/ Amy Lee 9:00am (50 min) 2 June, 2024"
	records, err := ExtractRecords(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if !records[0].Date.Equal(date(2024, time.June, 1)) {
		t.Errorf("got date %v, want 2024-06-01", records[0].Date)
	}
}

func TestExtractRecords_FallbackTooFar(t *testing.T) {
	// A date beyond the association distance leaves the tail orphaned.
	in := "1 June, 2024 " + strings.Repeat("junk ", 120) +
		"MA, Seaport w/ Amy Lee 9:00am (50 min)"
	_, err := ExtractRecords(in)
	var noRecords *NoRecordsError
	if !errors.As(err, &noRecords) {
		t.Fatalf("got err %v, want *NoRecordsError", err)
	}
}

func TestExtractRecords_CancelledExcluded(t *testing.T) {
	in := "Late Cancel " + cleanEntry
	_, err := ExtractRecords(in)
	var noRecords *NoRecordsError
	if !errors.As(err, &noRecords) {
		t.Fatalf("got err %v, want *NoRecordsError", err)
	}
}

func TestExtractRecords_CancelledFarAwayKept(t *testing.T) {
	// A cancellation keyword outside the window does not poison the
	// entry.
	in := "Cancelled " + strings.Repeat("junk ", 40) + cleanEntry
	records, err := ExtractRecords(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("got %d records, want 1", len(records))
	}
}

func TestExtractRecords_DenylistedLocationExcluded(t *testing.T) {
	in := "15 March, 2024 [solidcore] Signature50 - Flow MA, Riverside Yoga Studio w/ Sarah Johnson 4:30pm (50 min)"
	_, err := ExtractRecords(in)
	var noRecords *NoRecordsError
	if !errors.As(err, &noRecords) {
		t.Fatalf("got err %v, want *NoRecordsError", err)
	}
}

func TestExtractRecords_DuplicatesCollapsed(t *testing.T) {
	in := cleanEntry + " " + cleanEntry
	records, err := ExtractRecords(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("got %d records, want 1 after dedup", len(records))
	}
}

func TestExtractRecords_TwoKeptOneCancelled(t *testing.T) {
	// Two well-formed entries on consecutive days plus a cancelled one
	// on a third day. Page furniture separates the rows so the
	// cancellation window around the last entry cannot reach its
	// neighbors.
	pad := strings.Repeat("junk ", 30)
	in := "14 March, 2024 [solidcore] Signature50 - Full Body MA, Arsenal Yards w/ Sarah Johnson 6:00am (50 min) " +
		pad + "15 March, 2024 [solidcore] Signature50 - Full Body MA, Arsenal Yards w/ Sarah Johnson 6:00am (50 min) " +
		pad + "Late Cancel 17 March, 2024 [solidcore] Foundation50 - Basics MA, Seaport w/ Amy Lee 12:00pm (50 min)"

	records, err := ExtractRecords(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	for _, r := range records {
		if r.Instructor != "Sarah J." {
			t.Errorf("cancelled entry survived: %+v", r)
		}
	}
	if streak := stats.LongestStreak(records); streak != 2 {
		t.Errorf("got streak %d, want 2", streak)
	}
}

func TestExtractRecords_AdversarialInterleaving(t *testing.T) {
	// A stray tail after a complete entry associates with the nearest
	// preceding date, which is the complete entry's. The nearest-offset
	// heuristic is documented behavior, not a guarantee of authorship.
	in := "1 June, 2024 page header " +
		"5 June, 2024 [solidcore] Signature50 - Full Body MA, Arsenal Yards w/ Sarah Johnson 4:30pm (50 min) " +
		"Signature50 MA, Seaport w/ Amy Lee 9:00am (50 min)"

	records, err := ExtractRecords(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	var stray *class.Record
	for i := range records {
		if records[i].Instructor == "Amy L." {
			stray = &records[i]
		}
	}
	if stray == nil {
		t.Fatal("stray tail was dropped")
	}
	if !stray.Date.Equal(date(2024, time.June, 5)) {
		t.Errorf("got date %v, want the nearest preceding date 2024-06-05", stray.Date)
	}
}

func TestExtractRecords_NoRecordsError(t *testing.T) {
	_, err := ExtractRecords("quarterly report, nothing about classes here")
	var noRecords *NoRecordsError
	if !errors.As(err, &noRecords) {
		t.Fatalf("got err %v, want *NoRecordsError", err)
	}
}

func TestCheckDensity(t *testing.T) {
	p := Default()

	if err := p.CheckDensity(strings.Repeat("a", 500), 2); err != nil {
		t.Errorf("dense text flagged: %v", err)
	}

	err := p.CheckDensity("barely anything", 10)
	var noText *NoTextError
	if !errors.As(err, &noText) {
		t.Fatalf("got err %v, want *NoTextError", err)
	}
	if noText.Pages != 10 {
		t.Errorf("got pages %d, want 10", noText.Pages)
	}
}

func TestParser_ConcurrentUse(t *testing.T) {
	p := Default()
	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			if _, err := p.ExtractRecords(cleanEntry); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}
}
