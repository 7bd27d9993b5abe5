// Package class defines the attendance record model shared by the parsing
// pipeline, the statistics engine, and the presentation layer.
package class

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Type is a canonical class-type code. Each code implies a nominal
// session duration in minutes.
type Type string

const (
	Starter50    Type = "Starter50"
	Foundation50 Type = "Foundation50"
	Signature50  Type = "Signature50"
	Focus50      Type = "Focus50"
	Power30      Type = "Power30"
	Advanced50   Type = "Advanced50"
	Advanced65   Type = "Advanced65"
)

// AllTypes returns the closed set of class types, most specific first.
// Canonicalization must test codes in this order so a longer code is
// never shadowed by a shorter one it contains.
func AllTypes() []Type {
	return []Type{
		Advanced65,
		Advanced50,
		Foundation50,
		Signature50,
		Starter50,
		Power30,
		Focus50,
	}
}

// Duration returns the nominal session length in minutes.
// Codes carrying an explicit length use it; everything else is the
// standard 50-minute session.
func (t Type) Duration() int {
	s := string(t)
	switch {
	case strings.Contains(s, "30"):
		return 30
	case strings.Contains(s, "65"):
		return 65
	default:
		return 50
	}
}

// Record is one recovered class-attendance entry. Records are immutable
// once built and held only in memory for the session.
type Record struct {
	Date       time.Time // calendar day, midnight UTC
	Time       string    // local clock time, e.g. "4:30pm"
	Type       Type
	Variant    string // free-text sub-label, may be empty
	Instructor string // normalized "First L." form
	Location   string // venue name, region prefix stripped
}

var clockRe = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})(am|pm)$`)

// Hour returns the 24-hour clock hour of the record's start time.
// Unparseable times land at noon so they bucket as afternoon.
func (r Record) Hour() int {
	m := clockRe.FindStringSubmatch(r.Time)
	if m == nil {
		return 12
	}
	h, _ := strconv.Atoi(m[1])
	mod := strings.ToLower(m[3])
	if h == 12 {
		if mod == "am" {
			return 0
		}
		return 12
	}
	if mod == "pm" {
		return h + 12
	}
	return h
}

// Key identifies a record for deduplication. Two records are duplicates
// when date, time, and instructor all match.
func (r Record) Key() string {
	return r.Date.Format("2006-01-02") + "|" + strings.ToLower(r.Time) + "|" + r.Instructor
}

// Years returns the distinct calendar years present, most recent first.
func Years(records []Record) []int {
	seen := make(map[int]bool)
	var years []int
	for _, r := range records {
		y := r.Date.Year()
		if !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// FilterYear returns the records whose date falls in the given year,
// preserving order.
func FilterYear(records []Record, year int) []Record {
	var out []Record
	for _, r := range records {
		if r.Date.Year() == year {
			out = append(out, r)
		}
	}
	return out
}
