// Package stats derives aggregate statistics from an attendance record
// list. Every function is pure and deterministic; aggregates are
// recomputed in full on every record-set change.
package stats

import "github.com/abhisek/solidstats/internal/class"

// TopN is how many ranked instructors an Aggregates carries.
const TopN = 3

// InstructorCount is one ranked leaderboard entry.
type InstructorCount struct {
	Name  string
	Count int
}

// Bucket is one time-of-day slot with its share of all classes.
type Bucket struct {
	Name    string
	Count   int
	Percent float64
}

// TypeCount is one class-type distribution entry, in first-encountered
// order.
type TypeCount struct {
	Type  class.Type
	Count int
}

// Aggregates is one full statistics run over a record list.
type Aggregates struct {
	Year            int
	TotalClasses    int
	TotalMinutes    int
	TopInstructors  []InstructorCount
	DistinctCoaches int
	TopLocation     string
	MonthlyActivity [12]int
	TimeOfDay       []Bucket
	TypeCounts      []TypeCount
	MaxStreak       int
}

// Aggregate computes all statistics for the records of one year.
// Instructor and location ties break toward the first-encountered name;
// that inherited tie-break is accepted, not load-bearing.
func Aggregate(records []class.Record, year int) Aggregates {
	agg := Aggregates{Year: year, TotalClasses: len(records)}

	instructorCounts := newCounter()
	locationCounts := newCounter()
	typeCounts := newCounter()
	var morning, afternoon, evening int

	for _, r := range records {
		agg.TotalMinutes += r.Type.Duration()
		instructorCounts.add(r.Instructor)
		locationCounts.add(r.Location)
		typeCounts.add(string(r.Type))
		agg.MonthlyActivity[int(r.Date.Month())-1]++

		switch h := r.Hour(); {
		case h < 12:
			morning++
		case h < 17:
			afternoon++
		default:
			evening++
		}
	}

	ranked := instructorCounts.ranked()
	agg.DistinctCoaches = len(ranked)
	if len(ranked) > TopN {
		ranked = ranked[:TopN]
	}
	for _, e := range ranked {
		agg.TopInstructors = append(agg.TopInstructors, InstructorCount(e))
	}

	if top, ok := locationCounts.max(); ok {
		agg.TopLocation = top
	}

	for _, e := range typeCounts.entries {
		agg.TypeCounts = append(agg.TypeCounts, TypeCount{
			Type:  class.Type(e.Name),
			Count: e.Count,
		})
	}

	// Zero buckets are omitted from the distribution but every class
	// stays in the denominator.
	total := float64(agg.TotalClasses)
	for _, b := range []Bucket{
		{Name: "Morning", Count: morning},
		{Name: "Afternoon", Count: afternoon},
		{Name: "Evening", Count: evening},
	} {
		if b.Count == 0 {
			continue
		}
		b.Percent = float64(b.Count) / total
		agg.TimeOfDay = append(agg.TimeOfDay, b)
	}

	agg.MaxStreak = LongestStreak(records)
	return agg
}

// MaxMonth returns the highest single-month class count.
func (a Aggregates) MaxMonth() int {
	best := 0
	for _, n := range a.MonthlyActivity {
		if n > best {
			best = n
		}
	}
	return best
}

// ActiveMonths returns how many months saw at least one class.
func (a Aggregates) ActiveMonths() int {
	n := 0
	for _, c := range a.MonthlyActivity {
		if c > 0 {
			n++
		}
	}
	return n
}

// BucketPercent returns the share for a named time-of-day bucket, zero
// when the bucket was omitted.
func (a Aggregates) BucketPercent(name string) float64 {
	for _, b := range a.TimeOfDay {
		if b.Name == name {
			return b.Percent
		}
	}
	return 0
}
