package stats

import (
	"sort"
	"time"

	"github.com/abhisek/solidstats/internal/class"
)

// LongestStreak returns the longest run of consecutive calendar days
// that each contain at least one record. Multiple classes on one day
// count once. Zero or one distinct day yields that count.
func LongestStreak(records []class.Record) int {
	if len(records) == 0 {
		return 0
	}

	days := make([]time.Time, 0, len(records))
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		key := r.Date.Format("2006-01-02")
		if seen[key] {
			continue
		}
		seen[key] = true
		days = append(days, r.Date)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	maxStreak, current := 1, 1
	for i := 1; i < len(days); i++ {
		gap := int(days[i].Sub(days[i-1]).Hours() / 24)
		switch {
		case gap == 1:
			current++
		case gap > 1:
			if current > maxStreak {
				maxStreak = current
			}
			current = 1
		}
	}
	if current > maxStreak {
		maxStreak = current
	}
	return maxStreak
}
