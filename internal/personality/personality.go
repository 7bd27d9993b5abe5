// Package personality assigns a categorical label to a year of
// attendance. It is a decision table, not a state machine: an ordered
// cascade of threshold rules over the aggregates, first match wins, and
// a catch-all keeps the function total.
package personality

import (
	"fmt"
	"time"

	"github.com/abhisek/solidstats/internal/class"
	"github.com/abhisek/solidstats/internal/stats"
)

// Label is the chosen personality: a title, a one-line description, and
// an emoji tag.
type Label struct {
	Title       string
	Description string
	Emoji       string
}

// Metrics are the derived quantities the rule predicates read.
type Metrics struct {
	TotalClasses    int
	MaxStreak       int
	MaxMonth        int
	MorningPercent  float64
	EveningPercent  float64
	TopCoachName    string
	TopCoachPercent float64
	DistinctCoaches int
	ActiveMonths    int
	FormatCount     int
	WeekendPercent  float64
}

// Rule is one cascade entry. Applies must be a pure predicate; Pick
// builds the label, and may interpolate metrics into the description.
type Rule struct {
	Name    string
	Applies func(m Metrics) bool
	Pick    func(m Metrics) Label
}

// Classify derives metrics and walks the rule cascade. A nil rules
// slice means the default cascade. It never fails and returns exactly
// one label, even for empty input.
func Classify(agg stats.Aggregates, records []class.Record, rules []Rule) Label {
	if rules == nil {
		rules = DefaultRules()
	}
	return classify(rules, DeriveMetrics(agg, records))
}

func classify(rules []Rule, m Metrics) Label {
	for _, r := range rules {
		if r.Applies(m) {
			return r.Pick(m)
		}
	}
	// Unreachable: the default rule always applies.
	return fallback
}

// DeriveMetrics computes the rule inputs from one aggregate run plus
// the records themselves (weekend share needs the raw dates).
func DeriveMetrics(agg stats.Aggregates, records []class.Record) Metrics {
	m := Metrics{
		TotalClasses:    agg.TotalClasses,
		MaxStreak:       agg.MaxStreak,
		MaxMonth:        agg.MaxMonth(),
		MorningPercent:  agg.BucketPercent("Morning"),
		EveningPercent:  agg.BucketPercent("Evening"),
		DistinctCoaches: agg.DistinctCoaches,
		ActiveMonths:    agg.ActiveMonths(),
		FormatCount:     len(agg.TypeCounts),
	}
	if len(agg.TopInstructors) > 0 && agg.TotalClasses > 0 {
		m.TopCoachName = agg.TopInstructors[0].Name
		m.TopCoachPercent = float64(agg.TopInstructors[0].Count) / float64(agg.TotalClasses)
	}
	if agg.TotalClasses > 0 {
		weekend := 0
		for _, r := range records {
			if wd := r.Date.Weekday(); wd == time.Saturday || wd == time.Sunday {
				weekend++
			}
		}
		m.WeekendPercent = float64(weekend) / float64(agg.TotalClasses)
	}
	return m
}

var fallback = Label{
	Title:       "Shake Enthusiast",
	Description: "You showed up, you shook, you conquered.",
	Emoji:       "💪",
}

// DefaultRules returns the cascade in priority order. Order is the
// contract: moving a rule changes which label ambiguous years get.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:    "centurion",
			Applies: func(m Metrics) bool { return m.TotalClasses >= 100 },
			Pick: func(m Metrics) Label {
				return Label{
					Title:       "The Centurion",
					Description: "100+ classes! You're basically a board member.",
					Emoji:       "👑",
				}
			},
		},
		{
			Name:    "streak-monster",
			Applies: func(m Metrics) bool { return m.MaxStreak >= 7 },
			Pick: func(m Metrics) Label {
				return Label{
					Title:       "Streak Monster",
					Description: fmt.Sprintf("%d days straight! Your muscles don't know rest days exist.", m.MaxStreak),
					Emoji:       "🔥",
				}
			},
		},
		{
			Name:    "marathon-month",
			Applies: func(m Metrics) bool { return m.MaxMonth >= 20 },
			Pick: func(m Metrics) Label {
				return Label{
					Title:       "Marathon Month",
					Description: fmt.Sprintf("%d classes in one month? Beast mode activated.", m.MaxMonth),
					Emoji:       "🏃",
				}
			},
		},
		{
			Name:    "dawn-patrol",
			Applies: func(m Metrics) bool { return m.MorningPercent >= 0.7 },
			Pick: func(m Metrics) Label {
				return Label{
					Title:       "Dawn Patrol",
					Description: "Up before the sun to shake. Coffee who?",
					Emoji:       "🌅",
				}
			},
		},
		{
			Name:    "night-owl",
			Applies: func(m Metrics) bool { return m.EveningPercent >= 0.6 },
			Pick: func(m Metrics) Label {
				return Label{
					Title:       "Night Owl",
					Description: "Evening shakes hit different. Post-work therapy.",
					Emoji:       "🦉",
				}
			},
		},
		{
			Name: "loyalist",
			Applies: func(m Metrics) bool {
				return m.TopCoachPercent >= 0.5 && m.TopCoachName != ""
			},
			Pick: func(m Metrics) Label {
				return Label{
					Title:       "The Loyalist",
					Description: fmt.Sprintf("You and %s are basically besties.", m.TopCoachName),
					Emoji:       "🤝",
				}
			},
		},
		{
			Name:    "variety-seeker",
			Applies: func(m Metrics) bool { return m.DistinctCoaches >= 8 },
			Pick: func(m Metrics) Label {
				return Label{
					Title:       "Variety Seeker",
					Description: "Why pick a favorite when they're all amazing?",
					Emoji:       "🎰",
				}
			},
		},
		{
			Name:    "year-round-warrior",
			Applies: func(m Metrics) bool { return m.ActiveMonths >= 10 },
			Pick: func(m Metrics) Label {
				return Label{
					Title:       "Year-Round Warrior",
					Description: "Seasonal? Not you. You showed up all year.",
					Emoji:       "⚔️",
				}
			},
		},
		{
			Name:    "format-explorer",
			Applies: func(m Metrics) bool { return m.FormatCount >= 3 },
			Pick: func(m Metrics) Label {
				return Label{
					Title:       "Format Explorer",
					Description: "Signature, Focus, Foundation... you've tried them all!",
					Emoji:       "🧭",
				}
			},
		},
		{
			Name:    "weekend-warrior",
			Applies: func(m Metrics) bool { return m.WeekendPercent >= 0.6 },
			Pick: func(m Metrics) Label {
				return Label{
					Title:       "Weekend Warrior",
					Description: "Saturdays are for shaking, not sleeping in.",
					Emoji:       "📅",
				}
			},
		},
		{
			Name: "rising-star",
			Applies: func(m Metrics) bool {
				return m.TotalClasses >= 20 && m.TotalClasses < 50
			},
			Pick: func(m Metrics) Label {
				return Label{
					Title:       "Rising Star",
					Description: "Just getting started but already addicted!",
					Emoji:       "⭐",
				}
			},
		},
		{
			Name:    "dedicated",
			Applies: func(m Metrics) bool { return m.TotalClasses >= 50 },
			Pick: func(m Metrics) Label {
				return Label{
					Title:       "Dedicated",
					Description: "50+ classes shows serious commitment!",
					Emoji:       "💎",
				}
			},
		},
		{
			Name:    "default",
			Applies: func(m Metrics) bool { return true },
			Pick:    func(m Metrics) Label { return fallback },
		},
	}
}
