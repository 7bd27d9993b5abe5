package stats

import (
	"testing"
	"time"

	"github.com/abhisek/solidstats/internal/class"
)

func onDay(y int, m time.Month, d int) class.Record {
	return class.Record{Date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func TestLongestStreak(t *testing.T) {
	tests := []struct {
		name    string
		records []class.Record
		want    int
	}{
		{"empty", nil, 0},
		{"single day", []class.Record{onDay(2024, time.January, 1)}, 1},
		{
			"run with a gap",
			[]class.Record{
				onDay(2024, time.January, 1),
				onDay(2024, time.January, 2),
				onDay(2024, time.January, 3),
				onDay(2024, time.January, 5),
			},
			3,
		},
		{
			"longest run at the end",
			[]class.Record{
				onDay(2024, time.January, 1),
				onDay(2024, time.January, 3),
				onDay(2024, time.January, 4),
				onDay(2024, time.January, 5),
				onDay(2024, time.January, 6),
			},
			4,
		},
		{
			"two classes same day count once",
			[]class.Record{
				onDay(2024, time.January, 1),
				onDay(2024, time.January, 1),
				onDay(2024, time.January, 2),
			},
			2,
		},
		{
			"unsorted input",
			[]class.Record{
				onDay(2024, time.January, 3),
				onDay(2024, time.January, 1),
				onDay(2024, time.January, 2),
			},
			3,
		},
		{
			"across month boundary",
			[]class.Record{
				onDay(2024, time.January, 31),
				onDay(2024, time.February, 1),
			},
			2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LongestStreak(tt.records); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}
