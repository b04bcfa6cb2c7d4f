package week

import (
	"time"

	"github.com/julianstephens/weekboard/internal/constants"
)

// DayNames are the Monday-first weekday labels for the board header.
var DayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Day describes one column of the visible week.
type Day struct {
	Name      string // weekday label, e.g. "Monday"
	DateLabel string // short label, e.g. "3 Nov"
	Year      int
	ISO       string // canonical bucket key, YYYY-MM-DD
}

// DateKey converts a time to the canonical bucket key.
func DateKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// Monday returns the Monday of the week at the given offset from the current
// week (0 = this week, -1 = previous, +1 = next).
func Monday(offset int) time.Time {
	return mondayFrom(time.Now(), offset)
}

func mondayFrom(now time.Time, offset int) time.Time {
	now = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	// time.Weekday starts at Sunday; shift so Monday is day 0.
	back := (int(now.Weekday()) + 6) % 7
	return now.AddDate(0, 0, -back+offset*7)
}

// Dates returns exactly 7 entries, Monday first, for the week at the given
// offset.
func Dates(offset int) []Day {
	return datesFrom(time.Now(), offset)
}

func datesFrom(now time.Time, offset int) []Day {
	start := mondayFrom(now, offset)
	days := make([]Day, 7)
	for i := range days {
		d := start.AddDate(0, 0, i)
		days[i] = Day{
			Name:      DayNames[i],
			DateLabel: d.Format("2 Jan"),
			Year:      d.Year(),
			ISO:       DateKey(d),
		}
	}
	return days
}

// DayIndex returns the Monday-first index (0-6) for a date.
func DayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
