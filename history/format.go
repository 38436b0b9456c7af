package history

import (
	"fmt"
	"time"
)

const (
	day   = 24 * time.Hour
	week  = 7 * day
	month = 30 * day
	year  = 365 * day
)

// ageUnits are checked in order; the first whose bound exceeds the age
// labels it.
var ageUnits = []struct {
	below  time.Duration
	unit   time.Duration
	suffix string
}{
	{time.Hour, time.Minute, "m"},
	{day, time.Hour, "h"},
	{week, day, "d"},
	{month, week, "w"},
	{year, month, "mo"},
}

// RelativeTime describes how long ago a word was last looked up, as shown in
// the history listing ("just now", "5m ago", "2w ago").
func RelativeTime(lastSeen, now time.Time) string {
	age := now.Sub(lastSeen)
	if age < time.Minute {
		return "just now"
	}
	for _, u := range ageUnits {
		if age < u.below {
			return fmt.Sprintf("%d%s ago", int64(age/u.unit), u.suffix)
		}
	}
	return fmt.Sprintf("%dy ago", int64(age/year))
}
