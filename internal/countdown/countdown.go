// Package countdown turns a start date and a target span into the remaining
// time shown on screen, and tracks which target is being refreshed.
package countdown

import "time"

const (
	Day  = 24 * time.Hour
	Week = 7 * Day
)

// Remaining is one rendering of the countdown.
type Remaining struct {
	Days         int64
	Hours        int
	Minutes      int
	Seconds      int
	WeeksElapsed int
}

// Zero reports whether the target date has been reached.
func (r Remaining) Zero() bool {
	return r.Days == 0 && r.Hours == 0 && r.Minutes == 0 && r.Seconds == 0
}

// Duration rebuilds the time left from the decomposed fields.
func (r Remaining) Duration() time.Duration {
	return time.Duration(r.Days)*Day +
		time.Duration(r.Hours)*time.Hour +
		time.Duration(r.Minutes)*time.Minute +
		time.Duration(r.Seconds)*time.Second
}

// DueDate adds the target's weeks to start as calendar days.
func DueDate(start time.Time, target Target) time.Time {
	return start.AddDate(0, 0, target.Weeks()*7)
}

// Compute returns the time left until the target date, as seen at now.
// Once the target date is reached the duration fields stay at zero while
// WeeksElapsed keeps counting.
func Compute(start time.Time, target Target, now time.Time) Remaining {
	r := Remaining{WeeksElapsed: WeeksElapsed(start, now)}

	left := DueDate(start, target).Sub(now)
	if left <= 0 {
		return r
	}

	left = left.Truncate(time.Second)
	r.Days = int64(left / Day)
	r.Hours = int(left/time.Hour) % 24
	r.Minutes = int(left/time.Minute) % 60
	r.Seconds = int(left/time.Second) % 60
	return r
}

// WeeksElapsed counts whole weeks from start to now. A start date in the
// future yields zero.
func WeeksElapsed(start, now time.Time) int {
	d := now.Sub(start)
	if d < 0 {
		return 0
	}
	return int(d / Week)
}

// Progress is the elapsed share of the target span, in [0, 1].
func Progress(start time.Time, target Target, now time.Time) float64 {
	span := DueDate(start, target).Sub(start)
	if span <= 0 {
		return 1
	}
	p := float64(now.Sub(start)) / float64(span)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// OnDay moves now onto the calendar date of day, keeping now's time of day.
// This is how a picked date becomes a start date.
func OnDay(day, now time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(),
		now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), now.Location())
}
