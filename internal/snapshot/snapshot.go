// Package snapshot renders the countdown state at one instant for the
// non-interactive status command.
package snapshot

import (
	"fmt"
	"time"

	"github.com/sadopc/duetrackr/internal/countdown"
	"github.com/sadopc/duetrackr/internal/store"
)

type Snapshot struct {
	TakenAt   time.Time
	StartDate time.Time
	Category  store.Category
	Active    countdown.Target
	Targets   []TargetState

	// DefaultStart is set when no start date has been saved yet.
	DefaultStart bool
}

type TargetState struct {
	Target    countdown.Target
	DueDate   time.Time
	Remaining countdown.Remaining
	Progress  float64
}

// Build computes every target at now. active only marks which one the
// caller asked for.
func Build(start time.Time, category store.Category, active countdown.Target, now time.Time) Snapshot {
	s := Snapshot{
		TakenAt:   now,
		StartDate: start,
		Category:  category,
		Active:    active,
	}
	for _, t := range countdown.Targets() {
		s.Targets = append(s.Targets, TargetState{
			Target:    t,
			DueDate:   countdown.DueDate(start, t),
			Remaining: countdown.Compute(start, t, now),
			Progress:  countdown.Progress(start, t, now),
		})
	}
	return s
}

// ActiveState returns the state of the active target.
func (s Snapshot) ActiveState() TargetState {
	for _, ts := range s.Targets {
		if ts.Target == s.Active {
			return ts
		}
	}
	return TargetState{}
}

func formatRemaining(r countdown.Remaining) string {
	return fmt.Sprintf("%dd %02d:%02d:%02d", r.Days, r.Hours, r.Minutes, r.Seconds)
}
