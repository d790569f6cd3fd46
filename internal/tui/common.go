package tui

import (
	"fmt"
	"time"

	"github.com/sadopc/duetrackr/internal/countdown"
	"github.com/sadopc/duetrackr/internal/store"
)

// --- Messages ---

// tickMsg is one refresh of the countdown. Ticks from a cancelled epoch are
// dropped by the loop.
type tickMsg struct {
	epoch countdown.Epoch
}

type statusMsg struct {
	text    string
	isError bool
}

type categoryChangedMsg struct {
	category store.Category
}

type startDateChangedMsg struct {
	start time.Time
}

// --- Helpers ---

func formatDays(days int64) string {
	return fmt.Sprintf("%d", days)
}

func formatClockField(v int) string {
	return fmt.Sprintf("%02d", v)
}

func formatRemaining(r countdown.Remaining) string {
	return fmt.Sprintf("%dd %02d:%02d:%02d", r.Days, r.Hours, r.Minutes, r.Seconds)
}
