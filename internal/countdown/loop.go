package countdown

import "time"

// Interval is the refresh cadence of a running loop.
const Interval = time.Second

// Epoch identifies one uninterrupted run of a single target. Ticks carry
// the epoch they were scheduled under; a tick from an older epoch is dead.
type Epoch uint64

type loopState int

const (
	loopIdle loopState = iota
	loopRunning
)

// Loop is the refresh state machine: Idle or Running(target). It does not
// own a timer; the host schedules ticks tagged with the epoch returned by
// Start and hands them back to Tick.
type Loop struct {
	state  loopState
	target Target
	start  time.Time
	epoch  Epoch
}

func NewLoop(start time.Time) *Loop {
	return &Loop{state: loopIdle, start: start}
}

// Start cancels the current epoch, if any, and begins a new one for target.
// The caller renders tick 0 right away and schedules the next tick.
func (l *Loop) Start(target Target) Epoch {
	l.epoch++
	l.state = loopRunning
	l.target = target
	return l.epoch
}

// Stop cancels the current epoch and returns to Idle.
func (l *Loop) Stop() {
	if l.state == loopIdle {
		return
	}
	l.epoch++
	l.state = loopIdle
}

// Restart begins a fresh epoch for the active target, used after the start
// date changes. It is a no-op while idle.
func (l *Loop) Restart() (Epoch, bool) {
	if l.state == loopIdle {
		return l.epoch, false
	}
	return l.Start(l.target), true
}

// Tick computes the countdown for epoch at now. It reports false when the
// epoch has been cancelled; such a tick must neither render nor reschedule.
func (l *Loop) Tick(epoch Epoch, now time.Time) (Remaining, bool) {
	if !l.Live(epoch) {
		return Remaining{}, false
	}
	return Compute(l.start, l.target, now), true
}

// Live reports whether epoch is the one currently running.
func (l *Loop) Live(epoch Epoch) bool {
	return l.state == loopRunning && epoch == l.epoch
}

func (l *Loop) SetStart(start time.Time) {
	l.start = start
}

func (l *Loop) StartDate() time.Time {
	return l.start
}

func (l *Loop) Target() Target {
	return l.target
}

func (l *Loop) Epoch() Epoch {
	return l.epoch
}

func (l *Loop) Running() bool {
	return l.state == loopRunning
}
