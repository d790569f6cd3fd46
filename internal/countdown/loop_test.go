package countdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopStartsIdle(t *testing.T) {
	l := NewLoop(date(2024, 1, 1))
	assert.False(t, l.Running())

	_, ok := l.Tick(l.Epoch(), date(2024, 1, 8))
	assert.False(t, ok, "idle loop must not render")
}

func TestLoopStartAndTick(t *testing.T) {
	l := NewLoop(date(2024, 1, 1))
	e := l.Start(Primary)
	require.True(t, l.Running())
	assert.Equal(t, Primary, l.Target())

	r, ok := l.Tick(e, date(2024, 1, 8))
	require.True(t, ok)
	assert.Equal(t, Remaining{Days: 272, WeeksElapsed: 1}, r)
}

func TestLoopSwitchCancelsPreviousEpoch(t *testing.T) {
	l := NewLoop(date(2024, 1, 1))
	first := l.Start(Primary)
	second := l.Start(Secondary)
	assert.NotEqual(t, first, second)

	_, ok := l.Tick(first, date(2024, 1, 8))
	assert.False(t, ok)

	r, ok := l.Tick(second, date(2024, 1, 8))
	require.True(t, ok)
	assert.Equal(t, int64(98), r.Days)
}

// A→B→A inside one interval: three ticks are in flight, only the last one
// may render and reschedule.
func TestLoopRapidSwitchLeavesOneLiveChain(t *testing.T) {
	l := NewLoop(date(2024, 1, 1))
	pending := []Epoch{l.Start(Primary), l.Start(Secondary), l.Start(Primary)}

	now := date(2024, 1, 8)
	var renders []Target
	for round := 0; round < 5; round++ {
		var next []Epoch
		for _, e := range pending {
			if _, ok := l.Tick(e, now); ok {
				renders = append(renders, l.Target())
				next = append(next, e)
			}
		}
		pending = next
		now = now.Add(Interval)
	}

	assert.Len(t, pending, 1)
	assert.Len(t, renders, 5)
	for _, tg := range renders {
		assert.Equal(t, Primary, tg)
	}
}

func TestLoopStop(t *testing.T) {
	l := NewLoop(date(2024, 1, 1))
	e := l.Start(Secondary)
	l.Stop()
	assert.False(t, l.Running())

	_, ok := l.Tick(e, date(2024, 1, 8))
	assert.False(t, ok)

	// Stopping twice is harmless.
	l.Stop()
	assert.False(t, l.Running())
}

func TestLoopRestartAfterStartDateChange(t *testing.T) {
	l := NewLoop(date(2024, 1, 1))
	old := l.Start(Secondary)

	l.SetStart(date(2024, 2, 1))
	e, ok := l.Restart()
	require.True(t, ok)
	assert.False(t, l.Live(old))
	assert.Equal(t, Secondary, l.Target())

	r, ok := l.Tick(e, date(2024, 2, 1))
	require.True(t, ok)
	assert.Equal(t, int64(105), r.Days)
	assert.Equal(t, date(2024, 2, 1), l.StartDate())
}

func TestLoopRestartWhileIdle(t *testing.T) {
	l := NewLoop(date(2024, 1, 1))
	_, ok := l.Restart()
	assert.False(t, ok)
	assert.False(t, l.Running())
}

func TestLoopTickUsesFreshNow(t *testing.T) {
	l := NewLoop(date(2024, 1, 1))
	e := l.Start(Primary)
	now := date(2024, 1, 8)

	a, _ := l.Tick(e, now)
	// A late tick recomputes from the clock instead of decrementing.
	b, _ := l.Tick(e, now.Add(3*time.Second+200*time.Millisecond))
	assert.Equal(t, a.Duration()-4*time.Second, b.Duration())
}
