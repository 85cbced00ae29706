package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingAlarm struct{ rings int }

func (a *countingAlarm) Ring() { a.rings++ }

func run(t *testing.T, c *Countdown, h Handle, ticks int) Event {
	t.Helper()
	var ev Event
	for i := 0; i < ticks; i++ {
		ev = c.Tick(h)
	}
	return ev
}

func TestConfigure(t *testing.T) {
	c := New(DefaultSeconds, nil)
	require.NoError(t, c.Configure(0, 1, 30))
	assert.Equal(t, 90, c.Total())
	assert.Equal(t, 90, c.Remaining())
	assert.Equal(t, "00:01:30", c.Clock())
}

func TestConfigureClampsFields(t *testing.T) {
	c := New(0, nil)
	require.NoError(t, c.Configure(30, 75, -4))
	assert.Equal(t, 23*3600+59*60, c.Total())

	require.NoError(t, c.Configure(ParseField("abc"), ParseField(""), ParseField("12x")))
	assert.Equal(t, 12, c.Total())
}

func TestConfigureRejectedWhileRunning(t *testing.T) {
	c := New(60, nil)
	_, err := c.Start()
	require.NoError(t, err)
	assert.ErrorIs(t, c.Configure(0, 0, 5), ErrRunning)
	assert.Equal(t, 60, c.Total())
}

func TestRunsToCompletion(t *testing.T) {
	alarm := &countingAlarm{}
	c := New(0, alarm)
	require.NoError(t, c.Configure(0, 1, 30))

	h, err := c.Start()
	require.NoError(t, err)
	require.NotZero(t, h)
	assert.Equal(t, StatusRunning, c.Status())

	assert.Equal(t, EventTick, run(t, c, h, 89))
	assert.Equal(t, 1, c.Remaining())
	assert.Equal(t, EventComplete, c.Tick(h))

	assert.Equal(t, 0, c.Remaining())
	assert.False(t, c.Running())
	assert.Zero(t, c.Handle())
	assert.Equal(t, StatusDone, c.Status())
	assert.Equal(t, "Time's up!", c.Status().String())
	assert.Equal(t, 1, alarm.rings)

	assert.Equal(t, EventNone, c.Tick(h))
	assert.Equal(t, 0, c.Remaining())
}

func TestSilentCompletion(t *testing.T) {
	alarm := &countingAlarm{}
	c := New(2, alarm)
	c.SetSound(false)
	h, _ := c.Start()
	run(t, c, h, 2)
	assert.Equal(t, StatusDone, c.Status())
	assert.Zero(t, alarm.rings)
}

func TestStartWithNothingRemainingIsNoop(t *testing.T) {
	c := New(0, nil)
	h, err := c.Start()
	require.NoError(t, err)
	assert.Zero(t, h)
	assert.False(t, c.Running())
	assert.Equal(t, StatusReady, c.Status())
}

func TestSecondStartRejected(t *testing.T) {
	c := New(10, nil)
	h, err := c.Start()
	require.NoError(t, err)

	h2, err := c.Start()
	assert.ErrorIs(t, err, ErrRunning)
	assert.Zero(t, h2)

	c.Tick(h)
	assert.Equal(t, 9, c.Remaining())
}

func TestPauseResumeContinuesFromRemaining(t *testing.T) {
	c := New(60, nil)
	h, _ := c.Start()
	run(t, c, h, 20)
	c.Pause()
	assert.Equal(t, StatusPaused, c.Status())
	assert.False(t, c.Running())

	assert.Equal(t, EventNone, c.Tick(h), "stale handle must be ignored")
	assert.Equal(t, 40, c.Remaining())

	h2, err := c.Start()
	require.NoError(t, err)
	assert.NotEqual(t, h, h2)
	assert.Equal(t, 40, c.Remaining())
	c.Tick(h2)
	assert.Equal(t, 39, c.Remaining())
}

func TestPauseIsIdempotent(t *testing.T) {
	c := New(60, nil)
	c.Pause()
	assert.Equal(t, StatusReady, c.Status())

	h, _ := c.Start()
	c.Tick(h)
	c.Pause()
	c.Pause()
	assert.Equal(t, StatusPaused, c.Status())
	assert.Equal(t, 59, c.Remaining())
}

func TestReset(t *testing.T) {
	c := New(30, nil)
	h, _ := c.Start()
	run(t, c, h, 12)
	c.Reset()
	assert.Equal(t, 30, c.Remaining())
	assert.False(t, c.Running())
	assert.Equal(t, StatusReady, c.Status())
	assert.Equal(t, EventNone, c.Tick(h))

	c.Pause()
	c.Reset()
	assert.Equal(t, 30, c.Remaining())
}

func TestCloseReleasesHandle(t *testing.T) {
	c := New(30, nil)
	h, _ := c.Start()
	c.Close()
	assert.False(t, c.Running())
	assert.Equal(t, EventNone, c.Tick(h))
	assert.Equal(t, 30, c.Remaining())
}

func TestProgress(t *testing.T) {
	c := New(4, nil)
	assert.Zero(t, c.Progress())
	h, _ := c.Start()
	c.Tick(h)
	assert.InDelta(t, 0.25, c.Progress(), 1e-9)

	empty := New(0, nil)
	assert.Zero(t, empty.Progress())
}

func TestRemainingNeverExceedsTotal(t *testing.T) {
	c := New(5, nil)
	h, _ := c.Start()
	for i := 0; i < 10; i++ {
		c.Tick(h)
		assert.GreaterOrEqual(t, c.Remaining(), 0)
		assert.LessOrEqual(t, c.Remaining(), c.Total())
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:15:00", FormatClock(DefaultSeconds))
	assert.Equal(t, "23:59:59", FormatClock(MaxSeconds))
	assert.Equal(t, "00:00:00", FormatClock(-3))
}

func TestParseField(t *testing.T) {
	assert.Equal(t, 7, ParseField(" 7 "))
	assert.Equal(t, 42, ParseField("42abc"))
	assert.Equal(t, 0, ParseField("x1"))
	assert.Equal(t, -3, ParseField("-3"))
}

func TestSplit(t *testing.T) {
	h, m, s := Split(3723)
	assert.Equal(t, []int{1, 2, 3}, []int{h, m, s})
}
