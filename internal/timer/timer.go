// Package timer contains the countdown widget's state machine.
//
// A Countdown never schedules anything itself. Start hands out a Handle and
// the caller delivers one Tick per second carrying that handle; Pause, Reset,
// completion and Close all release it, after which ticks carrying the old
// handle are ignored. This keeps at most one live tick registration per
// countdown regardless of how the caller schedules ticks.
package timer

import (
	"errors"
	"log/slog"
)

// DefaultSeconds is the duration a freshly opened timer shows (15 minutes).
const DefaultSeconds = 15 * 60

// MaxSeconds is 23:59:59.
const MaxSeconds = 23*3600 + 59*60 + 59

// ErrRunning is returned by operations that are not permitted while counting down.
var ErrRunning = errors.New("timer: already running")

// Status is the countdown's run state as shown under the clock.
type Status int

const (
	StatusReady Status = iota
	StatusRunning
	StatusPaused
	StatusDone
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "Running..."
	case StatusPaused:
		return "Paused"
	case StatusDone:
		return "Time's up!"
	}
	return "Ready to start"
}

// Event tells the scheduler what a tick did.
type Event int

const (
	// EventNone: the tick was stale or the timer is stopped; do not re-arm.
	EventNone Event = iota
	// EventTick: one second elapsed; re-arm.
	EventTick
	// EventComplete: the countdown reached zero; do not re-arm.
	EventComplete
)

// Handle identifies the live tick registration. Zero means none.
type Handle uint64

// Alarm is rung when a countdown completes with sound enabled.
type Alarm interface {
	Ring()
}

// Countdown is the state of one timer widget.
type Countdown struct {
	total     int
	remaining int
	running   bool
	sound     bool
	status    Status

	handle Handle
	issued Handle
	alarm  Alarm
}

// New returns a stopped countdown of total seconds with sound enabled.
// alarm may be nil.
func New(total int, alarm Alarm) *Countdown {
	total = clampTotal(total)
	return &Countdown{
		total:     total,
		remaining: total,
		sound:     true,
		alarm:     alarm,
	}
}

// Configure sets the duration from hours, minutes and seconds and rewinds to
// it. Each field is clamped to its clock range; negatives become zero.
func (c *Countdown) Configure(hours, minutes, seconds int) error {
	if c.running {
		return ErrRunning
	}
	hours = clamp(hours, 23)
	minutes = clamp(minutes, 59)
	seconds = clamp(seconds, 59)
	c.total = hours*3600 + minutes*60 + seconds
	c.remaining = c.total
	c.status = StatusReady
	return nil
}

// Start begins counting down and returns the handle that ticks must carry.
// It is a no-op returning a zero handle when nothing remains.
func (c *Countdown) Start() (Handle, error) {
	if c.running || c.handle != 0 {
		return 0, ErrRunning
	}
	if c.remaining <= 0 {
		return 0, nil
	}
	c.issued++
	c.handle = c.issued
	c.running = true
	c.status = StatusRunning
	slog.Debug("countdown started", "remaining", c.remaining, "handle", uint64(c.handle))
	return c.handle, nil
}

// Tick advances the countdown by one second if h is the live handle.
func (c *Countdown) Tick(h Handle) Event {
	if h == 0 || h != c.handle || !c.running {
		return EventNone
	}
	c.remaining--
	if c.remaining <= 0 {
		c.complete()
		return EventComplete
	}
	return EventTick
}

// Pause stops counting down and releases the tick handle. Pausing a stopped
// countdown changes nothing.
func (c *Countdown) Pause() {
	if !c.running {
		return
	}
	c.release()
	c.status = StatusPaused
}

// Reset stops the countdown and rewinds it to the configured duration.
func (c *Countdown) Reset() {
	c.release()
	c.remaining = c.total
	c.status = StatusReady
}

// Close releases the tick handle when the widget goes away.
func (c *Countdown) Close() {
	c.release()
}

func (c *Countdown) complete() {
	c.release()
	c.remaining = 0
	c.status = StatusDone
	slog.Debug("countdown complete", "total", c.total, "sound", c.sound)
	if c.sound && c.alarm != nil {
		c.alarm.Ring()
	}
}

func (c *Countdown) release() {
	c.running = false
	c.handle = 0
}

// SetSound enables or disables the completion alarm.
func (c *Countdown) SetSound(on bool) { c.sound = on }

// Sound reports whether the completion alarm is enabled.
func (c *Countdown) Sound() bool { return c.sound }

// Running reports whether a tick handle is live.
func (c *Countdown) Running() bool { return c.running }

// Remaining returns the seconds left.
func (c *Countdown) Remaining() int { return c.remaining }

// Total returns the configured duration in seconds.
func (c *Countdown) Total() int { return c.total }

// Status returns the current run state.
func (c *Countdown) Status() Status { return c.status }

// Handle returns the live tick handle, zero when stopped.
func (c *Countdown) Handle() Handle { return c.handle }

// Clock formats the remaining time as HH:MM:SS.
func (c *Countdown) Clock() string { return FormatClock(c.remaining) }

// Progress is the elapsed fraction 1 - remaining/total, zero when total is zero.
func (c *Countdown) Progress() float64 {
	if c.total <= 0 {
		return 0
	}
	return 1 - float64(c.remaining)/float64(c.total)
}

func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

func clampTotal(total int) int {
	if total < 0 {
		return 0
	}
	if total > MaxSeconds {
		return MaxSeconds
	}
	return total
}
