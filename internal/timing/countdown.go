package timing

import (
	"fmt"
	"time"
)

// Standard session lengths.
const (
	ShortSession = 15 * time.Minute
	LongSession  = 30 * time.Minute
)

// Countdown is the wall-clock deadline of a writing session.
type Countdown struct {
	start    time.Time
	duration time.Duration
}

// NewCountdown starts a countdown of d at start.
func NewCountdown(start time.Time, d time.Duration) Countdown {
	return Countdown{start: start, duration: d}
}

// Deadline returns the instant the countdown reaches zero.
func (c Countdown) Deadline() time.Time {
	return c.start.Add(c.duration)
}

// Duration returns the total length of the countdown.
func (c Countdown) Duration() time.Duration {
	return c.duration
}

// Elapsed returns the wall-clock time since start, capped at the duration.
func (c Countdown) Elapsed(now time.Time) time.Duration {
	e := now.Sub(c.start)
	if e < 0 {
		return 0
	}
	return min(e, c.duration)
}

// Remaining returns the time left, never negative.
func (c Countdown) Remaining(now time.Time) time.Duration {
	r := c.Deadline().Sub(now)
	if r < 0 {
		return 0
	}
	return r
}

// Expired reports whether the deadline has been reached.
func (c Countdown) Expired(now time.Time) bool {
	return !now.Before(c.Deadline())
}

// FormatClock renders d as MM:SS, rounding up to the next whole second so a
// running clock shows 00:00 only once it has expired.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// FromSeconds converts fractional seconds to a Duration.
func FromSeconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
