// Package timing measures active writing time and session deadlines.
package timing

import "time"

// DefaultIdleThreshold is the gap between two edits at or above which the
// writer is assumed to have stepped away.
const DefaultIdleThreshold = 20 * time.Second

// ActivityTracker accumulates active writing time from edit events.
//
// Only gaps shorter than the idle threshold count. Accumulation starts on
// the first edit with non-empty text and stops for good after Freeze.
// A tracker has a single writer and a single reader and is not safe for
// concurrent use.
type ActivityTracker struct {
	threshold time.Duration
	started   bool
	frozen    bool
	last      time.Time
	active    time.Duration
}

// NewActivityTracker returns a tracker with the given idle threshold.
// A non-positive threshold uses DefaultIdleThreshold.
func NewActivityTracker(threshold time.Duration) *ActivityTracker {
	if threshold <= 0 {
		threshold = DefaultIdleThreshold
	}
	return &ActivityTracker{threshold: threshold}
}

// RecordActivity registers an edit at ts that left textLen characters in
// the response.
func (t *ActivityTracker) RecordActivity(ts time.Time, textLen int) {
	if t.frozen {
		return
	}
	if !t.started {
		if textLen == 0 {
			return
		}
		t.started = true
		t.last = ts
		return
	}
	if gap := ts.Sub(t.last); gap > 0 && gap < t.threshold {
		t.active += gap
	}
	t.last = ts
}

// Freeze stops accumulation. Later activity is ignored.
func (t *ActivityTracker) Freeze() {
	t.frozen = true
}

// Started reports whether the first non-empty edit has been seen.
func (t *ActivityTracker) Started() bool {
	return t.started
}

// Frozen reports whether Freeze has been called.
func (t *ActivityTracker) Frozen() bool {
	return t.frozen
}

// Threshold returns the idle threshold in use.
func (t *ActivityTracker) Threshold() time.Duration {
	return t.threshold
}

// Active returns the accumulated active writing time.
func (t *ActivityTracker) Active() time.Duration {
	return t.active
}

// ElapsedActiveSeconds returns the accumulated active writing time in seconds.
func (t *ActivityTracker) ElapsedActiveSeconds() float64 {
	return t.active.Seconds()
}
