package timing

import (
	"testing"
	"time"
)

var t0 = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func TestActivityTracker_AccumulatesShortGaps(t *testing.T) {
	tr := NewActivityTracker(0)
	tr.RecordActivity(t0, 1)
	tr.RecordActivity(t0.Add(5*time.Second), 2)
	tr.RecordActivity(t0.Add(12*time.Second), 3)

	if got := tr.ElapsedActiveSeconds(); got != 12 {
		t.Errorf("ElapsedActiveSeconds() = %v, want 12", got)
	}
}

func TestActivityTracker_IdleGapExcluded(t *testing.T) {
	tr := NewActivityTracker(20 * time.Second)
	tr.RecordActivity(t0, 1)
	tr.RecordActivity(t0.Add(3*time.Second), 2)
	// Exactly at the threshold counts as idle.
	tr.RecordActivity(t0.Add(23*time.Second), 3)
	// After an idle gap the next short gap is measured from the last edit.
	tr.RecordActivity(t0.Add(25*time.Second), 4)
	tr.RecordActivity(t0.Add(90*time.Second), 5)

	if got := tr.ElapsedActiveSeconds(); got != 5 {
		t.Errorf("ElapsedActiveSeconds() = %v, want 5", got)
	}
}

func TestActivityTracker_StartsOnFirstNonEmptyEdit(t *testing.T) {
	tr := NewActivityTracker(0)
	tr.RecordActivity(t0, 0)
	tr.RecordActivity(t0.Add(2*time.Second), 0)
	if tr.Started() {
		t.Fatal("tracker started on empty text")
	}

	tr.RecordActivity(t0.Add(10*time.Second), 1)
	tr.RecordActivity(t0.Add(14*time.Second), 2)
	if got := tr.ElapsedActiveSeconds(); got != 4 {
		t.Errorf("ElapsedActiveSeconds() = %v, want 4", got)
	}
}

func TestActivityTracker_ClearingTextKeepsCounting(t *testing.T) {
	tr := NewActivityTracker(0)
	tr.RecordActivity(t0, 5)
	tr.RecordActivity(t0.Add(time.Second), 0)
	tr.RecordActivity(t0.Add(3*time.Second), 2)
	if got := tr.ElapsedActiveSeconds(); got != 3 {
		t.Errorf("ElapsedActiveSeconds() = %v, want 3", got)
	}
}

func TestActivityTracker_Freeze(t *testing.T) {
	tr := NewActivityTracker(0)
	tr.RecordActivity(t0, 1)
	tr.RecordActivity(t0.Add(4*time.Second), 2)
	tr.Freeze()
	tr.RecordActivity(t0.Add(6*time.Second), 3)

	if !tr.Frozen() {
		t.Error("Frozen() = false after Freeze")
	}
	if got := tr.ElapsedActiveSeconds(); got != 4 {
		t.Errorf("ElapsedActiveSeconds() = %v, want 4", got)
	}
}

func TestActivityTracker_ClockGoingBackwards(t *testing.T) {
	tr := NewActivityTracker(0)
	tr.RecordActivity(t0.Add(10*time.Second), 1)
	tr.RecordActivity(t0, 2)
	tr.RecordActivity(t0.Add(2*time.Second), 3)
	if got := tr.ElapsedActiveSeconds(); got != 2 {
		t.Errorf("ElapsedActiveSeconds() = %v, want 2", got)
	}
}

func TestNewActivityTracker_DefaultThreshold(t *testing.T) {
	if got := NewActivityTracker(-1).Threshold(); got != DefaultIdleThreshold {
		t.Errorf("Threshold() = %v, want %v", got, DefaultIdleThreshold)
	}
}
