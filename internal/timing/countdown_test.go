package timing

import (
	"testing"
	"time"
)

func TestCountdown(t *testing.T) {
	c := NewCountdown(t0, ShortSession)

	tests := []struct {
		at        time.Duration
		remaining time.Duration
		expired   bool
	}{
		{0, 15 * time.Minute, false},
		{14*time.Minute + 59*time.Second, time.Second, false},
		{15 * time.Minute, 0, true},
		{20 * time.Minute, 0, true},
	}
	for _, tt := range tests {
		now := t0.Add(tt.at)
		if got := c.Remaining(now); got != tt.remaining {
			t.Errorf("Remaining(+%v) = %v, want %v", tt.at, got, tt.remaining)
		}
		if got := c.Expired(now); got != tt.expired {
			t.Errorf("Expired(+%v) = %v, want %v", tt.at, got, tt.expired)
		}
	}
}

func TestCountdown_Elapsed(t *testing.T) {
	c := NewCountdown(t0, time.Minute)
	if got := c.Elapsed(t0.Add(-time.Second)); got != 0 {
		t.Errorf("Elapsed(before start) = %v, want 0", got)
	}
	if got := c.Elapsed(t0.Add(2 * time.Minute)); got != time.Minute {
		t.Errorf("Elapsed(after deadline) = %v, want 1m", got)
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{15 * time.Minute, "15:00"},
		{90 * time.Second, "01:30"},
		{500 * time.Millisecond, "00:01"},
		{0, "00:00"},
		{-time.Second, "00:00"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.d); got != tt.want {
			t.Errorf("FormatClock(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFromSeconds(t *testing.T) {
	if got := FromSeconds(1.5); got != 1500*time.Millisecond {
		t.Errorf("FromSeconds(1.5) = %v, want 1.5s", got)
	}
	if got := FromSeconds(0); got != 0 {
		t.Errorf("FromSeconds(0) = %v, want 0", got)
	}
}
