package theme

import (
	"testing"

	"github.com/abhisek/watcrack/internal/stats"
)

func TestNewAndToggle(t *testing.T) {
	th := New(stats.ThemeLight)
	if th.Name() != stats.ThemeLight || th.P != Light {
		t.Fatalf("New(light) = %s", th.Name())
	}

	if got := th.Toggle(); got != stats.ThemeDark {
		t.Errorf("Toggle() = %s, want dark", got)
	}
	if th.P != Dark {
		t.Error("palette not switched to dark")
	}

	th.Toggle()
	if th.Name() != stats.ThemeLight || th.P != Light {
		t.Error("second toggle did not return to light")
	}
}

func TestNewUnknownFallsBackToLight(t *testing.T) {
	if th := New(stats.Theme("sepia")); th.Name() != stats.ThemeLight {
		t.Errorf("New(sepia) = %s, want light", th.Name())
	}
}

func TestInstancesAreIndependent(t *testing.T) {
	a := New(stats.ThemeLight)
	b := New(stats.ThemeLight)
	a.Toggle()
	if b.Name() != stats.ThemeLight {
		t.Error("toggling one theme changed another")
	}
}

func TestClockColor(t *testing.T) {
	th := New(stats.ThemeDark)
	tests := []struct {
		secs int
		want any
	}{
		{900, th.P.Text},
		{300, th.P.Warning},
		{60, th.P.Error},
		{0, th.P.Error},
	}
	for _, tt := range tests {
		if got := th.ClockColor(tt.secs); got != tt.want {
			t.Errorf("ClockColor(%d) = %v, want %v", tt.secs, got, tt.want)
		}
	}
}
