package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/watcrack/internal/stats"
	"github.com/abhisek/watcrack/internal/ui/theme"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{79, 24, true},
		{80, 23, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestRenderHeader(t *testing.T) {
	th := theme.New(stats.ThemeLight)
	out := RenderHeader(th, "Writing", HeaderStats{Points: 120, Tests: 3}, 100)
	for _, want := range []string{"watcrack", "Writing", "120 pts", "3 tests"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestRenderFrameHeight(t *testing.T) {
	th := theme.New(stats.ThemeDark)
	header := RenderHeader(th, "", HeaderStats{}, 80)
	footer := RenderFooter(th, []KeyHint{{Key: "Esc", Description: "Back"}}, 80)
	frame := RenderFrame(header, "body", footer, 80, 24)
	if h := lipgloss.Height(frame); h != 24 {
		t.Errorf("frame height = %d, want 24", h)
	}
}
