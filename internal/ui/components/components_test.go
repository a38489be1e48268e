package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/watcrack/internal/stats"
	"github.com/abhisek/watcrack/internal/ui/theme"
)

type pickedMsg string

func TestMenuSkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Off", Disabled: true},
		{Label: "One", Action: func() tea.Cmd { return func() tea.Msg { return pickedMsg("one") } }},
		{Label: "Off again", Disabled: true},
		{Label: "Two", Action: func() tea.Cmd { return func() tea.Msg { return pickedMsg("two") } }},
	})
	if m.Selected != 1 {
		t.Fatalf("initial selection = %d, want 1", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("after down = %d, want 3", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 1 {
		t.Errorf("after up = %d, want 1", m.Selected)
	}

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter returned no command")
	}
	if got := cmd(); got != pickedMsg("one") {
		t.Errorf("action msg = %v, want one", got)
	}
}

func TestMenuView(t *testing.T) {
	th := theme.New(stats.ThemeLight)
	m := NewMenu([]MenuItem{{Label: "Start"}, {Label: "Quit"}})
	view := m.View(th)
	if !strings.Contains(view, "▸ Start") || !strings.Contains(view, "Quit") {
		t.Errorf("view = %q", view)
	}
}

func TestProgressBarFilled(t *testing.T) {
	tests := []struct {
		value, cells, want int
	}{
		{0, 20, 0},
		{50, 20, 10},
		{100, 20, 20},
		{130, 20, 20},
		{-5, 20, 0},
	}
	for _, tt := range tests {
		p := NewProgressBar("", tt.value, 40)
		if got := p.Filled(tt.cells); got != tt.want {
			t.Errorf("Filled(%d) at %d = %d, want %d", tt.cells, tt.value, got, tt.want)
		}
	}
}

func TestBulletsEmpty(t *testing.T) {
	th := theme.New(stats.ThemeDark)
	if got := Bullets("Strengths", th.Good(), "+", nil, 40); got != "" {
		t.Errorf("Bullets(nil) = %q, want empty", got)
	}
	got := Bullets("Strengths", th.Good(), "+", []string{"Clear intro"}, 40)
	if !strings.Contains(got, "Strengths") || !strings.Contains(got, "+ Clear intro") {
		t.Errorf("Bullets = %q", got)
	}
}
