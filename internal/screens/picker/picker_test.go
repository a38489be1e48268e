package picker

import (
	"encoding/json"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/watcrack/internal/config"
	"github.com/abhisek/watcrack/internal/llm"
	"github.com/abhisek/watcrack/internal/router"
	"github.com/abhisek/watcrack/internal/screen"
	"github.com/abhisek/watcrack/internal/screens/writing"
	"github.com/abhisek/watcrack/internal/stats"
	"github.com/abhisek/watcrack/internal/topics"
	"github.com/abhisek/watcrack/internal/ui/theme"
)

func newTestEnv() *screen.Env {
	p := stats.NewProfile()
	return &screen.Env{
		Theme:   theme.New(stats.ThemeLight),
		Profile: &p,
		Config:  *config.Default(),
	}
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// spinToStop presses space and drains every animation tick.
func spinToStop(t *testing.T, p *PickerScreen) {
	t.Helper()
	_, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	if cmd == nil {
		t.Fatal("space should start the spin")
	}
	if !p.spinning {
		t.Fatal("expected spinning after space")
	}
	for i := 0; i <= topics.SpinFrames; i++ {
		p.Update(spinTickMsg{})
	}
	if p.spinning {
		t.Fatal("spin should stop after all frames")
	}
}

func TestSpinLandsOnTopic(t *testing.T) {
	p := New(newTestEnv())
	if _, ok := p.Chosen(); ok {
		t.Fatal("no topic should be chosen before spinning")
	}

	spinToStop(t, p)

	got, ok := p.Chosen()
	if !ok {
		t.Fatal("expected a chosen topic")
	}
	if _, known := topics.Lookup(got.ID); !known {
		t.Errorf("chosen topic %q is not in the bank", got.ID)
	}
}

func TestKeysIgnoredWhileSpinning(t *testing.T) {
	p := New(newTestEnv())
	p.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})

	before := p.duration
	p.Update(key('d'))
	if p.duration != before {
		t.Error("duration should not change mid-spin")
	}
}

func TestDurationToggle(t *testing.T) {
	p := New(newTestEnv())
	if p.Duration() != 15*time.Minute {
		t.Fatalf("default duration = %v, want 15m", p.Duration())
	}
	p.Update(key('d'))
	if p.Duration() != 30*time.Minute {
		t.Errorf("after toggle = %v, want 30m", p.Duration())
	}
	p.Update(key('d'))
	if p.Duration() != 15*time.Minute {
		t.Errorf("after second toggle = %v, want 15m", p.Duration())
	}
}

func TestDurationFollowsPreference(t *testing.T) {
	env := newTestEnv()
	env.Profile.Preferences.DefaultDuration = 30 * time.Minute
	p := New(env)
	if p.Duration() != 30*time.Minute {
		t.Errorf("duration = %v, want preferred 30m", p.Duration())
	}
}

func TestCategoryFilter(t *testing.T) {
	p := New(newTestEnv())
	p.Update(key('c'))
	if p.categoryFilter() != topics.Economics {
		t.Fatalf("category = %q, want Economics", p.categoryFilter())
	}

	spinToStop(t, p)
	got, _ := p.Chosen()
	if got.Category != topics.Economics {
		t.Errorf("chosen category = %q, want Economics", got.Category)
	}

	for range topics.Categories {
		p.Update(key('c'))
	}
	if p.categoryFilter() != "" {
		t.Errorf("category should wrap back to all, got %q", p.categoryFilter())
	}
}

func TestEnterStartsWriting(t *testing.T) {
	p := New(newTestEnv())
	spinToStop(t, p)

	_, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter with a chosen topic should start writing")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	w, ok := msg.Screen.(*writing.WritingScreen)
	if !ok {
		t.Fatalf("expected writing screen, got %T", msg.Screen)
	}
	chosen, _ := p.Chosen()
	if w.Session().Topic.ID != chosen.ID {
		t.Errorf("session topic = %q, want %q", w.Session().Topic.ID, chosen.ID)
	}
}

func TestGenerateAddsTopics(t *testing.T) {
	env := newTestEnv()
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"topics":[
		{"title":"Is Remote Work Here to Stay?","category":"Economics","difficulty":"Easy"}
	]}`)})
	env.Generator = topics.NewGenerator(mock, topics.All(), nil)
	p := New(env)
	before := len(p.pool)

	_, cmd := p.Update(key('g'))
	if cmd == nil {
		t.Fatal("g should request topics")
	}
	p.Update(cmd())

	if len(p.pool) != before+1 {
		t.Errorf("pool = %d, want %d", len(p.pool), before+1)
	}
	if p.generating {
		t.Error("generating flag should clear")
	}
}

func TestGenerateDisabledWithoutProvider(t *testing.T) {
	p := New(newTestEnv())
	if _, cmd := p.Update(key('g')); cmd != nil {
		t.Error("g without a generator should do nothing")
	}
}

func TestEscPops(t *testing.T) {
	p := New(newTestEnv())
	_, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("esc should pop")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}
