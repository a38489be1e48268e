package history

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/watcrack/internal/config"
	"github.com/abhisek/watcrack/internal/screen"
	"github.com/abhisek/watcrack/internal/session"
	"github.com/abhisek/watcrack/internal/stats"
	"github.com/abhisek/watcrack/internal/store"
	"github.com/abhisek/watcrack/internal/topics"
	"github.com/abhisek/watcrack/internal/ui/theme"
)

func newTestEnv(t *testing.T) *screen.Env {
	t.Helper()
	name := strings.NewReplacer("/", "_").Replace(t.Name())
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	p := stats.NewProfile()
	return &screen.Env{
		Theme:    theme.New(stats.ThemeLight),
		Profile:  &p,
		Config:   *config.Default(),
		Recorder: session.NewRecorder(st.EventRepo(), st.SnapshotRepo(), nil),
	}
}

func submit(t *testing.T, env *screen.Env, topicID, text string) *session.Result {
	t.Helper()
	topic, _ := topics.Lookup(topicID)
	now := time.Now()
	s := session.New(session.Config{Topic: topic, Profile: env.Profile, Recorder: env.Recorder}, now)
	s.Edit(text, now)
	res, err := s.Submit(context.Background(), now.Add(time.Minute), false)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	return res
}

func load(h *HistoryScreen) {
	h.Update(h.Init()())
}

func TestEmptyHistory(t *testing.T) {
	h := New(newTestEnv(t))
	load(h)
	if !strings.Contains(h.View(100, 30), "No attempts yet") {
		t.Error("expected the empty-state message")
	}
}

func TestNoRecorder(t *testing.T) {
	env := newTestEnv(t)
	env.Recorder = nil
	h := New(env)
	load(h)
	if !h.loaded || h.errMsg != "" {
		t.Errorf("loaded = %v, err = %q", h.loaded, h.errMsg)
	}
}

func TestListsAttemptsNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	submit(t, env, "1", "First response about technology.")
	submit(t, env, "2", "Second response.")

	h := New(env)
	load(h)

	if len(h.attempts) != 2 {
		t.Fatalf("attempts = %d, want 2", len(h.attempts))
	}
	second, _ := topics.Lookup("2")
	if h.attempts[0].TopicID != second.ID {
		t.Errorf("newest attempt = %q, want %q", h.attempts[0].TopicID, second.ID)
	}
}

func TestExpandShowsBadges(t *testing.T) {
	env := newTestEnv(t)
	res := submit(t, env, "1", "First response.")
	if len(res.Awards) == 0 {
		t.Fatal("first attempt should earn a badge")
	}

	h := New(env)
	load(h)
	h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	view := h.View(120, 40)
	if !strings.Contains(view, res.Awards[0].Badge.Name) {
		t.Errorf("expanded view should list badge %q:\n%s", res.Awards[0].Badge.Name, view)
	}
}

func TestNavigationBounds(t *testing.T) {
	env := newTestEnv(t)
	submit(t, env, "1", "One.")
	submit(t, env, "2", "Two.")

	h := New(env)
	load(h)

	h.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if h.selected != 0 {
		t.Errorf("selected = %d, want 0", h.selected)
	}
	for i := 0; i < 5; i++ {
		h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if h.selected != 1 {
		t.Errorf("selected = %d, want 1", h.selected)
	}
}
