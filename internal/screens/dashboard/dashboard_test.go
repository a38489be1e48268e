package dashboard

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/watcrack/internal/badges"
	"github.com/abhisek/watcrack/internal/config"
	"github.com/abhisek/watcrack/internal/router"
	"github.com/abhisek/watcrack/internal/screen"
	"github.com/abhisek/watcrack/internal/session"
	"github.com/abhisek/watcrack/internal/stats"
	"github.com/abhisek/watcrack/internal/store"
	"github.com/abhisek/watcrack/internal/ui/theme"
)

func newTestEnv(t *testing.T, withStore bool) *screen.Env {
	t.Helper()
	p := stats.NewProfile()
	p.Preferences.Theme = stats.ThemeDark
	p.Stats = stats.UserStats{Points: 250, TotalWords: 700, CompletedTests: 3, HighestScore: 95, Badges: []string{badges.FirstDraft}}
	env := &screen.Env{Theme: theme.New(stats.ThemeDark), Profile: &p, Config: *config.Default()}
	if withStore {
		name := strings.NewReplacer("/", "_").Replace(t.Name())
		st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
		if err != nil {
			t.Fatalf("open store: %v", err)
		}
		t.Cleanup(func() { st.Close() })
		env.Recorder = session.NewRecorder(st.EventRepo(), st.SnapshotRepo(), nil)
	}
	return env
}

func TestViewShowsCounters(t *testing.T) {
	d := New(newTestEnv(t, false))
	view := d.View(100, 40)

	for _, want := range []string{"250", "700", "95", "First Draft", fmt.Sprintf("1/%d", len(badges.Catalog()))} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestResetRequiresConfirmation(t *testing.T) {
	env := newTestEnv(t, false)
	d := New(env)

	d.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if !d.confirmReset {
		t.Fatal("r should ask for confirmation")
	}
	_, cmd := d.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	if cmd != nil || d.confirmReset {
		t.Fatal("any other key should cancel")
	}
	if env.Profile.Stats.CompletedTests != 3 {
		t.Error("stats should be untouched after cancel")
	}
}

func TestResetPersists(t *testing.T) {
	env := newTestEnv(t, true)
	d := New(env)

	d.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	_, cmd := d.Update(tea.KeyPressMsg{Code: 'y', Text: "y"})
	if cmd == nil {
		t.Fatal("y should reset")
	}
	d.Update(cmd())

	if env.Profile.Stats.CompletedTests != 0 || len(env.Profile.Stats.Badges) != 0 {
		t.Errorf("stats after reset = %+v", env.Profile.Stats)
	}
	if env.Profile.Preferences.Theme != stats.ThemeDark {
		t.Error("reset should keep preferences")
	}
	loaded, err := env.Recorder.LoadProfile(context.Background())
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if loaded.Stats.Points != 0 {
		t.Errorf("persisted points = %d, want 0", loaded.Stats.Points)
	}
	if d.status != "Stats reset." {
		t.Errorf("status = %q", d.status)
	}
}

func TestEscPops(t *testing.T) {
	d := New(newTestEnv(t, false))
	_, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("esc should pop")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}
