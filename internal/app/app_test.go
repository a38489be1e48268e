package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/watcrack/internal/config"
	"github.com/abhisek/watcrack/internal/screens/home"
	"github.com/abhisek/watcrack/internal/screens/welcome"
	"github.com/abhisek/watcrack/internal/selfupdate"
	"github.com/abhisek/watcrack/internal/stats"
)

func TestStartsOnWelcome(t *testing.T) {
	m := newAppModel(Options{})
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Errorf("active = %T, want welcome", m.router.Active())
	}

	m = newAppModel(Options{SkipWelcome: true})
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Errorf("active = %T, want home", m.router.Active())
	}
}

func TestThemeFromProfileAndConfig(t *testing.T) {
	p := stats.NewProfile()
	p.Preferences.Theme = stats.ThemeDark

	m := newAppModel(Options{Profile: p})
	if m.env.Theme.Name() != stats.ThemeDark {
		t.Errorf("theme = %q, want profile's dark", m.env.Theme.Name())
	}

	cfg := config.Default()
	cfg.UI.Theme = string(stats.ThemeLight)
	m = newAppModel(Options{Profile: p, Config: cfg})
	if m.env.Theme.Name() != stats.ThemeLight {
		t.Errorf("theme = %q, want config override light", m.env.Theme.Name())
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(Options{SkipWelcome: true})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestViewRendersHeaderAndFooter(t *testing.T) {
	p := stats.NewProfile()
	p.Stats.Points = 321
	p.Stats.CompletedTests = 4
	m := newAppModel(Options{Profile: p, SkipWelcome: true})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	view := updated.(AppModel).render()
	if !strings.Contains(view, "321 pts") {
		t.Error("header should show points")
	}
	if !strings.Contains(view, "Ctrl+C") {
		t.Error("footer should show the quit hint")
	}
}

func TestViewTooSmall(t *testing.T) {
	m := newAppModel(Options{SkipWelcome: true})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(updated.(AppModel).render(), "Terminal too small") {
		t.Error("expected the minimum size message")
	}
}

func TestUpdateCheckSetsLatestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"tag_name":"v9.9.9","html_url":"https://example.com/r"}`))
	}))
	defer srv.Close()

	m := newAppModel(Options{
		SkipWelcome: true,
		Version:     "v1.0.0",
		Checker:     selfupdate.NewChecker(selfupdate.WithBaseURL(srv.URL)),
	})

	msg := m.checkForUpdate()()
	if msg == nil {
		t.Fatal("expected an update message")
	}
	m.Update(msg)
	if m.env.LatestVersion != "v9.9.9" {
		t.Errorf("latest version = %q, want v9.9.9", m.env.LatestVersion)
	}
}

func TestNoCheckerNoCommand(t *testing.T) {
	m := newAppModel(Options{})
	if m.checkForUpdate() != nil {
		t.Error("no checker should mean no update command")
	}
}
