package writing

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/watcrack/internal/config"
	"github.com/abhisek/watcrack/internal/router"
	"github.com/abhisek/watcrack/internal/screen"
	"github.com/abhisek/watcrack/internal/screens/report"
	"github.com/abhisek/watcrack/internal/session"
	"github.com/abhisek/watcrack/internal/stats"
	"github.com/abhisek/watcrack/internal/topics"
	"github.com/abhisek/watcrack/internal/ui/theme"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestScreen(t *testing.T) (*WritingScreen, *fakeClock, *stats.Profile) {
	t.Helper()
	clock := &fakeClock{now: t0}
	p := stats.NewProfile()
	env := &screen.Env{
		Theme:   theme.New(stats.ThemeDark),
		Profile: &p,
		Config:  *config.Default(),
		Now:     clock.Now,
	}
	topic, _ := topics.Lookup("1")
	w := New(env, topic, 15*time.Minute)
	w.Init()
	return w, clock, &p
}

func typeText(w *WritingScreen, s string) {
	for _, r := range s {
		w.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

// submitResult runs the submit command and returns the report it routes to.
func submitResult(t *testing.T, w *WritingScreen, cmd tea.Cmd) *session.Result {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a submit command")
	}
	msg, ok := cmd().(submittedMsg)
	if !ok {
		t.Fatalf("expected submittedMsg, got %T", cmd())
	}
	_, next := w.Update(msg)
	if next == nil {
		t.Fatal("expected a route to the report")
	}
	replace, ok := next().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", next())
	}
	if _, ok := replace.Screen.(*report.ReportScreen); !ok {
		t.Fatalf("expected report screen, got %T", replace.Screen)
	}
	return msg.result
}

func TestTypingRecordsActivity(t *testing.T) {
	w, clock, _ := newTestScreen(t)

	typeText(w, "Growth")
	clock.now = clock.now.Add(5 * time.Second)
	typeText(w, " matters")

	if got := w.Session().Text(); got != "Growth matters" {
		t.Errorf("session text = %q", got)
	}
	if got := w.Session().ActiveSeconds(); got != 5 {
		t.Errorf("active seconds = %v, want 5", got)
	}
}

func TestCtrlSSubmits(t *testing.T) {
	w, clock, profile := newTestScreen(t)
	typeText(w, "Short answer.")
	clock.now = clock.now.Add(time.Minute)

	_, cmd := w.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	res := submitResult(t, w, cmd)

	if res.AutoSubmitted {
		t.Error("manual submit should not be marked auto")
	}
	if res.Feedback.WordCount != 2 {
		t.Errorf("word count = %d, want 2", res.Feedback.WordCount)
	}
	if profile.Stats.CompletedTests != 1 {
		t.Errorf("completed tests = %d, want 1", profile.Stats.CompletedTests)
	}
}

func TestExpiryAutoSubmits(t *testing.T) {
	w, clock, _ := newTestScreen(t)
	typeText(w, "Unfinished thought")

	clock.now = t0.Add(14 * time.Minute)
	if _, cmd := w.Update(clockTickMsg(clock.now)); cmd == nil {
		t.Fatal("clock should keep ticking before expiry")
	}
	if w.submitting {
		t.Fatal("should not submit before the deadline")
	}

	clock.now = t0.Add(15 * time.Minute)
	_, cmd := w.Update(clockTickMsg(clock.now))
	res := submitResult(t, w, cmd)
	if !res.AutoSubmitted {
		t.Error("expiry should auto-submit")
	}
}

func TestSubmitOnlyOnce(t *testing.T) {
	w, _, _ := newTestScreen(t)
	_, cmd := w.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected submit command")
	}
	if _, again := w.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}); again != nil {
		t.Error("second ctrl+s should be ignored")
	}
	if _, tick := w.Update(clockTickMsg(t0)); tick != nil {
		t.Error("clock should stop once submitting")
	}
}

func TestEscNeedsConfirmation(t *testing.T) {
	w, _, _ := newTestScreen(t)

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Fatal("first esc should only ask for confirmation")
	}
	if !w.confirmEsc {
		t.Fatal("expected confirmation state")
	}

	_, cmd = w.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("second esc should abandon")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestTypingCancelsEscConfirmation(t *testing.T) {
	w, _, _ := newTestScreen(t)
	w.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	typeText(w, "a")
	if w.confirmEsc {
		t.Error("typing should cancel the abandon prompt")
	}
}
