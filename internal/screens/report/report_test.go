package report

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/watcrack/internal/badges"
	"github.com/abhisek/watcrack/internal/config"
	"github.com/abhisek/watcrack/internal/evaluator"
	"github.com/abhisek/watcrack/internal/router"
	"github.com/abhisek/watcrack/internal/screen"
	"github.com/abhisek/watcrack/internal/session"
	"github.com/abhisek/watcrack/internal/stats"
	"github.com/abhisek/watcrack/internal/topics"
	"github.com/abhisek/watcrack/internal/ui/theme"
)

func TestWPMInsight(t *testing.T) {
	tests := []struct {
		wpm  int
		want string
	}{
		{0, "Insufficient data"},
		{1, "planning before execution"},
		{19, "planning before execution"},
		{20, "comfortable"},
		{34, "comfortable"},
		{35, "ample time to review"},
		{90, "ample time to review"},
	}
	for _, tt := range tests {
		if got := WPMInsight(tt.wpm); !strings.Contains(got, tt.want) {
			t.Errorf("WPMInsight(%d) = %q, want it to mention %q", tt.wpm, got, tt.want)
		}
	}
}

func TestIsLowContent(t *testing.T) {
	tests := []struct {
		words, threshold int
		want             bool
	}{
		{0, 60, true},
		{59, 60, true},
		{60, 60, false},
		{10, 0, false},
	}
	for _, tt := range tests {
		if got := IsLowContent(tt.words, tt.threshold); got != tt.want {
			t.Errorf("IsLowContent(%d, %d) = %v, want %v", tt.words, tt.threshold, got, tt.want)
		}
	}
}

func newTestReport(text string, saveErr error, awards ...badges.Award) *ReportScreen {
	topic, _ := topics.Lookup("20")
	env := &screen.Env{Theme: theme.New(stats.ThemeLight), Config: *config.Default()}
	res := &session.Result{
		SessionID:     "s-1",
		Topic:         topic,
		Feedback:      evaluator.Evaluate(text, topic.Title, 120),
		Awards:        awards,
		ActiveSeconds: 120,
		Duration:      15 * time.Minute,
	}
	return New(env, res, saveErr)
}

func TestLowContentHidesStrengthsAndWeaknesses(t *testing.T) {
	r := newTestReport("Technology helps. It is shocking.", nil)
	body := r.Body(100)

	if !strings.Contains(body, "write a little more") {
		t.Error("expected the low-content notice")
	}
	if strings.Contains(body, "Strengths") || strings.Contains(body, "Weaknesses") {
		t.Error("strengths and weaknesses should be hidden for short responses")
	}
	if !strings.Contains(body, "Action plan") {
		t.Error("recommendations should still be shown")
	}
}

func TestLowContentNoticeOffAtZero(t *testing.T) {
	r := newTestReport("Technology helps. It is shocking.", nil)
	r.env.Config.Session.LowContentWords = 0
	body := r.Body(100)

	if strings.Contains(body, "write a little more") {
		t.Error("notice should be off when low_content_words is 0")
	}
	if !strings.Contains(body, "Weaknesses") {
		t.Error("weaknesses should be listed when the notice is off")
	}
}

func TestFullReportShowsLists(t *testing.T) {
	text := strings.Repeat("Technology and artificial intelligence shape modern education because research shows clear gains. ", 10)
	r := newTestReport(text, nil)
	body := r.Body(100)

	if strings.Contains(body, "write a little more") {
		t.Error("low-content notice should not appear")
	}
	if !strings.Contains(body, "Strengths") && !strings.Contains(body, "Weaknesses") {
		t.Error("expected at least one feedback list")
	}
	for _, label := range []string{"Vocabulary", "Transitions", "Structure"} {
		if !strings.Contains(body, label) {
			t.Errorf("missing metric bar %q", label)
		}
	}
}

func TestBadgesAndSaveErrorShown(t *testing.T) {
	b, _ := badges.Lookup(badges.FirstDraft)
	r := newTestReport("Short.", errors.New("disk full"), badges.Award{Badge: b, SessionID: "s-1"})
	body := r.Body(100)

	if !strings.Contains(body, b.Name) {
		t.Errorf("expected badge %q in report", b.Name)
	}
	if !strings.Contains(body, "disk full") {
		t.Error("expected the save error in report")
	}
}

func TestReportKeysReturnHome(t *testing.T) {
	r := newTestReport("Short.", nil)
	for _, k := range []tea.KeyPressMsg{{Code: tea.KeyEnter}, {Code: tea.KeyEscape}} {
		_, cmd := r.Update(k)
		if cmd == nil {
			t.Fatalf("%s should leave the report", k.String())
		}
		if _, ok := cmd().(router.PopToRootMsg); !ok {
			t.Errorf("%s: expected PopToRootMsg, got %T", k.String(), cmd())
		}
	}
}

func TestViewScrolls(t *testing.T) {
	r := newTestReport("Short.", nil)
	top := r.View(100, 5)
	r.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if r.View(100, 5) == top {
		t.Error("scrolling down should change the view")
	}
}
