package writing

import (
	"context"
	"fmt"
	"time"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/watcrack/internal/evaluator"
	"github.com/abhisek/watcrack/internal/router"
	"github.com/abhisek/watcrack/internal/screen"
	"github.com/abhisek/watcrack/internal/screens/report"
	"github.com/abhisek/watcrack/internal/session"
	"github.com/abhisek/watcrack/internal/timing"
	"github.com/abhisek/watcrack/internal/topics"
	"github.com/abhisek/watcrack/internal/ui/layout"
)

const clockInterval = time.Second

type clockTickMsg time.Time

type submittedMsg struct {
	result *session.Result
	err    error
}

// WritingScreen is the timed editor for one topic.
type WritingScreen struct {
	env        *screen.Env
	sess       *session.Session
	editor     textarea.Model
	remaining  time.Duration
	submitting bool
	confirmEsc bool
}

var _ screen.Screen = (*WritingScreen)(nil)
var _ screen.KeyHintProvider = (*WritingScreen)(nil)

// New starts a session on topic for d.
func New(env *screen.Env, topic topics.Topic, d time.Duration) *WritingScreen {
	sess := session.New(session.Config{
		Topic:         topic,
		Duration:      d,
		IdleThreshold: env.Config.Session.IdleThreshold,
		Profile:       env.Profile,
		Recorder:      env.Recorder,
	}, env.Clock())

	ta := textarea.New()
	ta.Placeholder = "Start writing. Ctrl+S submits."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0

	return &WritingScreen{
		env:       env,
		sess:      sess,
		editor:    ta,
		remaining: sess.Countdown().Duration(),
	}
}

// Session exposes the underlying session.
func (w *WritingScreen) Session() *session.Session {
	return w.sess
}

func (w *WritingScreen) Init() tea.Cmd {
	return tea.Batch(w.editor.Focus(), clockTick())
}

func clockTick() tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg { return clockTickMsg(t) })
}

func (w *WritingScreen) Title() string {
	return "Writing"
}

func (w *WritingScreen) KeyHints() []layout.KeyHint {
	if w.confirmEsc {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Abandon"},
			{Key: "any key", Description: "Keep writing"},
		}
	}
	return []layout.KeyHint{
		{Key: "Ctrl+S", Description: "Submit"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (w *WritingScreen) submit(auto bool) tea.Cmd {
	if w.submitting {
		return nil
	}
	w.submitting = true
	w.editor.Blur()
	sess := w.sess
	now := w.env.Clock()
	return func() tea.Msg {
		res, err := sess.Submit(context.Background(), now, auto)
		return submittedMsg{result: res, err: err}
	}
}

func (w *WritingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case clockTickMsg:
		if w.submitting {
			return w, nil
		}
		remaining, expired := w.sess.Tick(w.env.Clock())
		w.remaining = remaining
		if expired {
			return w, w.submit(true)
		}
		return w, clockTick()

	case submittedMsg:
		if msg.err != nil {
			w.env.Log().Error("failed to record attempt",
				zap.String("session_id", w.sess.ID), zap.Error(msg.err))
		}
		rs := report.New(w.env, msg.result, msg.err)
		return w, func() tea.Msg { return router.ReplaceScreenMsg{Screen: rs} }

	case tea.KeyMsg:
		if w.submitting {
			return w, nil
		}
		switch msg.String() {
		case "ctrl+s":
			return w, w.submit(false)
		case "esc":
			if w.confirmEsc {
				return w, func() tea.Msg { return router.PopScreenMsg{} }
			}
			w.confirmEsc = true
			return w, nil
		}
		w.confirmEsc = false
	}

	before := w.editor.Value()
	var cmd tea.Cmd
	w.editor, cmd = w.editor.Update(msg)
	if after := w.editor.Value(); after != before {
		w.sess.Edit(after, w.env.Clock())
	}
	return w, cmd
}

func (w *WritingScreen) View(width, height int) string {
	th := w.env.Theme

	clock := lipgloss.NewStyle().
		Foreground(th.ClockColor(int(w.remaining.Seconds()))).
		Bold(true).
		Render("⏱ " + timing.FormatClock(w.remaining))
	words := th.Hint().Render(fmt.Sprintf("%d words", evaluator.NewDocument(w.editor.Value(), "").WordCount()))
	topic := th.Title().Width(max(width-4, 10)).Render(w.sess.Topic.Title)

	status := clock + "   " + words
	if w.confirmEsc {
		status += "   " + th.Bad().Render("Press Esc again to abandon this response.")
	}
	if w.submitting {
		status += "   " + th.Hint().Render("Scoring...")
	}

	editorHeight := max(height-lipgloss.Height(topic)-4, 3)
	w.editor.SetWidth(max(width-4, 20))
	w.editor.SetHeight(editorHeight)

	body := lipgloss.JoinVertical(lipgloss.Left,
		topic,
		status,
		"",
		w.editor.View(),
	)
	return lipgloss.NewStyle().Padding(0, 2).Render(body)
}
