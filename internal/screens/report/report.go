package report

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/watcrack/internal/router"
	"github.com/abhisek/watcrack/internal/screen"
	"github.com/abhisek/watcrack/internal/session"
	"github.com/abhisek/watcrack/internal/timing"
	"github.com/abhisek/watcrack/internal/ui/components"
	"github.com/abhisek/watcrack/internal/ui/layout"
)

// ReportScreen shows the scored feedback for a submitted response.
type ReportScreen struct {
	env     *screen.Env
	result  *session.Result
	saveErr error
	offset  int
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)

// New creates a ReportScreen for res. saveErr is shown when the attempt
// could not be persisted.
func New(env *screen.Env, res *session.Result, saveErr error) *ReportScreen {
	return &ReportScreen{env: env, result: res, saveErr: saveErr}
}

func (r *ReportScreen) Init() tea.Cmd {
	return nil
}

func (r *ReportScreen) Title() string {
	return "Feedback"
}

func (r *ReportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Enter", Description: "Start over"},
		{Key: "Esc", Description: "Home"},
	}
}

func (r *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}
	switch kmsg.String() {
	case "esc", "enter", "q":
		return r, func() tea.Msg { return router.PopToRootMsg{} }
	case "up", "k":
		if r.offset > 0 {
			r.offset--
		}
	case "down", "j":
		r.offset++
	}
	return r, nil
}

// Body renders the report without scrolling applied.
func (r *ReportScreen) Body(width int) string {
	th := r.env.Theme
	cw := components.ContentWidth(width)
	fb := r.result.Feedback
	threshold := r.env.Config.Session.LowContentWords

	var sections []string

	// Score line
	grade := lipgloss.NewStyle().Foreground(th.GradeColor(string(fb.Grade))).Bold(true)
	headline := grade.Render(fmt.Sprintf("%d / 100   Grade %s", fb.Score, fb.Grade))
	topic := th.Subtitle().Render("# " + r.result.Topic.Title)
	meta := th.Hint().Render(fmt.Sprintf("%d words · %s active · %s session",
		fb.WordCount,
		timing.FormatClock(timing.FromSeconds(r.result.ActiveSeconds)),
		timing.FormatClock(r.result.Duration)))
	if r.result.AutoSubmitted {
		meta += th.Hint().Render(" · time expired")
	}
	sections = append(sections, components.Card(th, headline+"\n"+topic+"\n"+meta, cw))

	low := IsLowContent(fb.WordCount, threshold)
	if low {
		notice := lipgloss.NewStyle().Foreground(th.P.Warning).Width(cw - 4).Render(LowContentNotice(threshold))
		sections = append(sections, components.Card(th, notice, cw))
	}

	wpm := th.Title().Render(fmt.Sprintf("%d WPM", fb.WPM)) + "\n" +
		th.Body().Italic(true).Width(cw-4).Render(WPMInsight(fb.WPM))
	sections = append(sections, components.Card(th, wpm, cw))

	if !low {
		var lists []string
		if s := components.Bullets("Strengths", th.Good(), "+", fb.Positives, cw-4); s != "" {
			lists = append(lists, s)
		}
		if s := components.Bullets("Weaknesses", th.Bad(), "-", fb.Negatives, cw-4); s != "" {
			lists = append(lists, s)
		}
		if len(lists) > 0 {
			sections = append(sections, components.Card(th, strings.Join(lists, "\n\n"), cw))
		}
	}

	bars := []components.ProgressBar{
		{Label: "Vocabulary", Value: fb.Metrics.VocabularyBreadth},
		{Label: "Transitions", Value: fb.Metrics.TransitionUsage},
		{Label: "Structure", Value: fb.Metrics.StructureScore},
	}
	var metrics []string
	for _, b := range bars {
		b.LabelWidth = 12
		b.Width = cw - 4
		metrics = append(metrics, b.View(th))
	}
	sections = append(sections, components.Card(th, strings.Join(metrics, "\n"), cw))

	if plan := components.Bullets("Action plan", th.Tip(), "→", fb.Recommendations, cw-4); plan != "" {
		sections = append(sections, components.Card(th, plan, cw))
	}

	if len(r.result.Awards) > 0 {
		var lines []string
		lines = append(lines, th.Title().Render("Badges earned"))
		for _, a := range r.result.Awards {
			lines = append(lines, fmt.Sprintf("%s %s  %s", a.Badge.Icon(), a.Badge.Name, th.Hint().Render(a.Badge.Description)))
		}
		sections = append(sections, components.Card(th, strings.Join(lines, "\n"), cw))
	}

	if r.saveErr != nil {
		sections = append(sections, th.Bad().Render("Could not save this attempt: "+r.saveErr.Error()))
	}

	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(strings.Join(sections, "\n"))
}

func (r *ReportScreen) View(width, height int) string {
	lines := strings.Split(r.Body(width), "\n")
	maxOffset := max(len(lines)-height, 0)
	r.offset = min(r.offset, maxOffset)
	end := min(r.offset+height, len(lines))
	return strings.Join(lines[r.offset:end], "\n")
}
