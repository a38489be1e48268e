package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/watcrack/internal/badges"
	"github.com/abhisek/watcrack/internal/router"
	"github.com/abhisek/watcrack/internal/screen"
	"github.com/abhisek/watcrack/internal/stats"
	"github.com/abhisek/watcrack/internal/ui/components"
	"github.com/abhisek/watcrack/internal/ui/layout"
)

type resetDoneMsg struct {
	err error
}

// DashboardScreen shows the aggregate counters and the badge cabinet.
type DashboardScreen struct {
	env          *screen.Env
	confirmReset bool
	status       string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a DashboardScreen.
func New(env *screen.Env) *DashboardScreen {
	return &DashboardScreen{env: env}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Title() string {
	return "My Stats"
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	if d.confirmReset {
		return []layout.KeyHint{
			{Key: "y", Description: "Confirm reset"},
			{Key: "any key", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "r", Description: "Reset"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resetDoneMsg:
		if msg.err != nil {
			d.status = "Reset failed: " + msg.err.Error()
		} else {
			d.status = "Stats reset."
		}
		return d, nil

	case tea.KeyMsg:
		key := msg.String()
		if d.confirmReset {
			d.confirmReset = false
			if key == "y" {
				return d, d.reset()
			}
			return d, nil
		}
		switch key {
		case "esc":
			return d, func() tea.Msg { return router.PopScreenMsg{} }
		case "r":
			if d.env.Profile != nil {
				d.confirmReset = true
			}
		}
	}
	return d, nil
}

func (d *DashboardScreen) reset() tea.Cmd {
	env := d.env
	if env.Recorder == nil {
		env.Profile.Stats = stats.UserStats{}
		return func() tea.Msg { return resetDoneMsg{} }
	}
	return func() tea.Msg {
		return resetDoneMsg{err: env.Recorder.Reset(context.Background(), env.Profile)}
	}
}

func (d *DashboardScreen) View(width, height int) string {
	th := d.env.Theme
	cw := components.ContentWidth(width)

	var s stats.UserStats
	if d.env.Profile != nil {
		s = d.env.Profile.Stats
	}

	rows := []struct {
		label string
		value string
	}{
		{"Points", fmt.Sprintf("%d", s.Points)},
		{"Completed tests", fmt.Sprintf("%d", s.CompletedTests)},
		{"Total words", fmt.Sprintf("%d", s.TotalWords)},
		{"Highest score", fmt.Sprintf("%d", s.HighestScore)},
		{"Average score", fmt.Sprintf("%.1f", s.AverageScore())},
	}
	var counters []string
	for _, r := range rows {
		counters = append(counters, th.Body().Width(20).Render(r.label)+th.Title().Render(r.value))
	}

	var shelf []string
	shelf = append(shelf, th.Title().Render(fmt.Sprintf("Badges  %d/%d", len(s.Badges), len(badges.Catalog()))))
	for _, b := range badges.Catalog() {
		if s.HasBadge(b.ID) {
			shelf = append(shelf, fmt.Sprintf("%s %s  %s", b.Icon(), th.Body().Render(b.Name), th.Hint().Render(b.Description)))
		} else {
			shelf = append(shelf, th.Hint().Render("· "+b.Name+"  "+b.Description))
		}
	}

	sections := []string{
		components.Card(th, strings.Join(counters, "\n"), cw),
		components.Card(th, strings.Join(shelf, "\n"), cw),
	}
	if d.confirmReset {
		sections = append(sections, th.Bad().Render("Reset all stats and badges? Press y to confirm."))
	}
	if d.status != "" {
		sections = append(sections, th.Hint().Render(d.status))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
