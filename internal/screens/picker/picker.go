package picker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/watcrack/internal/router"
	"github.com/abhisek/watcrack/internal/screen"
	"github.com/abhisek/watcrack/internal/screens/writing"
	"github.com/abhisek/watcrack/internal/timing"
	"github.com/abhisek/watcrack/internal/topics"
	"github.com/abhisek/watcrack/internal/ui/components"
	"github.com/abhisek/watcrack/internal/ui/layout"
)

// generateCount is how many topics one LLM request asks for.
const generateCount = 5

type spinTickMsg struct{}

type generatedMsg struct {
	topics []topics.Topic
	err    error
}

// PickerScreen spins the topic wheel and configures the session length.
type PickerScreen struct {
	env *screen.Env

	pool     []topics.Topic
	category int // 0 = all, otherwise index into topics.Categories + 1
	spinner  *topics.Spinner

	spin     topics.Spin
	frame    int
	spinning bool
	shown    int
	chosen   *topics.Topic

	durations []time.Duration
	duration  int

	generating bool
	status     string
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)

// New creates a PickerScreen over the built-in topic bank.
func New(env *screen.Env) *PickerScreen {
	durations := env.Config.Session.Durations
	if len(durations) == 0 {
		durations = []time.Duration{timing.ShortSession, timing.LongSession}
	}
	p := &PickerScreen{
		env:       env,
		pool:      topics.All(),
		durations: durations,
	}
	if env.Profile != nil {
		for i, d := range durations {
			if d == env.Profile.Preferences.DefaultDuration {
				p.duration = i
			}
		}
	}
	p.rebuild()
	return p
}

func (p *PickerScreen) categoryFilter() topics.Category {
	if p.category == 0 {
		return ""
	}
	return topics.Categories[p.category-1]
}

func (p *PickerScreen) rebuild() {
	p.spinner = topics.NewSpinner(topics.Filter(p.pool, p.categoryFilter(), ""), nil)
	p.chosen = nil
	p.shown = 0
}

// Duration returns the selected session length.
func (p *PickerScreen) Duration() time.Duration {
	return p.durations[p.duration]
}

// Chosen returns the topic the wheel landed on, if any.
func (p *PickerScreen) Chosen() (topics.Topic, bool) {
	if p.chosen == nil {
		return topics.Topic{}, false
	}
	return *p.chosen, true
}

func (p *PickerScreen) Init() tea.Cmd {
	return nil
}

func (p *PickerScreen) Title() string {
	return "Pick a Topic"
}

func (p *PickerScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Space", Description: "Spin"},
		{Key: "d", Description: "Duration"},
		{Key: "c", Description: "Category"},
	}
	if p.env.Generator != nil {
		hints = append(hints, layout.KeyHint{Key: "g", Description: "New topics"})
	}
	if p.chosen != nil {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Start"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func spinTick() tea.Cmd {
	return tea.Tick(topics.SpinInterval, func(time.Time) tea.Msg { return spinTickMsg{} })
}

func (p *PickerScreen) startSpin() tea.Cmd {
	spin, err := p.spinner.Spin()
	if err != nil {
		p.status = "No topics in this category."
		return nil
	}
	p.spin = spin
	p.frame = 0
	p.spinning = true
	p.chosen = nil
	p.status = ""
	return spinTick()
}

func (p *PickerScreen) generate() tea.Cmd {
	if p.env.Generator == nil || p.generating {
		return nil
	}
	p.generating = true
	p.status = "Asking for fresh topics..."
	gen := p.env.Generator
	cat := p.categoryFilter()
	return func() tea.Msg {
		list, err := gen.Generate(context.Background(), generateCount, cat)
		return generatedMsg{topics: list, err: err}
	}
}

func (p *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinTickMsg:
		if !p.spinning {
			return p, nil
		}
		if p.frame < len(p.spin.Frames) {
			p.shown = p.spin.Frames[p.frame]
			p.frame++
			return p, spinTick()
		}
		p.spinning = false
		p.shown = p.spin.Final
		t := p.spinner.Topic(p.spin.Final)
		p.chosen = &t
		return p, nil

	case generatedMsg:
		p.generating = false
		if msg.err != nil {
			p.env.Log().Warn("topic generation failed", zap.Error(msg.err))
			if errors.Is(msg.err, topics.ErrNoTopics) {
				p.status = "No new topics this time."
			} else {
				p.status = "Could not generate topics."
			}
			return p, nil
		}
		p.pool = append(p.pool, msg.topics...)
		p.status = fmt.Sprintf("Added %d new topics.", len(msg.topics))
		p.rebuild()
		return p, nil

	case tea.KeyMsg:
		if p.spinning {
			return p, nil
		}
		switch msg.String() {
		case "esc":
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		case "space", " ", "s":
			return p, p.startSpin()
		case "d":
			p.duration = (p.duration + 1) % len(p.durations)
			return p, nil
		case "c":
			p.category = (p.category + 1) % (len(topics.Categories) + 1)
			p.rebuild()
			return p, nil
		case "g":
			return p, p.generate()
		case "enter":
			if p.chosen == nil {
				return p, p.startSpin()
			}
			w := writing.New(p.env, *p.chosen, p.Duration())
			return p, func() tea.Msg { return router.ReplaceScreenMsg{Screen: w} }
		}
	}
	return p, nil
}

func (p *PickerScreen) View(width, height int) string {
	th := p.env.Theme
	cw := components.ContentWidth(width)

	durLabels := make([]string, len(p.durations))
	for i, d := range p.durations {
		durLabels[i] = fmt.Sprintf("%d min", int(d.Minutes()))
	}
	catLabels := []string{"All"}
	for _, c := range topics.Categories {
		catLabels = append(catLabels, string(c))
	}

	var wheel string
	switch {
	case p.spinner.Len() == 0:
		wheel = th.Hint().Render("No topics in this category.")
	case p.spinning || p.chosen != nil:
		t := p.spinner.Topic(p.shown)
		style := th.Subtitle()
		if p.chosen != nil {
			style = th.Title()
		}
		wheel = style.Render(t.Title) + "\n\n" +
			th.Hint().Render(fmt.Sprintf("%s · %s", t.Category, t.Difficulty))
	default:
		wheel = th.Hint().Render("Press space to spin the wheel.")
	}

	sections := []string{
		components.Choice(th, "Duration", durLabels, p.duration),
		components.Choice(th, "Category", catLabels, p.category),
		"",
		components.Card(th, lipgloss.NewStyle().Width(cw-4).Align(lipgloss.Center).Render(wheel), cw),
	}
	if p.status != "" {
		sections = append(sections, "", th.Hint().Render(p.status))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
