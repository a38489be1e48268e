package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/watcrack/internal/router"
	"github.com/abhisek/watcrack/internal/screen"
	"github.com/abhisek/watcrack/internal/screens/dashboard"
	"github.com/abhisek/watcrack/internal/screens/history"
	"github.com/abhisek/watcrack/internal/screens/picker"
	"github.com/abhisek/watcrack/internal/stats"
	"github.com/abhisek/watcrack/internal/topics"
	"github.com/abhisek/watcrack/internal/ui/components"
	"github.com/abhisek/watcrack/internal/ui/layout"
)

type themeSavedMsg struct {
	err error
}

const themeItem = 3

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	env   *screen.Env
	menu  components.Menu
	quote topics.Quote
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(env *screen.Env) *HomeScreen {
	h := &HomeScreen{env: env, quote: topics.RandomQuote(nil)}

	items := []components.MenuItem{
		{Label: "START TEST", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: picker.New(env)}
			}
		}},
		{Label: "MY STATS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: dashboard.New(env)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(env)}
			}
		}},
		{Label: "", Action: h.toggleTheme},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// toggleTheme flips the palette and persists the preference.
func (h *HomeScreen) toggleTheme() tea.Cmd {
	next := h.env.Theme.Toggle()
	if h.env.Profile == nil {
		return nil
	}
	h.env.Profile.Preferences.Theme = next
	env := h.env
	return func() tea.Msg {
		return themeSavedMsg{err: env.SaveProfile(context.Background())}
	}
}

func (h *HomeScreen) labels() []string {
	labels := make([]string, len(h.menu.Items))
	for i, it := range h.menu.Items {
		labels[i] = it.Label
	}
	labels[themeItem] = "THEME: " + strings.ToUpper(string(h.env.Theme.Name()))
	return labels
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case themeSavedMsg:
		if msg.err != nil {
			h.env.Log().Warn("failed to save theme preference", zap.Error(msg.err))
		}
		return h, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "t":
			return h, h.toggleTheme()
		case "q":
			return h, tea.Quit
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	th := h.env.Theme
	termHeight := height + 8
	compact := termHeight < 34 || width < 100
	cw := contentWidth(width)

	var s stats.UserStats
	if h.env.Profile != nil {
		s = h.env.Profile.Stats
	}

	var sections []string
	sections = append(sections, renderTitle(th, cw, compact))
	if !compact {
		sections = append(sections, renderQuote(th, h.quote, cw))
	}
	sections = append(sections, renderStatsBar(th, s, cw, compact))
	if compact {
		sections = append(sections, renderMenuCompact(th, h.labels(), h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(th, h.labels(), h.menu.Selected, cw))
	}
	if h.env.LatestVersion != "" {
		sections = append(sections, renderUpdateNote(th, h.env.LatestVersion, cw))
	}

	return renderCabinetFrame(th, strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "t", Description: "Theme"},
		{Key: "q", Description: "Quit"},
	}
}
