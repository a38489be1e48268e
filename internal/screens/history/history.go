package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/watcrack/internal/badges"
	"github.com/abhisek/watcrack/internal/router"
	"github.com/abhisek/watcrack/internal/screen"
	"github.com/abhisek/watcrack/internal/store"
	"github.com/abhisek/watcrack/internal/timing"
	"github.com/abhisek/watcrack/internal/ui/layout"
)

// pageSize is how many attempts the screen loads.
const pageSize = 50

type historyLoadedMsg struct {
	Attempts []store.AttemptRecord
	Badges   map[string][]store.BadgeRecord // sessionID → badges
	Err      error
}

// HistoryScreen displays past attempts and the badges they earned.
type HistoryScreen struct {
	env      *screen.Env
	attempts []store.AttemptRecord
	badges   map[string][]store.BadgeRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(env *screen.Env) *HistoryScreen {
	return &HistoryScreen{
		env:      env,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	rec := s.env.Recorder
	if rec == nil {
		return func() tea.Msg { return historyLoadedMsg{} }
	}
	return func() tea.Msg {
		ctx := context.Background()

		attempts, err := rec.History(ctx, pageSize)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		grouped, err := rec.BadgesBySession(ctx)
		if err != nil {
			return historyLoadedMsg{Attempts: attempts, Badges: map[string][]store.BadgeRecord{}}
		}
		return historyLoadedMsg{Attempts: attempts, Badges: grouped}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.attempts = msg.Attempts
			s.badges = msg.Badges
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	th := s.env.Theme
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	if s.errMsg != "" {
		return center.Foreground(th.P.Error).Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return center.Foreground(th.P.TextDim).Render("\n\n  Loading history...")
	}
	if len(s.attempts) == 0 {
		return center.Foreground(th.P.TextDim).Italic(true).
			Render("\n\n  No attempts yet. Spin a topic and start writing!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, a := range s.attempts {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		title := a.TopicTitle
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		line := fmt.Sprintf("%s%s  %-40s  %3d  %s  %4d words",
			prefix, a.Timestamp.Local().Format("Jan 02"), title, a.Score, a.Grade, a.WordCount)

		style := th.Body()
		if i == s.selected {
			style = th.Selected()
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, d := range s.details(a) {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, d))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func (s *HistoryScreen) details(a store.AttemptRecord) []string {
	th := s.env.Theme
	info := fmt.Sprintf("    %d wpm · %s active of %s",
		a.WPM,
		timing.FormatClock(timing.FromSeconds(a.ActiveSecs)),
		timing.FormatClock(timing.FromSeconds(float64(a.DurationSecs))))
	if a.AutoSubmitted {
		info += " · time expired"
	}
	lines := []string{th.Hint().Render(info)}

	earned := s.badges[a.SessionID]
	if len(earned) == 0 {
		return append(lines, th.Hint().Italic(true).Render("    No badges this attempt"))
	}
	for _, rec := range earned {
		icon := "✦"
		if b, ok := badges.Lookup(rec.BadgeID); ok {
			icon = b.Icon()
		}
		lines = append(lines, th.Tip().Render(fmt.Sprintf("    %s %s: %s", icon, rec.Name, rec.Reason)))
	}
	return lines
}
