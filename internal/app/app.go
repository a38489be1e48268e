package app

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/watcrack/internal/config"
	"github.com/abhisek/watcrack/internal/router"
	"github.com/abhisek/watcrack/internal/screen"
	"github.com/abhisek/watcrack/internal/screens/home"
	"github.com/abhisek/watcrack/internal/screens/welcome"
	"github.com/abhisek/watcrack/internal/selfupdate"
	"github.com/abhisek/watcrack/internal/session"
	"github.com/abhisek/watcrack/internal/stats"
	"github.com/abhisek/watcrack/internal/topics"
	"github.com/abhisek/watcrack/internal/ui/layout"
	"github.com/abhisek/watcrack/internal/ui/theme"
)

// updateCheckTimeout bounds the background release check.
const updateCheckTimeout = 5 * time.Second

// Options holds the dependencies the TUI runs with.
type Options struct {
	Config  *config.Config
	Profile stats.Profile
	Logger  *zap.Logger

	// Recorder persists attempts. Nil keeps results in memory only.
	Recorder *session.Recorder

	// Generator enables LLM topics. Nil disables them.
	Generator *topics.Generator

	// Checker and Version drive the background update check. A nil Checker
	// skips it.
	Checker *selfupdate.Checker
	Version string

	// SkipWelcome starts on the home screen.
	SkipWelcome bool
}

type updateCheckedMsg struct {
	latest string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	env     *screen.Env
	router  *router.Router
	checker *selfupdate.Checker
	version string
	width   int
	height  int
}

// newAppModel creates a new AppModel with the welcome or home screen.
func newAppModel(opts Options) AppModel {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	profile := opts.Profile
	if profile.Preferences.Theme == "" {
		profile = stats.NewProfile()
	}

	name := profile.Preferences.Theme
	if t := stats.Theme(cfg.UI.Theme); t.Valid() {
		name = t
		profile.Preferences.Theme = t
	}

	env := &screen.Env{
		Theme:     theme.New(name),
		Profile:   &profile,
		Config:    *cfg,
		Logger:    opts.Logger,
		Recorder:  opts.Recorder,
		Generator: opts.Generator,
	}

	homeFactory := func() screen.Screen { return home.New(env) }
	var initial screen.Screen
	if opts.SkipWelcome {
		initial = homeFactory()
	} else {
		initial = welcome.New(env.Theme, homeFactory)
	}

	return AppModel{
		env:     env,
		router:  router.New(initial),
		checker: opts.Checker,
		version: opts.Version,
	}
}

func (m AppModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if active := m.router.Active(); active != nil {
		cmds = append(cmds, active.Init())
	}
	cmds = append(cmds, m.checkForUpdate())
	return tea.Batch(cmds...)
}

// checkForUpdate queries the release feed once per launch.
func (m AppModel) checkForUpdate() tea.Cmd {
	if m.checker == nil {
		return nil
	}
	checker, version, logger := m.checker, m.version, m.env.Log()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), updateCheckTimeout)
		defer cancel()
		res, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
		if err != nil {
			logger.Debug("update check failed", zap.Error(err))
			return nil
		}
		if !res.UpdateAvailable {
			return nil
		}
		return updateCheckedMsg{latest: res.LatestVersion}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case updateCheckedMsg:
		m.env.LatestVersion = msg.latest
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) headerStats() layout.HeaderStats {
	if m.env.Profile == nil {
		return layout.HeaderStats{}
	}
	s := m.env.Profile.Stats
	return layout.HeaderStats{Points: s.Points, Tests: s.CompletedTests}
}

func (m AppModel) footerHints() []layout.KeyHint {
	if hp, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return append(hp.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render composes the header, active screen and footer.
func (m AppModel) render() string {
	th := m.env.Theme
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(th, m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(th, title, m.headerStats(), m.width)
	footer := layout.RenderFooter(th, m.footerHints(), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
