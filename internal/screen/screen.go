package screen

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/watcrack/internal/config"
	"github.com/abhisek/watcrack/internal/session"
	"github.com/abhisek/watcrack/internal/stats"
	"github.com/abhisek/watcrack/internal/topics"
	"github.com/abhisek/watcrack/internal/ui/layout"
	"github.com/abhisek/watcrack/internal/ui/theme"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Env carries the shared dependencies screens need. One Env is created per
// program and handed to every screen constructor.
type Env struct {
	Theme   *theme.Theme
	Profile *stats.Profile
	Config  config.Config
	Logger  *zap.Logger

	// Recorder persists attempts and the profile. Nil runs without a store.
	Recorder *session.Recorder

	// Generator produces LLM topics. Nil disables generation.
	Generator *topics.Generator

	// Now is the clock used for sessions. Nil means time.Now.
	Now func() time.Time

	// LatestVersion is set when a newer release is available.
	LatestVersion string
}

// Clock returns the current time from e.Now.
func (e *Env) Clock() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// Log returns the environment logger, or a no-op logger.
func (e *Env) Log() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

// SaveProfile persists the current profile if a recorder is configured.
func (e *Env) SaveProfile(ctx context.Context) error {
	if e.Recorder == nil || e.Profile == nil {
		return nil
	}
	return e.Recorder.SaveProfile(ctx, *e.Profile)
}
