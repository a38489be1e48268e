// Package theme holds the light and dark palettes and the styles built
// from them. A *Theme is shared by every screen so a toggle restyles the
// whole UI at once.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/watcrack/internal/stats"
)

// Palette is the set of colors a theme draws with.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Warning   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
}

// Light is the default paper-like palette.
var Light = Palette{
	Primary:   lipgloss.Color("#4F46E5"), // Indigo
	Secondary: lipgloss.Color("#0EA5E9"), // Sky
	Accent:    lipgloss.Color("#D97706"), // Amber
	Success:   lipgloss.Color("#16A34A"),
	Warning:   lipgloss.Color("#CA8A04"),
	Error:     lipgloss.Color("#DC2626"),
	Text:      lipgloss.Color("#1E293B"),
	TextDim:   lipgloss.Color("#64748B"),
	Bg:        lipgloss.Color("#F8FAFC"),
	BgCard:    lipgloss.Color("#E2E8F0"),
	Border:    lipgloss.Color("#CBD5E1"),
}

// Dark is the low-light palette.
var Dark = Palette{
	Primary:   lipgloss.Color("#818CF8"),
	Secondary: lipgloss.Color("#38BDF8"),
	Accent:    lipgloss.Color("#FBBF24"),
	Success:   lipgloss.Color("#4ADE80"),
	Warning:   lipgloss.Color("#FACC15"),
	Error:     lipgloss.Color("#F87171"),
	Text:      lipgloss.Color("#F1F5F9"),
	TextDim:   lipgloss.Color("#94A3B8"),
	Bg:        lipgloss.Color("#0F172A"),
	BgCard:    lipgloss.Color("#1E293B"),
	Border:    lipgloss.Color("#334155"),
}

// Theme is the active palette.
type Theme struct {
	name stats.Theme
	P    Palette
}

// New returns a Theme for name, falling back to light.
func New(name stats.Theme) *Theme {
	t := &Theme{}
	t.Set(name)
	return t
}

// Name returns the active theme name.
func (t *Theme) Name() stats.Theme {
	return t.name
}

// Set switches the palette in place.
func (t *Theme) Set(name stats.Theme) {
	if name == stats.ThemeDark {
		t.name, t.P = stats.ThemeDark, Dark
		return
	}
	t.name, t.P = stats.ThemeLight, Light
}

// Toggle flips between light and dark and returns the new name.
func (t *Theme) Toggle() stats.Theme {
	t.Set(t.name.Toggle())
	return t.name
}

// Typography

func (t *Theme) Title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.P.Primary)
}

func (t *Theme) Subtitle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.P.TextDim)
}

func (t *Theme) Body() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.P.Text)
}

func (t *Theme) Hint() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.P.TextDim).Italic(true)
}

// Layout

func (t *Theme) Bar() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(t.P.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.P.Border)
}

func (t *Theme) Card() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.P.Border).
		Padding(1, 2)
}

// States

func (t *Theme) Selected() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.P.Primary).Bold(true)
}

func (t *Theme) Good() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.P.Success)
}

func (t *Theme) Bad() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.P.Error)
}

func (t *Theme) Tip() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.P.Accent)
}

// GradeColor maps a letter grade to a palette color.
func (t *Theme) GradeColor(grade string) color.Color {
	switch grade {
	case "A":
		return t.P.Success
	case "B":
		return t.P.Secondary
	case "C":
		return t.P.Warning
	case "D":
		return t.P.Accent
	default:
		return t.P.Error
	}
}

// ClockColor turns the countdown amber in the last five minutes and red in
// the last minute.
func (t *Theme) ClockColor(remainingSecs int) color.Color {
	switch {
	case remainingSecs <= 60:
		return t.P.Error
	case remainingSecs <= 300:
		return t.P.Warning
	default:
		return t.P.Text
	}
}
