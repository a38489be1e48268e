package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/watcrack/internal/stats"
	"github.com/abhisek/watcrack/internal/topics"
	"github.com/abhisek/watcrack/internal/ui/theme"
)

const titleFull = `█░█░█ ▄▀█ ▀█▀   █▀▀ █▀█ ▄▀█ █▀▀ █▄▀
▀▄▀▄▀ █▀█ ░█░   █▄▄ █▀▄ █▀█ █▄▄ █░█`

const titleCompact = "W · A · T · C · R · A · C · K"

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 60)
}

func renderTitle(th *theme.Theme, cw int, compact bool) string {
	style := th.Title()
	art := titleFull
	if compact {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// renderStatsBar renders the profile counters in a bordered box.
func renderStatsBar(th *theme.Theme, s stats.UserStats, cw int, compact bool) string {
	points := lipgloss.NewStyle().Foreground(th.P.Accent).Bold(true)
	tests := lipgloss.NewStyle().Foreground(th.P.Secondary).Bold(true)
	best := lipgloss.NewStyle().Foreground(th.P.Success).Bold(true)

	var line string
	if compact {
		line = fmt.Sprintf("%s %s %s",
			points.Render(fmt.Sprintf("✦%d", s.Points)),
			tests.Render(fmt.Sprintf("✎%d", s.CompletedTests)),
			best.Render(fmt.Sprintf("▲%d", s.HighestScore)),
		)
	} else {
		line = fmt.Sprintf("%s  %s  %s",
			points.Render(fmt.Sprintf("✦ %d POINTS", s.Points)),
			tests.Render(fmt.Sprintf("✎ %d TESTS", s.CompletedTests)),
			best.Render(fmt.Sprintf("▲ BEST %d", s.HighestScore)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(th.P.Border).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 24

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(th *theme.Theme, items []string, selected, cw int) string {
	base := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	selectedBtn := base.
		Bold(true).
		Foreground(th.P.Bg).
		Background(th.P.Primary).
		BorderForeground(th.P.Primary)

	normalBtn := base.
		Foreground(th.P.Text).
		BorderForeground(th.P.Border)

	buttons := make([]string, len(items))
	for i, label := range items {
		if i == selected {
			buttons[i] = selectedBtn.Render("▸ " + label)
		} else {
			buttons[i] = normalBtn.Render(label)
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderMenuCompact renders menu items as plain lines for short terminals.
func renderMenuCompact(th *theme.Theme, items []string, selected, cw int) string {
	lines := make([]string, len(items))
	for i, label := range items {
		if i == selected {
			lines[i] = th.Selected().Render(" ▸ " + label + " ")
		} else {
			lines[i] = th.Body().Render("   " + label)
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

func renderQuote(th *theme.Theme, q topics.Quote, cw int) string {
	text := th.Body().Italic(true).Render("“" + q.Text + "”")
	author := th.Hint().Render("- " + q.Author)
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(text + "\n" + author)
}

// renderUpdateNote renders a dim one-line update notification.
func renderUpdateNote(th *theme.Theme, latestVersion string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(th.P.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("New version %s available, run watcrack update", latestVersion))
}

// renderCabinetFrame wraps content in a double-border frame centered in the
// given dimensions.
func renderCabinetFrame(th *theme.Theme, content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(th.P.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
