package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/watcrack/internal/ui/theme"
)

// ProgressBar displays a horizontal 0-100 meter.
type ProgressBar struct {
	Label      string
	LabelWidth int
	Value      int
	Width      int
}

// NewProgressBar creates a progress bar for a 0-100 value.
func NewProgressBar(label string, value, width int) ProgressBar {
	return ProgressBar{Label: label, Value: value, Width: width}
}

// Filled returns how many of n cells the value fills.
func (p ProgressBar) Filled(n int) int {
	v := min(max(p.Value, 0), 100)
	return n * v / 100
}

// View renders the progress bar.
func (p ProgressBar) View(th *theme.Theme) string {
	var result string
	if p.Label != "" {
		lw := max(p.LabelWidth, lipgloss.Width(p.Label))
		result = th.Body().Width(lw).Render(p.Label) + "  "
	}

	const valueWidth = 6 // "  100"
	barWidth := max(p.Width-lipgloss.Width(result)-valueWidth, 4)

	filled := p.Filled(barWidth)
	result += lipgloss.NewStyle().Foreground(th.P.Secondary).Render(strings.Repeat("█", filled))
	result += lipgloss.NewStyle().Foreground(th.P.Border).Render(strings.Repeat("░", barWidth-filled))
	result += th.Subtitle().Render(fmt.Sprintf("  %3d", p.Value))
	return result
}
