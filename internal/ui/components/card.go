package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/watcrack/internal/ui/theme"
)

// ContentWidth returns the inner width used for stacked cards.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 76)
}

// Card wraps content in a rounded border at the given content width.
func Card(th *theme.Theme, content string, cw int) string {
	return th.Card().Width(cw).Render(content)
}

// Bullets renders items as a titled list. Empty lists render nothing.
func Bullets(title string, titleStyle lipgloss.Style, bullet string, items []string, width int) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	for _, it := range items {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Render(bullet + " " + it))
	}
	return b.String()
}

// Choice renders a horizontal option selector with the selected option
// highlighted.
func Choice(th *theme.Theme, label string, options []string, selected int) string {
	parts := make([]string, len(options))
	for i, o := range options {
		if i == selected {
			parts[i] = th.Selected().Render("[" + o + "]")
		} else {
			parts[i] = th.Subtitle().Render(" " + o + " ")
		}
	}
	return th.Body().Render(label+"  ") + strings.Join(parts, " ")
}
