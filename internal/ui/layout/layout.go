package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/watcrack/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	CompactWidthThreshold = 100
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// HeaderStats are the counters shown at the right of the header.
type HeaderStats struct {
	Points int
	Tests  int
}

// IsCompactWidth returns true if the terminal width is in compact range.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(th *theme.Theme, width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(th.P.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader renders the application header bar.
func RenderHeader(th *theme.Theme, title string, hs HeaderStats, width int) string {
	left := lipgloss.NewStyle().
		Foreground(th.P.Primary).
		Bold(true).
		Render("  watcrack")

	center := lipgloss.NewStyle().
		Foreground(th.P.Text).
		Render(title)

	right := lipgloss.NewStyle().
		Foreground(th.P.Accent).
		Render(fmt.Sprintf("✦ %d pts", hs.Points)) +
		"   " +
		lipgloss.NewStyle().
			Foreground(th.P.TextDim).
			Render(fmt.Sprintf("%d tests", hs.Tests))

	leftLen := lipgloss.Width(left)
	centerLen := lipgloss.Width(center)
	rightLen := lipgloss.Width(right)

	innerWidth := max(width-4, 0)
	leftGap := max((innerWidth-centerLen)/2-leftLen, 1)
	rightGap := max(innerWidth-leftLen-leftGap-centerLen-rightLen, 1)

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
	return th.Bar().Width(width).Render(content)
}

// RenderFooter renders the footer with key hints.
func RenderFooter(th *theme.Theme, hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(th.P.Text).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(th.P.TextDim).Render(h.Description)
		parts = append(parts, part)
	}
	return th.Bar().Width(width).Render("  " + strings.Join(parts, "   "))
}

// RenderFrame composes the full frame: header + content + footer.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	styledContent := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)

	return header + "\n" + styledContent + "\n" + footer
}

// Wrap soft-wraps s to width columns.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}
