package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/medaskca/tom/internal/nav"
)

var pageLabels = map[nav.Page]string{
	nav.PageFeeds:    "Feeds",
	nav.PageChat:     "TOM AI",
	nav.PageTheatres: "Theatres",
	nav.PageStaff:    "Staff",
	nav.PageAlerts:   "Alerts",
	nav.PageMenu:     "Menu",
}

// renderBottomNav renders the compact bottom navigation bar: one slot per
// page with the active page highlighted.
func renderBottomNav(st nav.State, width int) string {
	pages := nav.Pages()
	if width <= 0 || len(pages) == 0 {
		return ""
	}
	slot := width / len(pages)
	if slot < 3 {
		slot = 3
	}

	cells := make([]string, 0, len(pages))
	for i, p := range pages {
		label := string(rune('1'+i)) + " " + pageLabels[p]
		label = ansi.Truncate(label, slot-1, "…")

		style := lipgloss.NewStyle().
			Width(slot).
			Align(lipgloss.Center).
			Foreground(ColorGray)
		if p == st.Page {
			style = style.Foreground(ColorCyan).Bold(true)
		}
		cells = append(cells, style.Render(label))
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	return lipgloss.NewStyle().
		Width(width).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(ColorGray).
		Render(ansi.Truncate(bar, width, ""))
}

// bottomNavLabel returns the plain label of a page slot.
func bottomNavLabel(p nav.Page) string {
	if l, ok := pageLabels[p]; ok {
		return l
	}
	return strings.ToUpper(p.String())
}
