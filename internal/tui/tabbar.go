package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/medaskca/tom/internal/nav"
)

// highlightedTab returns the tab index to highlight: the tab showing the
// active view, else the tab of the active page's default view, else -1.
func highlightedTab(reg *nav.Registry, st nav.State) int {
	tabs := reg.Tabs()
	if i := activeTabIndex(tabs, st.View); i >= 0 {
		return i
	}
	return activeTabIndex(tabs, reg.DefaultViewOf(st.Page, nav.Wide))
}

// renderTabBar renders the persistent wide tab bar.
func renderTabBar(reg *nav.Registry, st nav.State, width int) string {
	tabs := reg.Tabs()
	if width <= 0 || len(tabs) == 0 {
		return ""
	}
	active := highlightedTab(reg, st)

	parts := make([]string, 0, len(tabs))
	for i, t := range tabs {
		style := lipgloss.NewStyle().Padding(0, 1).Foreground(ColorGray)
		if i == active {
			style = style.Foreground(ColorCyan).Bold(true).Underline(true)
		}
		parts = append(parts, style.Render(t.TabLabel))
	}
	bar := strings.Join(parts, "")

	return lipgloss.NewStyle().
		Width(width).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(ColorGray).
		Render(ansi.Truncate(bar, width, "…"))
}
