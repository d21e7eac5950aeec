package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/medaskca/tom/internal/nav"
)

var drawerTitles = map[nav.Tag]string{
	nav.TagOps:       "Operations",
	nav.TagLogistics: "Logistics",
	nav.TagMenu:      "Account",
}

// renderDrawer renders the open submenu as a bordered list with the cursor
// row highlighted. A closed submenu renders nothing.
func renderDrawer(reg *nav.Registry, st nav.State, cursor, width int) string {
	if !st.Submenu.Open {
		return ""
	}
	entries := reg.DrawerViews(st.Submenu.Tag)
	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	title := lipgloss.NewStyle().
		Foreground(ColorBlue).
		Bold(true).
		Render(drawerTitles[st.Submenu.Tag])

	rows := make([]string, 0, len(entries)+2)
	rows = append(rows, title, "")
	for i, e := range entries {
		label := ansi.Truncate(e.Title, inner-2, "…")
		style := lipgloss.NewStyle().Width(inner)
		switch {
		case i == cursor:
			style = style.Foreground(ColorWhite).Background(ColorBlue).Bold(true)
			label = "› " + label
		case e.ID == st.View:
			style = style.Foreground(ColorCyan)
			label = "• " + label
		default:
			label = "  " + label
		}
		rows = append(rows, style.Render(label))
	}

	return lipgloss.NewStyle().
		Width(inner + 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBlue).
		Padding(0, 1).
		Render(strings.Join(rows, "\n"))
}
