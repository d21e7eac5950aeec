package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/medaskca/tom/internal/nav"
)

var viewBlurbs = map[nav.View]string{
	"posts":                  "Team posts and announcements.",
	"chat":                   "Ask TOM about today's theatre list.",
	"alerts":                 "Escalations and notifications.",
	"feeds":                  "Live overview of every theatre.",
	"dashboard":              "Theatre utilisation at a glance.",
	"theatreSchedule":        "Session plan per theatre.",
	"readiness":              "Pre-list checks and readiness state.",
	"analytics":              "Throughput, delays and cancellations.",
	"roster":                 "Duty roster and shift coverage.",
	"supply":                 "Consumables and stock levels.",
	"equipment":              "Equipment tracking and maintenance.",
	"procedures-preferences": "Procedure cards and surgeon preferences.",
	"procedures":             "Case list for the session.",
	"inventory":              "Theatre store inventory.",
	"team-assignment":        "Staff allocation to theatres.",
	"settings":               "Application settings.",
	"help":                   "Help and support.",
}

// compactTheatresHint is shown on the compact Theatres page when the active
// view is not one of its own: the drawer is the way in.
const compactTheatresHint = "Open the drawer (3) to access Dashboard, Schedule, Cases, and more."

// contentView decides which view the content area renders. Unknown views
// render the registry fallback.
func contentView(reg *nav.Registry, st nav.State) nav.View {
	if !reg.IsKnown(st.View) {
		return reg.Fallback()
	}
	return st.View
}

// renderContent renders the placeholder card for the active view.
func renderContent(reg *nav.Registry, st nav.State, scopeLine string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	if st.Mode == nav.Compact && st.Page == nav.PageTheatres && !reg.Allows(nav.PageTheatres, st.View) &&
		reg.GroupOf(st.View) == nav.GroupNone {
		title := lipgloss.NewStyle().Foreground(ColorCyan).Bold(true).Render("Operations")
		body := lipgloss.NewStyle().Foreground(ColorGray).Render(compactTheatresHint)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center, title, "", body))
	}

	v := contentView(reg, st)
	title := lipgloss.NewStyle().
		Foreground(ColorBlue).
		Bold(true).
		Render(reg.Title(v))

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	if blurb, ok := viewBlurbs[v]; ok {
		b.WriteString(blurb)
		b.WriteString("\n")
	}
	if scopeLine != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(ColorGray).Render(scopeLine))
		b.WriteString("\n")
	}
	crumb := fmt.Sprintf("%s › %s", bottomNavLabel(st.Page), reg.Title(v))
	b.WriteString(lipgloss.NewStyle().Foreground(ColorGray).Italic(true).Render(crumb))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 2).
		Render(b.String())
}
