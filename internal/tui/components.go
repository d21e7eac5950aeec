package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/medaskca/tom/internal/nav"
)

// renderBranding renders "TOM" with a blue to violet gradient.
func renderBranding() string {
	colors := []string{"#3B82F6", "#06B6D4", "#8B5CF6"}
	chars := []string{"T", "O", "M"}

	var result string
	for i, char := range chars {
		style := lipgloss.NewStyle().
			Background(ColorNavy).
			Foreground(lipgloss.Color(colors[i])).Bold(true)
		result += style.Render(char)
	}
	return result
}

// scopeLine summarises the scoped flags for the header and content card.
func (m *DashboardModel) scopeLine() string {
	listening := "off"
	if m.scope.Listening.Get() {
		listening = "on"
	}
	return fmt.Sprintf("%s · %s · listening %s",
		m.scope.Hospital.Get(), m.scope.DataSource.Get(), listening)
}

// headerVisible reports whether the banner is shown. Compact shows it only on
// the chat view.
func headerVisible(st nav.State) bool {
	return st.Mode == nav.Wide || st.View == "chat"
}

// renderHeader renders the top banner.
func (m *DashboardModel) renderHeader() string {
	base := lipgloss.NewStyle().Background(ColorNavy).Foreground(ColorWhite)

	left := renderBranding() + base.Render(" by MEDASKCA · Theatre Operations Manager")
	if m.ctrl.Mode() == nav.Compact {
		return base.Width(m.width).Render(ansi.Truncate(left, m.width, "…"))
	}

	right := m.scopeLine()
	if m.user != "" {
		arrow := "▾"
		if m.ctrl.Submenu().Open && m.ctrl.Submenu().Tag == nav.TagMenu {
			arrow = "▴"
		}
		right += " │ " + m.user + " " + arrow
	}
	right = base.Render(right)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return base.Width(m.width).Render(ansi.Truncate(left+" "+right, m.width, "…"))
	}
	return left + base.Render(strings.Repeat(" ", gap)) + right
}

// renderStatusLine renders the status/help line at the bottom of the screen.
func (m *DashboardModel) renderStatusLine() string {
	baseStyle := lipgloss.NewStyle().
		Background(ColorNavy).
		Foreground(ColorWhite)

	if m.gotoActive {
		return baseStyle.Width(m.width).Render(ansi.Truncate(m.gotoInput.View(), m.width, ""))
	}

	var left string
	if errText := m.currentError(); errText != "" {
		left = lipgloss.NewStyle().
			Background(ColorNavy).
			Foreground(ColorRed).
			Bold(true).
			Render("✗ " + errText)
	} else {
		st := m.ctrl.State()
		left = baseStyle.Render(fmt.Sprintf("[%s/%s]", bottomNavLabel(st.Page), m.reg.Title(st.View)))
	}

	var helpView string
	if m.ctrl.Mode() == nav.Compact {
		helpView = m.help.ShortHelpView(compactHelp{k: m.keys, drawer: m.ctrl.Submenu().Open}.ShortHelp())
	} else {
		sub := m.ctrl.Submenu()
		helpView = m.help.ShortHelpView(wideHelp{k: m.keys, menu: sub.Open}.ShortHelp())
	}

	line := left + baseStyle.Render("  ") + helpView
	return baseStyle.Width(m.width).Render(ansi.Truncate(line, m.width, "…"))
}
