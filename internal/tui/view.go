package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/medaskca/tom/internal/nav"
)

const (
	minWidth  = 30
	minHeight = 10
)

// View renders the dashboard
func (m *DashboardModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Initializing dashboard..."
	}
	if m.width < minWidth || m.height < minHeight {
		return "Terminal too small. Resize to at least 30x10."
	}

	if modal := m.TopModal(); modal != nil {
		return modal.View(m.width, m.height)
	}

	if m.ctrl.Mode() == nav.Compact {
		return m.renderCompact()
	}
	return m.renderWide()
}

func (m *DashboardModel) renderCompact() string {
	st := m.ctrl.State()

	var top []string
	if headerVisible(st) {
		top = append(top, m.renderHeader())
	}
	status := m.renderStatusLine()
	bottom := renderBottomNav(st, m.width)

	used := lipgloss.Height(status) + lipgloss.Height(bottom)
	for _, s := range top {
		used += lipgloss.Height(s)
	}
	bodyH := max(1, m.height-used)

	var body string
	if st.Submenu.Open {
		drawer := renderDrawer(m.reg, st, m.drawerCursor, m.width)
		body = lipgloss.Place(m.width, bodyH, lipgloss.Center, lipgloss.Bottom, drawer)
	} else {
		body = renderContent(m.reg, st, m.scopeLine(), m.width, bodyH)
	}

	parts := append(top, body, status, bottom)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *DashboardModel) renderWide() string {
	st := m.ctrl.State()

	header := m.renderHeader()
	tabs := renderTabBar(m.reg, st, m.width)
	status := m.renderStatusLine()

	bodyH := max(1, m.height-lipgloss.Height(header)-lipgloss.Height(tabs)-lipgloss.Height(status))

	var body string
	if st.Submenu.Open {
		menu := renderDrawer(m.reg, st, m.drawerCursor, 34)
		body = lipgloss.Place(m.width, bodyH, lipgloss.Right, lipgloss.Top, menu)
	} else {
		body = renderContent(m.reg, st, m.scopeLine(), m.width, bodyH)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, tabs, body, status)
}
