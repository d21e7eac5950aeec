package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/medaskca/tom/internal/nav"
	"github.com/medaskca/tom/internal/scope"
)

// handleKeyPress dispatches key events: modal stack first, then the go-to
// prompt, then the open drawer, then global dashboard shortcuts.
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
		}
		return m, cmd
	}

	if m.gotoActive {
		return m.handleGoToKey(msg)
	}

	if m.ctrl.Submenu().Open {
		if handled := m.handleDrawerKey(msg); handled {
			return m, nil
		}
	}

	return m.handleGlobalKeys(msg)
}

func (m *DashboardModel) handleGoToKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		v := strings.TrimSpace(m.gotoInput.Value())
		m.closeGoTo()
		if v != "" {
			m.selectView(nav.View(v))
		}
		return m, nil
	case tea.KeyEsc:
		m.closeGoTo()
		return m, nil
	}
	var cmd tea.Cmd
	m.gotoInput, cmd = m.gotoInput.Update(msg)
	return m, cmd
}

func (m *DashboardModel) openGoTo() tea.Cmd {
	m.gotoActive = true
	m.gotoInput.SetValue("")
	m.gotoInput.Focus()
	return textinput.Blink
}

func (m *DashboardModel) closeGoTo() {
	m.gotoActive = false
	m.gotoInput.Blur()
}

// handleDrawerKey handles keys that only mean something while the drawer is
// open. Unhandled keys fall through to the global shortcuts.
func (m *DashboardModel) handleDrawerKey(msg tea.KeyMsg) bool {
	k := m.keys
	entries := m.drawerEntries()

	switch {
	case key.Matches(msg, k.Up):
		if m.drawerCursor > 0 {
			m.drawerCursor--
		}
		return true
	case key.Matches(msg, k.Down):
		if m.drawerCursor < len(entries)-1 {
			m.drawerCursor++
		}
		return true
	case key.Matches(msg, k.Enter):
		if m.drawerCursor >= 0 && m.drawerCursor < len(entries) {
			m.selectView(entries[m.drawerCursor].ID)
		}
		return true
	case key.Matches(msg, k.Escape):
		m.ctrl.CloseSubmenu()
		return true
	}
	return false
}

// handleGlobalKeys handles dashboard-level shortcuts.
func (m *DashboardModel) handleGlobalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys

	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.Help):
		m.PushModal(NewHelpModal(m))
		return m, nil

	case key.Matches(msg, k.GoTo):
		return m, m.openGoTo()

	case key.Matches(msg, k.Escape), key.Matches(msg, k.Back):
		m.ctrl.GoBack()
		return m, nil

	case key.Matches(msg, k.Hospital):
		return m, m.cycleScope(m.scope.Hospital, m.hospitals)

	case key.Matches(msg, k.DataSource):
		return m, m.cycleScope(m.scope.DataSource, m.dataSources)

	case key.Matches(msg, k.Listening):
		on := scope.Toggle(m.scope.Listening)
		m.log.Debug("listening key", "listening", on)
		return m, nil

	case key.Matches(msg, k.Chat):
		m.selectPage(nav.PageChat)
		return m, nil

	case key.Matches(msg, k.Alerts):
		m.selectPage(nav.PageAlerts)
		return m, nil
	}

	if m.ctrl.Mode() == nav.Compact {
		pages := nav.Pages()
		for i, b := range k.Slots {
			if key.Matches(msg, b) && i < len(pages) {
				m.selectPage(pages[i])
				return m, nil
			}
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, k.NextTab):
		m.cycleTab(1)
	case key.Matches(msg, k.PrevTab):
		m.cycleTab(-1)
	case key.Matches(msg, k.Menu):
		m.selectPage(nav.PageMenu)
	default:
		for i, b := range k.Tabs {
			if key.Matches(msg, b) {
				m.selectTab(i)
				break
			}
		}
	}
	return m, nil
}

func (m *DashboardModel) selectPage(p nav.Page) {
	if err := m.ctrl.SelectPage(p); err != nil {
		m.setError(err)
	}
}

func (m *DashboardModel) selectView(v nav.View) {
	if err := m.ctrl.SelectView(v); err != nil {
		m.setError(err)
	}
}

func (m *DashboardModel) selectTab(idx int) {
	tabs := m.reg.Tabs()
	if idx < 0 || idx >= len(tabs) {
		return
	}
	m.selectView(tabs[idx].ID)
}

func (m *DashboardModel) cycleTab(delta int) {
	tabs := m.reg.Tabs()
	if len(tabs) == 0 {
		return
	}
	idx := activeTabIndex(tabs, m.ctrl.View())
	if idx < 0 {
		if delta > 0 {
			idx = -1
		} else {
			idx = 0
		}
	}
	next := ((idx+delta)%len(tabs) + len(tabs)) % len(tabs)
	m.selectView(tabs[next].ID)
}

func (m *DashboardModel) cycleScope(c *scope.Cell[string], options []string) tea.Cmd {
	v, err := scope.Cycle(c, options)
	if err != nil {
		return actionMsg(ActionMsg{Action: ActionShowError, Payload: err})
	}
	m.log.Debug("scope key", "flag", c.Name(), "value", v)
	return nil
}

// activeTabIndex returns the tab showing v, or -1.
func activeTabIndex(tabs []nav.Entry, v nav.View) int {
	for i, t := range tabs {
		if t.ID == v {
			return i
		}
	}
	return -1
}
