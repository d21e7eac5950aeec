package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.detector.Observe(msg.Width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case CommandMsg:
		if err := m.ctrl.Apply(msg.Command); err != nil {
			m.log.Warn("remote navigation command rejected", "command", msg.Command.Kind.String(), "error", err)
			m.setError(err)
		}
		return m, nil

	case ConfigReloadedMsg:
		m.applyConfig(msg)
		return m, nil

	case ActionMsg:
		switch msg.Action {
		case ActionPushModal:
			if modal, ok := msg.Payload.(Modal); ok {
				m.PushModal(modal)
			}
		case ActionShowError:
			if err, ok := msg.Payload.(error); ok {
				m.setError(err)
			}
		}
		return m, nil
	}

	// Anything else (cursor blink, etc.) goes to the active input.
	if m.gotoActive {
		var cmd tea.Cmd
		m.gotoInput, cmd = m.gotoInput.Update(msg)
		return m, cmd
	}
	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
		}
		return m, cmd
	}
	return m, nil
}

func (m *DashboardModel) applyConfig(msg ConfigReloadedMsg) {
	if msg.CompactWidth > 0 {
		if mode, changed := m.detector.SetThreshold(msg.CompactWidth); changed {
			m.log.Info("compact width changed", "threshold", msg.CompactWidth, "mode", mode.String())
		}
	}
	if msg.Skin.Name != "" {
		ApplySkin(msg.Skin)
	}
	if len(msg.Hospitals) > 0 {
		m.hospitals = append([]string(nil), msg.Hospitals...)
	}
	if len(msg.DataSources) > 0 {
		m.dataSources = append([]string(nil), msg.DataSources...)
	}
}
