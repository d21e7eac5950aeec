package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/medaskca/tom/internal/nav"
)

// KeyMap defines all dashboard key bindings with built-in help text.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Back      key.Binding
	Escape    key.Binding
	GoTo      key.Binding

	// Scope
	Hospital   key.Binding
	DataSource key.Binding
	Listening  key.Binding

	// Compact: bottom navigation slots
	Slots []key.Binding

	// Drawer
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding

	// Wide: tab bar
	NextTab key.Binding
	PrevTab key.Binding
	Tabs    []key.Binding
	Menu    key.Binding
	Chat    key.Binding
	Alerts  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	pages := nav.Pages()
	slots := make([]key.Binding, len(pages))
	for i, p := range pages {
		k := string(rune('1' + i))
		slots[i] = key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, p.String()),
		)
	}
	tabs := make([]key.Binding, 9)
	for i := range tabs {
		k := string(rune('1' + i))
		tabs[i] = key.NewBinding(
			key.WithKeys(k),
			key.WithHelp("1-9", "jump to tab"),
		)
	}

	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "back"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close/back"),
		),
		GoTo: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "go to view"),
		),

		Hospital: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "hospital"),
		),
		DataSource: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "data source"),
		),
		Listening: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "listening"),
		),

		Slots: slots,

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),

		NextTab: key.NewBinding(
			key.WithKeys("right", "tab", "l"),
			key.WithHelp("→/tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("left", "shift+tab", "h"),
			key.WithHelp("←/S-tab", "prev tab"),
		),
		Tabs: tabs,
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "account menu"),
		),
		Chat: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "chat"),
		),
		Alerts: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "alerts"),
		),
	}
}

// compactHelp is the footer binding set for the compact layout.
type compactHelp struct {
	k      KeyMap
	drawer bool
}

func (h compactHelp) ShortHelp() []key.Binding {
	if h.drawer {
		return []key.Binding{h.k.Up, h.k.Down, h.k.Enter, h.k.Escape}
	}
	slots := key.NewBinding(key.WithKeys("1"), key.WithHelp("1-6", "pages"))
	return []key.Binding{slots, h.k.Back, h.k.GoTo, h.k.Help, h.k.Quit}
}

func (h compactHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		h.k.Slots,
		{h.k.Up, h.k.Down, h.k.Enter, h.k.Escape, h.k.Back},
		{h.k.GoTo, h.k.Hospital, h.k.DataSource, h.k.Listening, h.k.Help, h.k.Quit},
	}
}

// wideHelp is the footer binding set for the wide layout.
type wideHelp struct {
	k    KeyMap
	menu bool
}

func (h wideHelp) ShortHelp() []key.Binding {
	if h.menu {
		return []key.Binding{h.k.Up, h.k.Down, h.k.Enter, h.k.Escape}
	}
	return []key.Binding{h.k.PrevTab, h.k.NextTab, h.k.Tabs[0], h.k.Menu, h.k.GoTo, h.k.Help, h.k.Quit}
}

func (h wideHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.k.PrevTab, h.k.NextTab, h.k.Tabs[0], h.k.Chat, h.k.Alerts, h.k.Menu},
		{h.k.Up, h.k.Down, h.k.Enter, h.k.Escape, h.k.Back},
		{h.k.GoTo, h.k.Hospital, h.k.DataSource, h.k.Listening, h.k.Help, h.k.Quit},
	}
}
