package tui

import (
	"sync"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/medaskca/tom/internal/nav"
)

// Bridge lets goroutines outside the event loop read and drive navigation.
// Reads come from a snapshot published on every controller change; commands
// are sent into the program and applied on the event loop.
type Bridge struct {
	reg  *nav.Registry
	snap atomic.Pointer[nav.State]

	mu   sync.RWMutex
	send func(tea.Msg)
}

// NewBridge subscribes to the dashboard's controller. Call it before the
// program starts.
func NewBridge(m *DashboardModel) *Bridge {
	b := &Bridge{reg: m.reg}
	st := m.ctrl.State()
	b.snap.Store(&st)
	m.ctrl.OnChange(func(s nav.State) { b.snap.Store(&s) })
	return b
}

// Attach routes dispatched commands into p.
func (b *Bridge) Attach(p *tea.Program) {
	b.AttachFunc(p.Send)
}

// AttachFunc routes dispatched messages into send.
func (b *Bridge) AttachFunc(send func(tea.Msg)) {
	b.mu.Lock()
	b.send = send
	b.mu.Unlock()
}

// Snapshot returns the last published state.
func (b *Bridge) Snapshot() nav.State {
	return *b.snap.Load()
}

// Registry returns the read-only view table.
func (b *Bridge) Registry() *nav.Registry { return b.reg }

// Dispatch enqueues cmd for the event loop. It is dropped when no program
// is attached.
func (b *Bridge) Dispatch(cmd nav.Command) {
	b.mu.RLock()
	send := b.send
	b.mu.RUnlock()
	if send != nil {
		send(CommandMsg{Command: cmd})
	}
}
