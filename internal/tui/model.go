package tui

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/medaskca/tom/internal/nav"
	"github.com/medaskca/tom/internal/scope"
)

const errorDisplayFor = 30 * time.Second

// DashboardOptions configures NewDashboardModel.
type DashboardOptions struct {
	Registry     *nav.Registry
	CompactWidth int
	InitialWidth int // terminal width known before the first resize event
	Scope        scope.Cells
	Hospitals    []string
	DataSources  []string
	User         string
	Logger       *slog.Logger
}

// GoToState holds the go-to-view prompt.
type GoToState struct {
	gotoInput  textinput.Model
	gotoActive bool
}

// DashboardModel is the main dashboard: it owns the navigation controller
// and the mode detector and renders the presenters from their state.
type DashboardModel struct {
	ModalStackState
	GoToState

	reg      *nav.Registry
	ctrl     *nav.Controller
	detector *nav.Detector
	keys     KeyMap
	help     help.Model
	log      *slog.Logger

	// Drawer / account menu cursor.
	drawerCursor int

	scope       scope.Cells
	hospitals   []string
	dataSources []string
	user        string

	// Route requested by the controller, consumed by DashboardPage.
	pendingRoute string

	// Last error for status line display (auto-clears after 30s).
	lastError   string
	lastErrorAt time.Time

	width  int
	height int
}

// NewDashboardModel creates a dashboard. Scope cells that were not provided
// get private defaults so the header always has something to show.
func NewDashboardModel(opts DashboardOptions) *DashboardModel {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	reg := opts.Registry
	if reg == nil {
		reg = nav.DefaultRegistry()
	}
	cells := opts.Scope
	if cells.Hospital == nil || cells.DataSource == nil || cells.Listening == nil {
		_, cells = scope.ProvideAll(context.Background())
	}

	gotoInput := textinput.New()
	gotoInput.Placeholder = "view id (e.g. readiness)"
	gotoInput.CharLimit = 64
	gotoInput.Prompt = "go to: "

	m := &DashboardModel{
		GoToState:   GoToState{gotoInput: gotoInput},
		reg:         reg,
		detector:    nav.NewDetector(opts.CompactWidth),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		log:         log,
		scope:       cells,
		hospitals:   withDefault(opts.Hospitals, scope.Hospital.Default()),
		dataSources: withDefault(opts.DataSources, scope.DataSource.Default()),
		user:        opts.User,
	}
	if opts.InitialWidth > 0 {
		m.detector.Observe(opts.InitialWidth)
		m.width = opts.InitialWidth
	}

	m.ctrl = nav.New(reg,
		nav.WithMode(m.detector.Mode()),
		nav.WithLogger(log),
		nav.WithRouter(nav.RouterFunc(func(route string) { m.pendingRoute = route })),
	)
	m.detector.OnModeChange(func(mode nav.Mode) {
		log.Info("presentation mode changed", "mode", mode.String(), "threshold", m.detector.Threshold())
		m.ctrl.SetMode(mode)
	})
	m.ctrl.OnChange(func(nav.State) { m.drawerCursor = 0 })
	return m
}

func withDefault(list []string, def string) []string {
	if len(list) == 0 {
		return []string{def}
	}
	return append([]string(nil), list...)
}

// User returns the signed-in user name.
func (m *DashboardModel) User() string { return m.user }

// SetUser records the signed-in user name shown in the header.
func (m *DashboardModel) SetUser(name string) { m.user = name }

// Scope returns the scoped flag cells the dashboard reads.
func (m *DashboardModel) Scope() scope.Cells { return m.scope }

// Init initializes the model
func (m *DashboardModel) Init() tea.Cmd {
	return nil
}

// takeRoute returns and clears the pending external route.
func (m *DashboardModel) takeRoute() string {
	r := m.pendingRoute
	m.pendingRoute = ""
	return r
}

func (m *DashboardModel) setError(err error) {
	if err == nil {
		return
	}
	m.lastError = err.Error()
	m.lastErrorAt = time.Now()
}

func (m *DashboardModel) currentError() string {
	if m.lastError == "" || time.Since(m.lastErrorAt) > errorDisplayFor {
		return ""
	}
	return m.lastError
}

func (m *DashboardModel) modalContext() ModalContext {
	return ModalContext{Mode: m.ctrl.Mode()}
}

// drawerEntries lists what the open drawer shows.
func (m *DashboardModel) drawerEntries() []nav.Entry {
	sub := m.ctrl.Submenu()
	if !sub.Open {
		return nil
	}
	return m.reg.DrawerViews(sub.Tag)
}

// DashboardPage adapts DashboardModel to the Page interface.
type DashboardPage struct {
	Model *DashboardModel
}

// NewDashboardPage wraps a DashboardModel as a Page.
func NewDashboardPage(m *DashboardModel) *DashboardPage {
	return &DashboardPage{Model: m}
}

func (p *DashboardPage) ID() string { return PageDashboard }

func (p *DashboardPage) Init() tea.Cmd {
	return p.Model.Init()
}

func (p *DashboardPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	_, cmd := p.Model.Update(msg)
	if route := p.Model.takeRoute(); route != "" {
		return cmd, &PageNav{PageID: route}
	}
	return cmd, nil
}

func (p *DashboardPage) View(width, height int) string {
	p.Model.width = width
	p.Model.height = height
	return p.Model.View()
}
