// Package nav holds the dashboard navigation state machine: the view registry,
// the presentation mode detector and the controller that owns page, view and
// drawer state.
package nav

import (
	"fmt"
	"io"
	"log/slog"
)

// Router receives navigation that leaves the dashboard (e.g. the profile
// screen). It is owned by the host application.
type Router interface {
	NavigateTo(route string)
}

// RouterFunc adapts a function to Router.
type RouterFunc func(route string)

func (f RouterFunc) NavigateTo(route string) { f(route) }

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for transition tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithRouter sets the receiver of external navigation events.
func WithRouter(r Router) Option {
	return func(c *Controller) { c.router = r }
}

// WithMode sets the initial presentation mode (Compact when omitted).
func WithMode(m Mode) Option {
	return func(c *Controller) { c.state.Mode = m }
}

// drawerPages is the transition table for pages that open a drawer.
var drawerPages = map[Page]Tag{
	PageTheatres: TagOps,
	PageStaff:    TagLogistics,
	PageMenu:     TagMenu,
}

// directPages is the transition table for pages bound to a single view.
var directPages = map[Page]bool{
	PageFeeds:  true,
	PageChat:   true,
	PageAlerts: true,
}

// Controller owns the navigation state. It is not safe for concurrent use;
// every method is expected to run on the UI event loop.
type Controller struct {
	reg       *Registry
	state     State
	navigated bool
	router    Router
	log       *slog.Logger
	observers []func(State)
}

// New builds a controller in the home state of its initial mode.
func New(reg *Registry, opts ...Option) *Controller {
	if reg == nil {
		reg = DefaultRegistry()
	}
	c := &Controller{
		reg: reg,
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.reset(c.state.Mode)
	return c
}

func (c *Controller) reset(m Mode) {
	home := c.reg.HomePage(m)
	c.state = State{
		Mode: m,
		Page: home,
		View: c.reg.DefaultViewOf(home, m),
	}
}

// Registry returns the view table the controller consults.
func (c *Controller) Registry() *Registry { return c.reg }

// State returns a copy of the full state bundle.
func (c *Controller) State() State { return c.state }

// Page returns the active page.
func (c *Controller) Page() Page { return c.state.Page }

// View returns the active view.
func (c *Controller) View() View { return c.state.View }

// Submenu returns the drawer state.
func (c *Controller) Submenu() Submenu { return c.state.Submenu }

// Mode returns the presentation mode.
func (c *Controller) Mode() Mode { return c.state.Mode }

// Navigated reports whether the user has made an explicit transition.
func (c *Controller) Navigated() bool { return c.navigated }

// OnChange registers fn to receive the state after every change.
func (c *Controller) OnChange(fn func(State)) {
	if fn != nil {
		c.observers = append(c.observers, fn)
	}
}

func (c *Controller) commit(op string, before State) {
	if c.state == before {
		return
	}
	c.log.Debug("navigation transition",
		"op", op,
		"mode", c.state.Mode.String(),
		"from_page", before.Page.String(),
		"from_view", string(before.View),
		"page", c.state.Page.String(),
		"view", string(c.state.View),
		"submenu_open", c.state.Submenu.Open,
		"submenu_tag", c.state.Submenu.Tag.String(),
	)
	for _, fn := range c.observers {
		fn(c.state)
	}
}

// SelectPage activates a top-level page.
func (c *Controller) SelectPage(p Page) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidPage, int(p))
	}
	before := c.state
	c.navigated = true

	switch {
	case directPages[p]:
		c.state.View = c.reg.DefaultViewOf(p, c.state.Mode)
		c.state.Submenu.Open = false
	case c.state.Mode == Compact || p == PageMenu:
		c.openSubmenu(p, drawerPages[p])
	default:
		// Wide Theatres/Staff: no drawer, keep the view if the page owns it.
		if !c.reg.Allows(p, c.state.View) {
			c.state.View = c.reg.DefaultViewOf(p, c.state.Mode)
		}
		c.state.Submenu.Open = false
	}
	c.state.Page = p

	c.commit("select_page", before)
	return nil
}

// SelectView activates a view. Unknown identifiers leave the state untouched
// and return an *InvalidViewError. A grouped view owned by another page moves
// the page with it.
func (c *Controller) SelectView(v View) error {
	if !c.reg.IsKnown(v) {
		err := &InvalidViewError{View: v, Suggestion: c.reg.Suggest(v)}
		c.log.Warn("rejected view selection", "view", string(v), "suggestion", string(err.Suggestion))
		return err
	}
	if route := c.reg.Route(v); route != "" {
		c.navigated = true
		c.log.Info("external navigation", "route", route)
		if c.router != nil {
			c.router.NavigateTo(route)
		}
		return nil
	}

	before := c.state
	c.navigated = true
	c.state.View = v
	c.state.Submenu.Open = false
	// Only grouped views pull the page along; ungrouped ones (tabs such as
	// inventory) render on whatever page is active.
	if c.reg.GroupOf(v) != GroupNone {
		if owner, ok := c.reg.PageOf(v); ok && owner != c.state.Page {
			c.state.Page = owner
		}
	}
	c.commit("select_view", before)
	return nil
}

// CloseSubmenu dismisses the drawer. Dismissing an Ops or Logistics drawer
// without choosing a view returns to the default feed. Closing an already
// closed drawer does nothing.
func (c *Controller) CloseSubmenu() {
	if !c.state.Submenu.Open {
		return
	}
	before := c.state
	c.navigated = true
	c.state.Submenu.Open = false
	switch c.state.Submenu.Tag {
	case TagOps, TagLogistics:
		c.state.Page = PageFeeds
		c.state.View = c.reg.DefaultViewOf(PageFeeds, c.state.Mode)
	}
	c.commit("close_submenu", before)
}

// GoBack returns to the page's return point: the drawer the user presumably
// came from, or the default feed.
func (c *Controller) GoBack() {
	before := c.state
	c.navigated = true

	tag, hasDrawer := drawerPages[c.state.Page]
	if hasDrawer && c.state.Page != PageMenu {
		// Same in both modes: Wide shows the drawer as a dropdown.
		c.openSubmenu(c.state.Page, tag)
	} else {
		c.state.View = c.reg.DefaultViewOf(PageFeeds, c.state.Mode)
	}
	c.commit("go_back", before)
}

// SetMode applies a presentation mode change reported by the detector.
// Before any user navigation the state is re-initialized for the new mode;
// afterwards the page and view are kept.
func (c *Controller) SetMode(m Mode) {
	if m == c.state.Mode {
		return
	}
	before := c.state
	if !c.navigated {
		c.reset(m)
	} else {
		c.state.Mode = m
		sub := c.state.Submenu
		if m == Wide && sub.Open && sub.Tag != TagMenu {
			c.state.Submenu.Open = false
		}
	}
	c.commit("set_mode", before)
}

// openSubmenu opens the drawer for p. The tag is checked against the
// registry and corrected from the page when they disagree.
func (c *Controller) openSubmenu(p Page, tag Tag) {
	want := c.reg.TagFor(p)
	if tag != want {
		c.log.Debug("corrected inconsistent drawer tag",
			"page", p.String(), "requested", tag.String(), "tag", want.String())
		tag = want
	}
	if tag == TagNone {
		c.state.Submenu.Open = false
		return
	}
	c.state.Submenu = Submenu{Open: true, Tag: tag}
}
