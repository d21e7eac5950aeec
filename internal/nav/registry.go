package nav

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

// Entry declares one view. Group and Page decide membership; Drawer lists
// the view in a submenu; Tab > 0 places it in the wide tab bar.
type Entry struct {
	ID       View
	Title    string
	Group    Group
	Page     Page
	Drawer   Tag
	Tab      int
	TabLabel string
	Route    string // non-empty: selecting the view leaves the dashboard
}

// Registry is the static view table consulted by the controller and the
// presenters. It is never mutated after construction.
type Registry struct {
	entries  []Entry
	byID     map[View]int
	defaults map[Page]View
	compact  map[Page]View
	fallback View
}

// NewRegistry indexes entries. defaults maps each page to its default view;
// compactDefaults overrides it in Compact mode.
func NewRegistry(entries []Entry, defaults, compactDefaults map[Page]View, fallback View) *Registry {
	r := &Registry{
		entries:  append([]Entry(nil), entries...),
		byID:     make(map[View]int, len(entries)),
		defaults: make(map[Page]View, len(defaults)),
		compact:  make(map[Page]View, len(compactDefaults)),
		fallback: fallback,
	}
	for i, e := range r.entries {
		if e.Drawer == TagNone {
			r.entries[i].Drawer = tagForGroup(e.Group)
		}
		r.byID[e.ID] = i
	}
	for p, v := range defaults {
		r.defaults[p] = v
	}
	for p, v := range compactDefaults {
		r.compact[p] = v
	}
	return r
}

// DefaultRegistry returns the built-in theatre operations view table.
func DefaultRegistry() *Registry {
	return NewRegistry(defaultEntries(), map[Page]View{
		PageFeeds:    "posts",
		PageChat:     "chat",
		PageAlerts:   "alerts",
		PageTheatres: "feeds",
		PageStaff:    "roster",
		PageMenu:     "settings",
	}, map[Page]View{
		PageTheatres: "dashboard",
	}, "feeds")
}

func defaultEntries() []Entry {
	return []Entry{
		{ID: "posts", Title: "Posts", Page: PageFeeds, Tab: 1, TabLabel: "Home"},
		{ID: "chat", Title: "TOM AI", Page: PageChat},
		{ID: "alerts", Title: "Alerts", Page: PageAlerts},
		{ID: "feeds", Title: "Dashboard", Page: PageTheatres, Tab: 2, TabLabel: "Dashboard"},
		{ID: "dashboard", Title: "Dashboard", Group: GroupOps, Page: PageTheatres},
		{ID: "theatreSchedule", Title: "Theatre Schedule", Page: PageTheatres, Drawer: TagOps, Tab: 3, TabLabel: "Schedule"},
		{ID: "readiness", Title: "Readiness", Group: GroupOps, Page: PageTheatres, Tab: 8, TabLabel: "Readiness"},
		{ID: "analytics", Title: "Analytics", Group: GroupOps, Page: PageTheatres, Tab: 9, TabLabel: "Analytics"},
		{ID: "roster", Title: "Roster", Group: GroupLogistics, Page: PageStaff, Tab: 4, TabLabel: "Shifts"},
		{ID: "supply", Title: "Supply", Group: GroupLogistics, Page: PageStaff},
		{ID: "equipment", Title: "Equipment", Group: GroupLogistics, Page: PageStaff, Tab: 7, TabLabel: "Equipment"},
		{ID: "procedures-preferences", Title: "Procedures & Preferences", Group: GroupLogistics, Page: PageStaff},
		{ID: "procedures", Title: "Cases", Page: PageTheatres, Tab: 5, TabLabel: "Cases"},
		{ID: "inventory", Title: "Inventory", Page: PageTheatres, Tab: 6, TabLabel: "Supplies"},
		{ID: "team-assignment", Title: "Team Assignment", Page: PageTheatres},
		{ID: "settings", Title: "Settings", Group: GroupAccount, Page: PageMenu},
		{ID: "help", Title: "Help & Support", Group: GroupAccount, Page: PageMenu},
		{ID: "profile", Title: "Profile", Group: GroupAccount, Page: PageMenu, Route: "profile"},
	}
}

func tagForGroup(g Group) Tag {
	switch g {
	case GroupOps:
		return TagOps
	case GroupLogistics:
		return TagLogistics
	case GroupAccount:
		return TagMenu
	default:
		return TagNone
	}
}

func (r *Registry) lookup(v View) (Entry, bool) {
	i, ok := r.byID[v]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// IsKnown reports whether v is a registered view.
func (r *Registry) IsKnown(v View) bool {
	_, ok := r.byID[v]
	return ok
}

// GroupOf returns the group v belongs to, GroupNone for ungrouped or unknown views.
func (r *Registry) GroupOf(v View) Group {
	e, _ := r.lookup(v)
	return e.Group
}

// PageOf returns the page that owns v.
func (r *Registry) PageOf(v View) (Page, bool) {
	e, ok := r.lookup(v)
	if !ok {
		return 0, false
	}
	return e.Page, true
}

// Allows reports whether v is in the page's allowed set.
func (r *Registry) Allows(p Page, v View) bool {
	owner, ok := r.PageOf(v)
	return ok && owner == p
}

// DefaultViewOf returns the view a page lands on in the given mode.
func (r *Registry) DefaultViewOf(p Page, m Mode) View {
	if m == Compact {
		if v, ok := r.compact[p]; ok {
			return v
		}
	}
	if v, ok := r.defaults[p]; ok {
		return v
	}
	return r.fallback
}

// HomePage is the page a fresh session starts on.
func (r *Registry) HomePage(m Mode) Page {
	if m == Compact {
		return PageChat
	}
	return PageFeeds
}

// Fallback is rendered when a presenter meets an unknown view.
func (r *Registry) Fallback() View { return r.fallback }

// TagFor returns the drawer a page opens in Compact mode.
func (r *Registry) TagFor(p Page) Tag {
	switch p {
	case PageTheatres:
		return TagOps
	case PageStaff:
		return TagLogistics
	case PageMenu:
		return TagMenu
	default:
		return TagNone
	}
}

// DrawerViews lists the views shown in a drawer, in declaration order.
func (r *Registry) DrawerViews(t Tag) []Entry {
	if t == TagNone {
		return nil
	}
	var out []Entry
	for _, e := range r.entries {
		if e.Drawer == t {
			out = append(out, e)
		}
	}
	return out
}

// Tabs lists the wide tab bar entries in slot order.
func (r *Registry) Tabs() []Entry {
	var out []Entry
	for _, e := range r.entries {
		if e.Tab > 0 {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Tab < out[j].Tab })
	return out
}

// Title returns the display title, or the raw identifier for unknown views.
func (r *Registry) Title(v View) string {
	if e, ok := r.lookup(v); ok {
		return e.Title
	}
	return string(v)
}

// Route returns the external route for views that leave the dashboard.
func (r *Registry) Route(v View) string {
	e, _ := r.lookup(v)
	return e.Route
}

// Views returns every entry in declaration order.
func (r *Registry) Views() []Entry {
	return append([]Entry(nil), r.entries...)
}

// Suggest returns the registered view closest to v by edit distance, or ""
// when nothing is reasonably close.
func (r *Registry) Suggest(v View) View {
	if len(v) == 0 {
		return ""
	}
	best := View("")
	bestDist := -1
	for _, e := range r.entries {
		d := levenshtein.ComputeDistance(string(v), string(e.ID))
		if bestDist < 0 || d < bestDist {
			best, bestDist = e.ID, d
		}
	}
	if bestDist > len(v)/2+1 {
		return ""
	}
	return best
}
