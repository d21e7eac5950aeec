package nav

import (
	"errors"
	"fmt"
	"strings"
)

// Mode is the presentation layout the dashboard is rendered in.
type Mode int

const (
	Compact Mode = iota // bottom navigation + drawer
	Wide                // persistent tab bar
)

func (m Mode) String() string {
	if m == Wide {
		return "wide"
	}
	return "compact"
}

// Page is the coarse top-level selection (bottom navigation slot).
type Page int

const (
	PageFeeds Page = iota
	PageChat
	PageTheatres
	PageStaff
	PageAlerts
	PageMenu
)

var pageNames = [...]string{"feeds", "chat", "theatres", "staff", "alerts", "menu"}

// Pages lists every page in bottom navigation order.
func Pages() []Page {
	return []Page{PageFeeds, PageChat, PageTheatres, PageStaff, PageAlerts, PageMenu}
}

func (p Page) String() string {
	if p < 0 || int(p) >= len(pageNames) {
		return fmt.Sprintf("page(%d)", int(p))
	}
	return pageNames[p]
}

// Valid reports whether p is one of the declared pages.
func (p Page) Valid() bool {
	return p >= 0 && int(p) < len(pageNames)
}

// ParsePage resolves a page name (case-insensitive).
func ParsePage(s string) (Page, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range pageNames {
		if n == name {
			return Page(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPage, s)
}

// View identifies the content rendered inside a page.
type View string

// Group partitions views for drawer routing and tab highlighting.
type Group int

const (
	GroupNone Group = iota
	GroupOps
	GroupLogistics
	GroupAccount
)

func (g Group) String() string {
	switch g {
	case GroupOps:
		return "ops"
	case GroupLogistics:
		return "logistics"
	case GroupAccount:
		return "account"
	default:
		return "none"
	}
}

// Tag names the content of the drawer.
type Tag int

const (
	TagNone Tag = iota
	TagOps
	TagLogistics
	TagMenu
)

func (t Tag) String() string {
	switch t {
	case TagOps:
		return "ops"
	case TagLogistics:
		return "logistics"
	case TagMenu:
		return "menu"
	default:
		return "none"
	}
}

// Submenu is the drawer overlay. A closed submenu keeps its tag so a reopen
// from the same page restores it.
type Submenu struct {
	Open bool
	Tag  Tag
}

// State is a value snapshot of everything the controller owns.
type State struct {
	Mode    Mode
	Page    Page
	View    View
	Submenu Submenu
}

var (
	// ErrInvalidView is returned when a view identifier is not registered.
	ErrInvalidView = errors.New("invalid view selection")
	// ErrInvalidPage is returned for unknown page values.
	ErrInvalidPage = errors.New("invalid page")
)

// InvalidViewError carries the rejected identifier and the closest known one.
type InvalidViewError struct {
	View       View
	Suggestion View
}

func (e *InvalidViewError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown view %q (did you mean %q?)", e.View, e.Suggestion)
	}
	return fmt.Sprintf("unknown view %q", e.View)
}

func (e *InvalidViewError) Unwrap() error { return ErrInvalidView }
