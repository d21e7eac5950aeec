package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/medaskca/tom/internal/nav"
)

func TestRenderBottomNav_AllSlots(t *testing.T) {
	t.Parallel()

	out := renderBottomNav(nav.State{Page: nav.PageStaff}, 90)
	for _, p := range nav.Pages() {
		if !strings.Contains(out, bottomNavLabel(p)) {
			t.Errorf("bottom nav missing %q", bottomNavLabel(p))
		}
	}
	if w := lipgloss.Width(out); w > 90 {
		t.Errorf("bottom nav width = %d, want <= 90", w)
	}
	if renderBottomNav(nav.State{}, 0) != "" {
		t.Error("zero width should render nothing")
	}
}

func TestRenderDrawer(t *testing.T) {
	t.Parallel()

	reg := nav.DefaultRegistry()
	if got := renderDrawer(reg, nav.State{Submenu: nav.Submenu{Tag: nav.TagOps}}, 0, 40); got != "" {
		t.Fatalf("closed drawer rendered %q", got)
	}

	out := renderDrawer(reg, nav.State{Submenu: nav.Submenu{Open: true, Tag: nav.TagLogistics}}, 1, 40)
	for _, want := range []string{"Logistics", "Roster", "Supply", "Equipment", "Procedures"} {
		if !strings.Contains(out, want) {
			t.Errorf("drawer missing %q", want)
		}
	}
	if !strings.Contains(out, "› Supply") {
		t.Error("cursor row not marked")
	}
}

func TestHighlightedTab(t *testing.T) {
	t.Parallel()

	reg := nav.DefaultRegistry()
	tests := []struct {
		st   nav.State
		want int
	}{
		{nav.State{Page: nav.PageFeeds, View: "posts"}, 0},
		{nav.State{Page: nav.PageTheatres, View: "analytics"}, 8},
		{nav.State{Page: nav.PageTheatres, View: "team-assignment"}, 1}, // falls back to page default
		{nav.State{Page: nav.PageChat, View: "chat"}, -1},
	}
	for _, tt := range tests {
		if got := highlightedTab(reg, tt.st); got != tt.want {
			t.Errorf("highlightedTab(%+v) = %d, want %d", tt.st, got, tt.want)
		}
	}
}

func TestRenderTabBar(t *testing.T) {
	t.Parallel()

	out := renderTabBar(nav.DefaultRegistry(), nav.State{Mode: nav.Wide, View: "posts"}, 200)
	for _, want := range []string{"Home", "Dashboard", "Schedule", "Cases", "Supplies", "Analytics"} {
		if !strings.Contains(out, want) {
			t.Errorf("tab bar missing %q", want)
		}
	}
}

func TestContentView_FallbackForUnknown(t *testing.T) {
	t.Parallel()

	reg := nav.DefaultRegistry()
	if got := contentView(reg, nav.State{View: "ghost"}); got != reg.Fallback() {
		t.Fatalf("contentView = %q, want fallback %q", got, reg.Fallback())
	}
	out := renderContent(reg, nav.State{Mode: nav.Wide, Page: nav.PageFeeds, View: "ghost"}, "", 80, 10)
	if !strings.Contains(out, reg.Title(reg.Fallback())) {
		t.Fatalf("unknown view did not render fallback: %q", out)
	}
}

func TestRenderContent_CompactTheatresHint(t *testing.T) {
	t.Parallel()

	reg := nav.DefaultRegistry()
	st := nav.State{Mode: nav.Compact, Page: nav.PageTheatres, View: "chat"}
	if out := renderContent(reg, st, "", 120, 10); !strings.Contains(out, "Operations") {
		t.Fatalf("compact theatres without an ops view should show the hint: %q", out)
	}

	st.View = "readiness"
	if out := renderContent(reg, st, "", 120, 10); !strings.Contains(out, "Readiness") {
		t.Fatalf("ops view not rendered: %q", out)
	}
}

func TestHeaderVisible(t *testing.T) {
	t.Parallel()

	if !headerVisible(nav.State{Mode: nav.Wide, View: "posts"}) {
		t.Error("wide always shows the header")
	}
	if headerVisible(nav.State{Mode: nav.Compact, View: "posts"}) {
		t.Error("compact hides the header outside chat")
	}
	if !headerVisible(nav.State{Mode: nav.Compact, View: "chat"}) {
		t.Error("compact shows the header on chat")
	}
}
