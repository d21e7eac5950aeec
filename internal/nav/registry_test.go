package nav

import (
	"errors"
	"testing"
)

func TestDefaultRegistry_Groups(t *testing.T) {
	t.Parallel()

	reg := DefaultRegistry()
	tests := []struct {
		view View
		want Group
	}{
		{"dashboard", GroupOps},
		{"readiness", GroupOps},
		{"analytics", GroupOps},
		{"roster", GroupLogistics},
		{"supply", GroupLogistics},
		{"equipment", GroupLogistics},
		{"procedures-preferences", GroupLogistics},
		{"settings", GroupAccount},
		{"help", GroupAccount},
		{"profile", GroupAccount},
		{"theatreSchedule", GroupNone},
		{"posts", GroupNone},
		{"not-a-view", GroupNone},
	}
	for _, tt := range tests {
		if got := reg.GroupOf(tt.view); got != tt.want {
			t.Errorf("GroupOf(%q) = %s, want %s", tt.view, got, tt.want)
		}
	}
}

func TestDefaultRegistry_DefaultViews(t *testing.T) {
	t.Parallel()

	reg := DefaultRegistry()
	tests := []struct {
		page Page
		mode Mode
		want View
	}{
		{PageFeeds, Wide, "posts"},
		{PageChat, Compact, "chat"},
		{PageAlerts, Wide, "alerts"},
		{PageTheatres, Wide, "feeds"},
		{PageTheatres, Compact, "dashboard"},
		{PageStaff, Compact, "roster"},
		{PageMenu, Wide, "settings"},
		{Page(99), Wide, "feeds"},
	}
	for _, tt := range tests {
		if got := reg.DefaultViewOf(tt.page, tt.mode); got != tt.want {
			t.Errorf("DefaultViewOf(%s, %s) = %q, want %q", tt.page, tt.mode, got, tt.want)
		}
	}
}

func TestDefaultRegistry_DrawerListings(t *testing.T) {
	t.Parallel()

	reg := DefaultRegistry()
	tests := []struct {
		tag  Tag
		want []View
	}{
		{TagOps, []View{"dashboard", "theatreSchedule", "readiness", "analytics"}},
		{TagLogistics, []View{"roster", "supply", "equipment", "procedures-preferences"}},
		{TagMenu, []View{"settings", "help", "profile"}},
		{TagNone, nil},
	}
	for _, tt := range tests {
		got := reg.DrawerViews(tt.tag)
		if len(got) != len(tt.want) {
			t.Fatalf("DrawerViews(%s) has %d entries, want %d", tt.tag, len(got), len(tt.want))
		}
		for i := range got {
			if got[i].ID != tt.want[i] {
				t.Errorf("DrawerViews(%s)[%d] = %q, want %q", tt.tag, i, got[i].ID, tt.want[i])
			}
		}
	}
}

func TestDefaultRegistry_TabsInSlotOrder(t *testing.T) {
	t.Parallel()

	tabs := DefaultRegistry().Tabs()
	want := []string{"Home", "Dashboard", "Schedule", "Shifts", "Cases", "Supplies", "Equipment", "Readiness", "Analytics"}
	if len(tabs) != len(want) {
		t.Fatalf("got %d tabs, want %d", len(tabs), len(want))
	}
	for i, e := range tabs {
		if e.TabLabel != want[i] {
			t.Errorf("tab %d = %q, want %q", i+1, e.TabLabel, want[i])
		}
		if e.Tab != i+1 {
			t.Errorf("tab %q slot = %d, want %d", e.TabLabel, e.Tab, i+1)
		}
	}
}

func TestRegistry_AllowsOwningPageOnly(t *testing.T) {
	t.Parallel()

	reg := DefaultRegistry()
	if !reg.Allows(PageTheatres, "procedures") {
		t.Error("theatres should allow procedures")
	}
	if reg.Allows(PageStaff, "procedures") {
		t.Error("staff should not allow procedures")
	}
	if reg.Allows(PageFeeds, "unknown") {
		t.Error("unknown views are never allowed")
	}
}

func TestRegistry_HomePageAndTags(t *testing.T) {
	t.Parallel()

	reg := DefaultRegistry()
	if got := reg.HomePage(Compact); got != PageChat {
		t.Errorf("compact home = %s, want chat", got)
	}
	if got := reg.HomePage(Wide); got != PageFeeds {
		t.Errorf("wide home = %s, want feeds", got)
	}
	for p, want := range map[Page]Tag{
		PageTheatres: TagOps,
		PageStaff:    TagLogistics,
		PageMenu:     TagMenu,
		PageFeeds:    TagNone,
		PageChat:     TagNone,
		PageAlerts:   TagNone,
	} {
		if got := reg.TagFor(p); got != want {
			t.Errorf("TagFor(%s) = %s, want %s", p, got, want)
		}
	}
}

func TestRegistry_TitleAndRoute(t *testing.T) {
	t.Parallel()

	reg := DefaultRegistry()
	if got := reg.Title("procedures-preferences"); got != "Procedures & Preferences" {
		t.Errorf("title = %q", got)
	}
	if got := reg.Title("mystery"); got != "mystery" {
		t.Errorf("unknown title = %q, want raw id", got)
	}
	if got := reg.Route("profile"); got != "profile" {
		t.Errorf("profile route = %q", got)
	}
	if got := reg.Route("settings"); got != "" {
		t.Errorf("settings route = %q, want empty", got)
	}
}

func TestRegistry_Suggest(t *testing.T) {
	t.Parallel()

	reg := DefaultRegistry()
	tests := []struct {
		in   View
		want View
	}{
		{"rostr", "roster"},
		{"Analytics", "analytics"},
		{"inventroy", "inventory"},
		{"", ""},
		{"zzzzzzzzzzzzzzzzzzzz", ""},
	}
	for _, tt := range tests {
		if got := reg.Suggest(tt.in); got != tt.want {
			t.Errorf("Suggest(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParsePage(t *testing.T) {
	t.Parallel()

	for _, p := range Pages() {
		got, err := ParsePage(" " + p.String() + " ")
		if err != nil || got != p {
			t.Errorf("ParsePage(%q) = %v, %v", p.String(), got, err)
		}
	}
	if _, err := ParsePage("Theatres"); err != nil {
		t.Errorf("case-insensitive parse failed: %v", err)
	}
	if _, err := ParsePage("lobby"); !errors.Is(err, ErrInvalidPage) {
		t.Errorf("err = %v, want ErrInvalidPage", err)
	}
}
