package nav

import "fmt"

// CommandKind selects the transition a Command performs.
type CommandKind int

const (
	CmdSelectPage CommandKind = iota
	CmdSelectView
	CmdCloseSubmenu
	CmdGoBack
)

func (k CommandKind) String() string {
	switch k {
	case CmdSelectPage:
		return "select_page"
	case CmdSelectView:
		return "select_view"
	case CmdCloseSubmenu:
		return "close_submenu"
	case CmdGoBack:
		return "go_back"
	default:
		return fmt.Sprintf("command(%d)", int(k))
	}
}

// Command is a serializable transition request. Input sources other than
// direct method calls (keyboard map, control API) go through Apply.
type Command struct {
	Kind CommandKind
	Page Page
	View View
}

// SelectPageCmd builds a page selection command.
func SelectPageCmd(p Page) Command { return Command{Kind: CmdSelectPage, Page: p} }

// SelectViewCmd builds a view selection command.
func SelectViewCmd(v View) Command { return Command{Kind: CmdSelectView, View: v} }

// CloseSubmenuCmd builds a drawer dismissal command.
func CloseSubmenuCmd() Command { return Command{Kind: CmdCloseSubmenu} }

// GoBackCmd builds a back command.
func GoBackCmd() Command { return Command{Kind: CmdGoBack} }

// Apply runs cmd against the controller.
func (c *Controller) Apply(cmd Command) error {
	switch cmd.Kind {
	case CmdSelectPage:
		return c.SelectPage(cmd.Page)
	case CmdSelectView:
		return c.SelectView(cmd.View)
	case CmdCloseSubmenu:
		c.CloseSubmenu()
		return nil
	case CmdGoBack:
		c.GoBack()
		return nil
	default:
		return fmt.Errorf("unknown navigation command %d", int(cmd.Kind))
	}
}
