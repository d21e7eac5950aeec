package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/medaskca/tom/internal/auth"
)

// loginResultMsg carries the outcome of the login call.
type loginResultMsg struct {
	user   string
	result auth.Result
	err    error
}

// LoginPage asks for credentials and calls the auth server before handing
// over to the dashboard.
type LoginPage struct {
	auth      auth.Authenticator
	timeout   time.Duration
	onSuccess func(user string)
	log       *slog.Logger

	form     *huh.Form
	username string
	password string

	spinner    spinner.Model
	submitting bool
	errMsg     string
}

// NewLoginPage builds the login page. onSuccess runs on the event loop once
// the server accepts the credentials.
func NewLoginPage(a auth.Authenticator, timeout time.Duration, onSuccess func(user string), log *slog.Logger) *LoginPage {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	p := &LoginPage{
		auth:      a,
		timeout:   timeout,
		onSuccess: onSuccess,
		log:       log,
		spinner:   newSpinner(),
	}
	p.form = p.newForm()
	return p
}

func (p *LoginPage) newForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&p.username).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("username is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&p.password).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("password is required")
					}
					return nil
				}),
		),
	).WithShowHelp(false)
}

func (p *LoginPage) ID() string { return PageLogin }

func (p *LoginPage) Init() tea.Cmd {
	return p.form.Init()
}

func (p *LoginPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case loginResultMsg:
		return p.handleResult(msg)

	case spinner.TickMsg:
		if !p.submitting {
			return nil, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return cmd, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return tea.Quit, nil
		}
		if p.submitting {
			return nil, nil
		}
	}

	if p.submitting {
		return nil, nil
	}

	model, cmd := p.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		p.form = f
	}

	switch p.form.State {
	case huh.StateCompleted:
		return p.submit(), nil
	case huh.StateAborted:
		return tea.Quit, nil
	}
	return cmd, nil
}

func (p *LoginPage) submit() tea.Cmd {
	p.submitting = true
	p.errMsg = ""
	user, pass := strings.TrimSpace(p.username), p.password
	p.log.Info("login submitted", "user", user)
	return tea.Batch(p.spinner.Tick, loginCmd(p.auth, p.timeout, user, pass))
}

// loginCmd performs the login off the event loop.
func loginCmd(a auth.Authenticator, timeout time.Duration, user, pass string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		res, err := a.Login(ctx, user, pass)
		return loginResultMsg{user: user, result: res, err: err}
	}
}

func (p *LoginPage) handleResult(msg loginResultMsg) (tea.Cmd, *PageNav) {
	p.submitting = false
	if msg.err == nil && msg.result.Success {
		p.log.Info("login succeeded", "user", msg.user, "request_id", msg.result.RequestID)
		p.password = ""
		if p.onSuccess != nil {
			p.onSuccess(msg.user)
		}
		return nil, &PageNav{PageID: PageDashboard}
	}

	p.errMsg = auth.MessageFor(msg.result, msg.err)
	p.log.Warn("login failed", "user", msg.user, "reason", p.errMsg, "error", msg.err)
	p.password = ""
	p.form = p.newForm()
	return p.form.Init(), nil
}

func (p *LoginPage) View(width, height int) string {
	title := lipgloss.NewStyle().
		Foreground(ColorBlue).
		Bold(true).
		Render("Theatre Operations Manager")
	sub := lipgloss.NewStyle().Foreground(ColorGray).Render("Sign in to continue")

	var body string
	if p.submitting {
		body = renderLoadingLine(p.spinner, "Signing in…")
	} else {
		body = p.form.View()
	}

	parts := []string{title, sub, "", body}
	if p.errMsg != "" {
		parts = append(parts, "", lipgloss.NewStyle().Foreground(ColorRed).Render(p.errMsg))
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBlue).
		Padding(1, 3).
		Width(min(50, max(20, width-4))).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))

	if width <= 0 || height <= 0 {
		return card
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
