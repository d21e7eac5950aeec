package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/medaskca/tom/internal/auth"
)

func TestLoginCmd_PassesCredentials(t *testing.T) {
	t.Parallel()

	a := &stubAuth{res: auth.Result{Success: true}}
	msg := loginCmd(a, time.Second, "nurse", "pw")()

	res, ok := msg.(loginResultMsg)
	if !ok {
		t.Fatalf("msg = %T, want loginResultMsg", msg)
	}
	if res.user != "nurse" || !res.result.Success || res.err != nil {
		t.Fatalf("result = %+v", res)
	}
	if a.gotUser != "nurse" || a.gotPass != "pw" {
		t.Fatalf("auth saw %q/%q", a.gotUser, a.gotPass)
	}
}

type deadlineAuth struct{}

func (deadlineAuth) Login(ctx context.Context, _, _ string) (auth.Result, error) {
	<-ctx.Done()
	return auth.Result{}, fmt.Errorf("%w: %v", auth.ErrUnreachable, ctx.Err())
}

func TestLoginCmd_TimesOut(t *testing.T) {
	t.Parallel()

	msg := loginCmd(deadlineAuth{}, 20*time.Millisecond, "a", "b")().(loginResultMsg)
	if !errors.Is(msg.err, auth.ErrUnreachable) {
		t.Fatalf("err = %v, want ErrUnreachable", msg.err)
	}
}

func TestLoginPage_FailureShowsMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		msg  loginResultMsg
		want string
	}{
		{"rejected", loginResultMsg{result: auth.Result{Message: "Invalid credentials"}}, "Invalid credentials"},
		{"unreachable", loginResultMsg{err: auth.ErrUnreachable}, auth.UnreachableMessage},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			called := false
			p := NewLoginPage(&stubAuth{}, time.Second, func(string) { called = true }, nil)
			p.submitting = true
			p.password = "secret"

			_, pn := p.Update(tt.msg)
			if pn != nil {
				t.Fatalf("failed login navigated to %q", pn.PageID)
			}
			if called {
				t.Fatal("onSuccess called on failure")
			}
			if p.submitting {
				t.Fatal("still submitting")
			}
			if p.errMsg != tt.want {
				t.Fatalf("errMsg = %q, want %q", p.errMsg, tt.want)
			}
			if p.password != "" {
				t.Fatal("password kept after failure")
			}
			if !strings.Contains(p.View(80, 30), tt.want) {
				t.Fatal("error not rendered")
			}
		})
	}
}

func TestLoginPage_SuccessNavigates(t *testing.T) {
	t.Parallel()

	var got string
	p := NewLoginPage(&stubAuth{}, time.Second, func(u string) { got = u }, nil)
	_, pn := p.Update(loginResultMsg{user: "nurse", result: auth.Result{Success: true}})
	if pn == nil || pn.PageID != PageDashboard {
		t.Fatalf("nav = %+v, want dashboard", pn)
	}
	if got != "nurse" {
		t.Fatalf("onSuccess user = %q", got)
	}
}

func TestLoginPage_SubmittingRendersSpinner(t *testing.T) {
	t.Parallel()

	p := NewLoginPage(&stubAuth{}, time.Second, nil, nil)
	cmd := p.submit()
	if cmd == nil {
		t.Fatal("submit returned no command")
	}
	if !p.submitting {
		t.Fatal("not submitting")
	}
	if out := p.View(80, 30); !strings.Contains(out, "Signing in") {
		t.Fatalf("view = %q", out)
	}
}
