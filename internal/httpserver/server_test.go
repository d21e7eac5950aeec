package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medaskca/tom/internal/nav"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeNavigator applies commands synchronously to a real controller.
type fakeNavigator struct {
	mu   sync.Mutex
	ctrl *nav.Controller
	cmds []nav.Command
}

func (f *fakeNavigator) Snapshot() nav.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ctrl.State()
}

func (f *fakeNavigator) Registry() *nav.Registry { return f.ctrl.Registry() }

func (f *fakeNavigator) Dispatch(cmd nav.Command) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cmds = append(f.cmds, cmd)
	_ = f.ctrl.Apply(cmd)
}

func newTestServer(t *testing.T, mode nav.Mode) (*fakeNavigator, *gin.Engine) {
	t.Helper()
	fn := &fakeNavigator{ctrl: nav.New(nav.DefaultRegistry(), nav.WithMode(mode))}
	srv := NewServer("", fn, nil)
	srv.startTime = time.Now()
	return fn, srv.Handler()
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	_, r := newTestServer(t, nav.Wide)

	w := do(r, http.MethodGet, "/api/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("health status = %d, want %d", w.Code, http.StatusOK)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal health: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("health status = %v, want ok", body["status"])
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID response header")
	}
}

func TestHealthEndpoint_WrongMethod(t *testing.T) {
	_, r := newTestServer(t, nav.Wide)

	w := do(r, http.MethodPost, "/api/health", "")
	if w.Code != http.StatusMethodNotAllowed && w.Code != http.StatusNotFound {
		t.Errorf("health POST status = %d, want 405 or 404", w.Code)
	}
}

func TestRequestID_Echoed(t *testing.T) {
	_, r := newTestServer(t, nav.Wide)

	req := httptest.NewRequest(http.MethodGet, "/api/nav", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("X-Request-ID = %q, want abc-123", got)
	}
}

func TestStateEndpoint(t *testing.T) {
	_, r := newTestServer(t, nav.Compact)

	w := do(r, http.MethodGet, "/api/nav", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}
	var got stateJSON
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := stateJSON{Mode: "compact", Page: "chat", View: "chat", Title: "TOM AI", Submenu: submenuJSON{Tag: "none"}}
	if got != want {
		t.Fatalf("state = %+v, want %+v", got, want)
	}
}

func TestViewsEndpoint(t *testing.T) {
	_, r := newTestServer(t, nav.Wide)

	w := do(r, http.MethodGet, "/api/views", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Views []viewJSON `json:"views"`
		Count int        `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Count != len(nav.DefaultRegistry().Views()) || body.Count != len(body.Views) {
		t.Fatalf("count = %d, views = %d", body.Count, len(body.Views))
	}
	found := false
	for _, v := range body.Views {
		if v.ID == "theatreSchedule" {
			found = true
			if v.Group != "none" || v.Drawer != "ops" {
				t.Errorf("theatreSchedule = %+v, want ungrouped in ops drawer", v)
			}
		}
	}
	if !found {
		t.Error("theatreSchedule missing from listing")
	}
}

func TestSelectPage_DispatchesAndAccepts(t *testing.T) {
	fn, r := newTestServer(t, nav.Compact)

	w := do(r, http.MethodPost, "/api/nav/page", `{"page":"Theatres"}`)
	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202; body: %s", w.Code, w.Body.String())
	}
	st := fn.Snapshot()
	if st.Page != nav.PageTheatres || !st.Submenu.Open || st.Submenu.Tag != nav.TagOps {
		t.Fatalf("state = %+v, want theatres with ops drawer open", st)
	}
}

func TestSelectPage_Rejections(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown page", `{"page":"lobby"}`},
		{"missing field", `{}`},
		{"malformed", `{"page":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, r := newTestServer(t, nav.Wide)
			w := do(r, http.MethodPost, "/api/nav/page", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			if len(fn.cmds) != 0 {
				t.Fatalf("rejected request dispatched %v", fn.cmds)
			}
		})
	}
}

func TestSelectView_UnknownReturnsSuggestion(t *testing.T) {
	fn, r := newTestServer(t, nav.Wide)
	before := fn.Snapshot()

	w := do(r, http.MethodPost, "/api/nav/view", `{"view":"anlytics"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["suggestion"] != "analytics" {
		t.Errorf("suggestion = %q, want analytics", body["suggestion"])
	}
	if len(fn.cmds) != 0 || fn.Snapshot() != before {
		t.Fatal("unknown view reached the controller")
	}
}

func TestSelectView_Dispatches(t *testing.T) {
	fn, r := newTestServer(t, nav.Wide)

	w := do(r, http.MethodPost, "/api/nav/view", `{"view":"equipment"}`)
	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", w.Code)
	}
	st := fn.Snapshot()
	if st.View != "equipment" || st.Page != nav.PageStaff {
		t.Fatalf("state = %+v, want staff/equipment", st)
	}
}

func TestBackAndClose(t *testing.T) {
	fn, r := newTestServer(t, nav.Compact)

	for _, step := range []struct {
		path, body string
	}{
		{"/api/nav/page", `{"page":"staff"}`},
		{"/api/nav/view", `{"view":"supply"}`},
		{"/api/nav/back", ""},
	} {
		if w := do(r, http.MethodPost, step.path, step.body); w.Code != http.StatusAccepted {
			t.Fatalf("%s status = %d, want 202", step.path, w.Code)
		}
	}
	if st := fn.Snapshot(); !st.Submenu.Open || st.Submenu.Tag != nav.TagLogistics {
		t.Fatalf("after back state = %+v, want logistics drawer open", st)
	}

	if w := do(r, http.MethodPost, "/api/nav/close", ""); w.Code != http.StatusAccepted {
		t.Fatalf("close status = %d", w.Code)
	}
	st := fn.Snapshot()
	if st.Page != nav.PageFeeds || st.View != "posts" || st.Submenu.Open {
		t.Fatalf("after close state = %+v, want feeds/posts", st)
	}
}

func TestStartStop(t *testing.T) {
	fn := &fakeNavigator{ctrl: nav.New(nav.DefaultRegistry())}
	srv := NewServer("127.0.0.1:0", fn, nil)
	if err := srv.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	resp, err := http.Get("http://" + srv.Addr() + "/api/health")
	if err != nil {
		t.Fatalf("GET health: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if err := srv.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
}

func TestStop_BeforeStart(t *testing.T) {
	srv := NewServer("", &fakeNavigator{ctrl: nav.New(nil)}, nil)
	if err := srv.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
}
