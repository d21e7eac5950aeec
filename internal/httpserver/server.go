package httpserver

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/medaskca/tom/internal/model"
	"github.com/medaskca/tom/internal/nav"
)

// Navigator is the narrow dashboard contract required by the control API.
// Snapshot must be safe to call from any goroutine; Dispatch hands the
// command to the UI event loop and returns without waiting for it.
type Navigator interface {
	Snapshot() nav.State
	Registry() *nav.Registry
	Dispatch(cmd nav.Command)
}

// Server provides a local HTTP API for reading and driving navigation.
type Server struct {
	addr      string
	nav       Navigator
	log       *slog.Logger
	server    *http.Server
	listener  net.Listener
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
}

// NewServer creates a new control API server.
func NewServer(addr string, n Navigator, log *slog.Logger) *Server {
	if addr == "" {
		addr = model.DefaultAPIAddr
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:   addr,
		nav:    n,
		log:    log,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Handler builds the gin engine with every route registered.
func (s *Server) Handler() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestID())

	r.GET("/api/health", s.handleHealth)
	r.GET("/api/nav", s.handleState)
	r.GET("/api/views", s.handleViews)
	r.POST("/api/nav/page", s.handleSelectPage)
	r.POST("/api/nav/view", s.handleSelectView)
	r.POST("/api/nav/back", s.handleBack)
	r.POST("/api/nav/close", s.handleClose)
	return r
}

// Start binds the listener and begins serving in the background.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)

	s.server = &http.Server{
		Handler:           s.Handler(),
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.listener = listener
	s.startTime = time.Now()
	s.log.Info("control api listening", "addr", listener.Addr().String())

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("control api stopped", "error", err)
		}
	}()
	return nil
}

// Addr returns the bound address, or the configured one before Start.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)
		c.Set("request_id", id)
		c.Next()
	}
}

type submenuJSON struct {
	Open bool   `json:"open"`
	Tag  string `json:"tag"`
}

type stateJSON struct {
	Mode    string      `json:"mode"`
	Page    string      `json:"page"`
	View    string      `json:"view"`
	Title   string      `json:"title"`
	Submenu submenuJSON `json:"submenu"`
}

type viewJSON struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Group  string `json:"group"`
	Page   string `json:"page"`
	Drawer string `json:"drawer"`
	Tab    int    `json:"tab,omitempty"`
}

func (s *Server) stateBody(st nav.State) stateJSON {
	return stateJSON{
		Mode:  st.Mode.String(),
		Page:  st.Page.String(),
		View:  string(st.View),
		Title: s.nav.Registry().Title(st.View),
		Submenu: submenuJSON{
			Open: st.Submenu.Open,
			Tag:  st.Submenu.Tag.String(),
		},
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(s.startTime).String(),
	})
}

func (s *Server) handleState(c *gin.Context) {
	c.JSON(http.StatusOK, s.stateBody(s.nav.Snapshot()))
}

func (s *Server) handleViews(c *gin.Context) {
	entries := s.nav.Registry().Views()
	out := make([]viewJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, viewJSON{
			ID:     string(e.ID),
			Title:  e.Title,
			Group:  e.Group.String(),
			Page:   e.Page.String(),
			Drawer: e.Drawer.String(),
			Tab:    e.Tab,
		})
	}
	c.JSON(http.StatusOK, gin.H{"views": out, "count": len(out)})
}

func (s *Server) handleSelectPage(c *gin.Context) {
	var req struct {
		Page string `json:"page" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body or missing page field"})
		return
	}
	p, err := nav.ParsePage(req.Page)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.dispatch(c, nav.SelectPageCmd(p))
}

func (s *Server) handleSelectView(c *gin.Context) {
	var req struct {
		View string `json:"view" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body or missing view field"})
		return
	}
	v := nav.View(req.View)
	reg := s.nav.Registry()
	if !reg.IsKnown(v) {
		ive := &nav.InvalidViewError{View: v, Suggestion: reg.Suggest(v)}
		s.log.Warn("control api rejected view", "view", req.View, "request_id", c.GetString("request_id"))
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":      ive.Error(),
			"suggestion": string(ive.Suggestion),
		})
		return
	}
	s.dispatch(c, nav.SelectViewCmd(v))
}

func (s *Server) handleBack(c *gin.Context) {
	s.dispatch(c, nav.GoBackCmd())
}

func (s *Server) handleClose(c *gin.Context) {
	s.dispatch(c, nav.CloseSubmenuCmd())
}

func (s *Server) dispatch(c *gin.Context, cmd nav.Command) {
	s.nav.Dispatch(cmd)
	s.log.Debug("control api dispatched", "command", cmd.Kind.String(), "request_id", c.GetString("request_id"))
	c.JSON(http.StatusAccepted, gin.H{"accepted": cmd.Kind.String()})
}
