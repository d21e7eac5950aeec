package auth

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const (
	loginPath      = "/api/auth/login"
	defaultTimeout = 10 * time.Second
	userAgent      = "tom/1"

	// UnreachableMessage is shown when the server cannot be reached or its
	// answer cannot be read.
	UnreachableMessage = "Failed to connect to the server."
	// FallbackMessage is shown when the server rejects a login without a reason.
	FallbackMessage = "An error occurred."
)

var (
	// ErrUnreachable wraps transport and decoding failures.
	ErrUnreachable = errors.New("auth server unreachable")
	// ErrMissingCredentials is returned before any request is made.
	ErrMissingCredentials = errors.New("username and password are required")
)

// Authenticator performs the login call. *Client implements it.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (Result, error)
}

var _ Authenticator = (*Client)(nil)

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Result is the server's verdict.
type Result struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	RequestID string `json:"-"`
}

// Client talks to the login endpoint.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	log     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// NewClient builds a client for the server at baseURL.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL: base,
		http:    &http.Client{Timeout: defaultTimeout},
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Login posts the credentials. A rejected login is not an error: it returns
// Result.Success == false with the server's message. Errors are reserved for
// missing input and for failures to reach or understand the server.
func (c *Client) Login(ctx context.Context, username, password string) (Result, error) {
	if c == nil {
		return Result{}, fmt.Errorf("client is nil")
	}
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return Result{}, ErrMissingCredentials
	}

	body, err := json.Marshal(Credentials{Username: username, Password: password})
	if err != nil {
		return Result{}, fmt.Errorf("encode credentials: %w", err)
	}

	reqID := uuid.NewString()
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: loginPath})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL.String(), bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", reqID)

	log := c.log.With("request_id", reqID, "user", username)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn("login request failed", "error", err)
		return Result{RequestID: reqID}, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var res Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		log.Warn("login response unreadable", "status", resp.StatusCode, "error", err)
		return Result{RequestID: reqID}, fmt.Errorf("%w: decode response (status %d): %v", ErrUnreachable, resp.StatusCode, err)
	}
	res.RequestID = reqID
	if !res.Success && strings.TrimSpace(res.Message) == "" {
		res.Message = FallbackMessage
	}
	log.Info("login answered", "status", resp.StatusCode, "success", res.Success)
	return res, nil
}

// MessageFor turns a Login outcome into the text shown to the user.
func MessageFor(res Result, err error) string {
	switch {
	case errors.Is(err, ErrUnreachable):
		return UnreachableMessage
	case err != nil:
		return err.Error()
	case !res.Success:
		return res.Message
	default:
		return ""
	}
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("auth url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse auth url %q: %w", raw, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
