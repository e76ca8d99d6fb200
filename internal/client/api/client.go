// Package api is the learner client's HTTP binding to the auth backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/iliyamo/edusynth/internal/client/session"
)

// TokenCookie is the HTTP-only cookie set by a successful login.
const TokenCookie = "token"

const defaultTimeout = 10 * time.Second

// Error is a {success:false} reply from the server.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %d %s: %s", e.Status, e.Code, e.Message)
}

// Is matches on Code so callers can use errors.Is with the sentinels below.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code != "" && t.Code == e.Code
}

// Sentinels for errors.Is against server failure codes.
var (
	ErrConflict           = &Error{Code: "conflict"}
	ErrNotFound           = &Error{Code: "not_found"}
	ErrInvalidCredentials = &Error{Code: "invalid_credentials"}
	ErrUnauthorized       = &Error{Code: "unauthorized"}
)

// envelope is the shape of every auth reply.
type envelope struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Code     string `json:"code,omitempty"`
	NewToken string `json:"newtoken,omitempty"`
}

// ProgressUpdate is the body of PUT /api/courses/:id.
type ProgressUpdate struct {
	CourseID         string `json:"-"`
	Progress         int    `json:"progress"`
	CompletedLessons int    `json:"completedLessons"`
}

type Client struct {
	base string
	http *http.Client
}

// New binds to baseURL (scheme://host[:port]).  A nil hc gets a client with
// a request timeout.
func New(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{base: strings.TrimRight(baseURL, "/"), http: hc}
}

// Register creates the account and returns the session carried by the
// returned token.
func (c *Client) Register(ctx context.Context, fullName, email, password string) (session.Session, error) {
	body := map[string]string{"fullName": fullName, "email": email, "password": password}
	_, env, err := c.do(ctx, http.MethodPost, "/api/sign-in", "", body)
	if err != nil {
		return session.Session{}, err
	}
	if env.NewToken == "" {
		return session.Session{}, errors.New("api: sign-in reply carried no token")
	}
	return session.FromToken(env.NewToken)
}

// Login authenticates and builds the session from the token cookie.
func (c *Client) Login(ctx context.Context, email, password string) (session.Session, error) {
	body := map[string]string{"email": email, "password": password}
	resp, _, err := c.do(ctx, http.MethodPost, "/api/login", "", body)
	if err != nil {
		return session.Session{}, err
	}
	for _, ck := range resp.Cookies() {
		if ck.Name == TokenCookie && ck.Value != "" {
			return session.FromToken(ck.Value)
		}
	}
	return session.Session{}, errors.New("api: login reply carried no token cookie")
}

// UpdateProgress pushes a course's progress for the logged-in user.
func (c *Client) UpdateProgress(ctx context.Context, token string, u ProgressUpdate) error {
	if u.CourseID == "" {
		return errors.New("api: course id required")
	}
	_, _, err := c.do(ctx, http.MethodPut, "/api/courses/"+url.PathEscape(u.CourseID), token, u)
	return err
}

func (c *Client) do(ctx context.Context, method, path, token string, body any) (*http.Response, envelope, error) {
	var env envelope
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, env, fmt.Errorf("api: encode body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, bytes.NewReader(raw))
	if err != nil {
		return nil, env, fmt.Errorf("api: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, env, fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	decErr := json.NewDecoder(resp.Body).Decode(&env)
	if resp.StatusCode >= 300 || (decErr == nil && !env.Success) {
		e := &Error{Status: resp.StatusCode, Code: env.Code, Message: env.Message}
		if e.Code == "" && resp.StatusCode == http.StatusUnauthorized {
			e.Code = ErrUnauthorized.Code
		}
		if e.Message == "" {
			e.Message = http.StatusText(resp.StatusCode)
		}
		return resp, env, e
	}
	if decErr != nil {
		return resp, env, fmt.Errorf("api: decode reply: %w", decErr)
	}
	return resp, env, nil
}
