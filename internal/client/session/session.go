// Package session holds "who is logged in" on the client side.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iliyamo/edusynth/internal/utils"
)

// ErrNoIdentity is returned for tokens that decode but carry no email.
var ErrNoIdentity = errors.New("token carries no identity")

// User is the profile the client persists under the user key.  The raw token
// rides along so a restored session can call protected endpoints.
type User struct {
	ID       string `json:"id,omitempty"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Token    string `json:"token,omitempty"`
}

// Session is nil-user when nobody is logged in.
type Session struct {
	User      *User
	ExpiresAt time.Time
}

// FromToken reads the profile out of a server-issued token.  The signature is
// not checked: the client has no secret, and the server verifies on every
// protected call.
func FromToken(raw string) (Session, error) {
	raw = strings.TrimSpace(raw)
	claims := &utils.Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return Session{}, fmt.Errorf("decode token: %w", err)
	}
	if claims.Email == "" {
		return Session{}, ErrNoIdentity
	}
	s := Session{User: &User{
		ID:       claims.UserID,
		FullName: claims.FullName,
		Email:    claims.Email,
		Token:    raw,
	}}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s, nil
}

// Restore rebuilds a session from a persisted profile.
func Restore(u *User) Session {
	if u == nil || u.Email == "" {
		return Session{}
	}
	s, err := FromToken(u.Token)
	if err != nil {
		cp := *u
		return Session{User: &cp}
	}
	// keep the stored profile, the token may be a login token without an id
	cp := *u
	if cp.ID == "" {
		cp.ID = s.User.ID
	}
	s.User = &cp
	return s
}

func (s Session) Authenticated() bool { return s.User != nil }

// Expired reports whether the token exp has passed.  Sessions without a
// known expiry never expire locally.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Token returns the raw bearer token or "".
func (s Session) Token() string {
	if s.User == nil {
		return ""
	}
	return s.User.Token
}
