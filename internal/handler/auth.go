package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/edusynth/internal/middleware"
	"github.com/iliyamo/edusynth/internal/model"
	"github.com/iliyamo/edusynth/internal/repository"
	"github.com/iliyamo/edusynth/internal/service"
)

// Authenticator is the part of service.AuthService the handlers use.
type Authenticator interface {
	Register(ctx context.Context, fullName, email, password string) (service.RegisterResult, error)
	Login(ctx context.Context, email, password string) (service.LoginResult, error)
	TTL() time.Duration
}

// UserLookup resolves the caller of /api/me.
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (model.User, error)
}

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Auth         Authenticator
	Users        UserLookup
	SecureCookie bool
}

func NewAuthHandler(a Authenticator, u UserLookup, secureCookie bool) *AuthHandler {
	return &AuthHandler{Auth: a, Users: u, SecureCookie: secureCookie}
}

const dbTimeout = 5 * time.Second

type signInReq struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type meResp struct {
	ID        string     `json:"id,omitempty"`
	FullName  string     `json:"fullName"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// SignIn registers a new account and returns its token in the body.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, CodeInvalidInput, "invalid body")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	res, err := h.Auth.Register(ctx, req.FullName, req.Email, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrConflict):
		return fail(c, http.StatusConflict, CodeConflict, "User already exists")
	case errors.Is(err, service.ErrInvalidInput):
		return fail(c, http.StatusBadRequest, CodeInvalidInput, inputMessage(err))
	default:
		c.Logger().Errorf("sign-in: %v", err)
		return fail(c, http.StatusInternalServerError, CodeInternal, "Error occurred on registering user")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success":  true,
		"message":  "User registered successfully",
		"newtoken": res.Token.Token,
	})
}

// Login verifies the credentials and sets the HTTP-only token cookie.  The
// token is not echoed in the body.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, CodeInvalidInput, "invalid body")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	res, err := h.Auth.Login(ctx, req.Email, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrNotFound):
		return fail(c, http.StatusNotFound, CodeNotFound, "User does not exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		return fail(c, http.StatusInternalServerError, CodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, service.ErrInvalidInput):
		return fail(c, http.StatusBadRequest, CodeInvalidInput, inputMessage(err))
	default:
		c.Logger().Errorf("login: %v", err)
		return fail(c, http.StatusInternalServerError, CodeInternal, "Internal server error")
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    res.Token.Token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.SecureCookie,
		SameSite: http.SameSiteLaxMode,
		Expires:  res.Token.Exp,
		MaxAge:   int(h.Auth.TTL() / time.Second),
	})
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "login successful"})
}

// Logout expires the token cookie.  Tokens are not revoked server side; a
// bearer copy stays valid until its exp.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.SecureCookie,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "logged out"})
}

// Me returns the caller's profile.  Login tokens have no id, so the stored
// record fills it in when available.
func (h *AuthHandler) Me(c echo.Context) error {
	cl := middleware.ClaimsFrom(c)
	if cl == nil {
		return fail(c, http.StatusUnauthorized, "unauthorized", "missing token")
	}
	out := meResp{ID: cl.UserID, FullName: cl.FullName, Email: cl.Email}
	if h.Users == nil {
		return c.JSON(http.StatusOK, out)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()
	u, err := h.Users.GetByEmail(ctx, cl.Email)
	switch {
	case err == nil:
		out.ID, out.FullName, out.CreatedAt = u.ID, u.FullName, &u.CreatedAt
	case errors.Is(err, repository.ErrUserNotFound):
		return fail(c, http.StatusNotFound, CodeNotFound, "User does not exists")
	default:
		c.Logger().Errorf("me: %v", err)
		return fail(c, http.StatusInternalServerError, CodeInternal, "Internal server error")
	}
	return c.JSON(http.StatusOK, out)
}

// inputMessage strips the sentinel prefix off validation errors.
func inputMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), service.ErrInvalidInput.Error()+": ")
	if msg == "" {
		return service.ErrInvalidInput.Error()
	}
	return msg
}
