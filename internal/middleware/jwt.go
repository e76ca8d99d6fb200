package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/edusynth/internal/utils"
)

// TokenCookie is the HTTP-only cookie written by the login handler.
const TokenCookie = "token"

// TokenVerifier checks a raw JWT; *service.AuthService implements it.
type TokenVerifier interface {
	Verify(raw string) (*utils.Claims, error)
}

// JWTAuth guards protected routes.  The token is read from the
// Authorization header ("Bearer <jwt>") and falls back to the token cookie
// so browser sessions work without script access to the token.  Verified
// claims are stored in the context (see ClaimsFrom).
func JWTAuth(v TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := bearerOrCookie(c)
			if raw == "" {
				return unauthorized(c, "missing token")
			}
			claims, err := v.Verify(raw)
			if err != nil || claims.Email == "" {
				return unauthorized(c, "invalid token")
			}
			setClaims(c, claims)
			return next(c)
		}
	}
}

func bearerOrCookie(c echo.Context) string {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	if ck, err := c.Cookie(TokenCookie); err == nil {
		return ck.Value
	}
	return ""
}

func unauthorized(c echo.Context, msg string) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{
		"success": false,
		"message": msg,
		"code":    "unauthorized",
	})
}
