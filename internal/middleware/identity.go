package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/edusynth/internal/utils"
)

const claimsKey = "claims"

func setClaims(c echo.Context, cl *utils.Claims) {
	c.Set(claimsKey, cl)
	c.Set("user_id", cl.UserID)
	c.Set("email", cl.Email)
}

// ClaimsFrom returns the claims stored by JWTAuth, or nil on public routes.
func ClaimsFrom(c echo.Context) *utils.Claims {
	cl, _ := c.Get(claimsKey).(*utils.Claims)
	return cl
}

// principal names the caller for rate-limit keys.  Login tokens carry no
// id, so the email is the stable identity; anonymous callers are "anon".
func principal(c echo.Context) string {
	if cl := ClaimsFrom(c); cl != nil {
		if cl.Email != "" {
			return cl.Email
		}
		if cl.UserID != "" {
			return cl.UserID
		}
	}
	return "anon"
}
