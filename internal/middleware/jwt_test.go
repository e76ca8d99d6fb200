package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/edusynth/internal/utils"
)

type secret string

func (s secret) Verify(raw string) (*utils.Claims, error) { return utils.ParseToken(string(s), raw) }

func protected(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.GET("/p", func(c echo.Context) error {
		cl := ClaimsFrom(c)
		require.NotNil(t, cl)
		return c.JSON(http.StatusOK, echo.Map{"email": cl.Email, "who": principal(c), "uid": c.Get("user_id")})
	}, JWTAuth(secret("k")))
	return e
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuth_BearerAndCookie(t *testing.T) {
	e := protected(t)
	tok, err := utils.NewToken("k", "u-1", "Ada", "ada@example.com", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+tok.Token)
	rec := serve(e, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"email":"ada@example.com","who":"ada@example.com","uid":"u-1"}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/p", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: tok.Token})
	assert.Equal(t, http.StatusOK, serve(e, req).Code)
}

func TestJWTAuth_Rejects(t *testing.T) {
	e := protected(t)
	wrongKey, err := utils.NewToken("other", "u-1", "Ada", "ada@example.com", time.Hour)
	require.NoError(t, err)
	expired, err := utils.NewToken("k", "u-1", "Ada", "ada@example.com", -time.Minute)
	require.NoError(t, err)
	noEmail, err := utils.NewToken("k", "u-1", "Ada", "", time.Hour)
	require.NoError(t, err)

	cases := map[string]string{
		"missing":   "",
		"garbage":   "Bearer nope",
		"wrong key": "Bearer " + wrongKey.Token,
		"expired":   "Bearer " + expired.Token,
		"no email":  "Bearer " + noEmail.Token,
		"basic":     "Basic Zm9vOmJhcg==",
	}
	for name, h := range cases {
		req := httptest.NewRequest(http.MethodGet, "/p", nil)
		if h != "" {
			req.Header.Set(echo.HeaderAuthorization, h)
		}
		rec := serve(e, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, name)
		assert.Contains(t, rec.Body.String(), `"code":"unauthorized"`, name)
	}
}

func TestPrincipal_Anonymous(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Equal(t, "anon", principal(c))
	assert.Nil(t, ClaimsFrom(c))
}
