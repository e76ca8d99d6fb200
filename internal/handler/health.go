package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is the liveness probe for load balancers and compose healthchecks.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// Root answers GET / so a bare browser hit shows the API is up.
func Root(c echo.Context) error {
	return c.String(http.StatusOK, "server is working fine")
}
