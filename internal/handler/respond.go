package handler

import (
	"github.com/labstack/echo/v4"
)

// Failure codes carried in every {success:false} payload.  Login reports bad
// passwords with 500 for client compatibility, so the code is what tells an
// invalid password apart from a server fault.
const (
	CodeConflict           = "conflict"
	CodeNotFound           = "not_found"
	CodeInvalidCredentials = "invalid_credentials"
	CodeInvalidInput       = "invalid_input"
	CodeInternal           = "internal"
)

func fail(c echo.Context, status int, code, msg string) error {
	return c.JSON(status, echo.Map{
		"success": false,
		"message": msg,
		"code":    code,
	})
}
