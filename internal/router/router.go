// Package router wires handlers and middleware onto the echo instance.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/edusynth/internal/handler"
	"github.com/iliyamo/edusynth/internal/middleware"
)

// RegisterRoutes mounts the unauthenticated probes.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)
	e.GET("/healthz", handler.Health)
}

// RegisterAuth mounts the credential endpoints under /api.  limit guards
// sign-in and login only; logout and /me are cheap.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, v middleware.TokenVerifier, limit echo.MiddlewareFunc) {
	api := e.Group("/api")
	api.POST("/sign-in", a.SignIn, limit)
	api.POST("/login", a.Login, limit)
	api.POST("/logout", a.Logout)
	api.GET("/me", a.Me, middleware.JWTAuth(v))
}

// RegisterCatalog mounts the public catalog behind the response cache.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/api/catalog", cache)
	g.GET("", h.List)
	g.GET("/categories", h.Categories)
	g.GET("/:id", h.Get)
}

// RegisterProgress mounts the protected progress endpoints.
func RegisterProgress(e *echo.Echo, h *handler.ProgressHandler, v middleware.TokenVerifier) {
	g := e.Group("/api/courses", middleware.JWTAuth(v))
	g.GET("/progress", h.List)
	g.PUT("/:id", h.Update)
}
