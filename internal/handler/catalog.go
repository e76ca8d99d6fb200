package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/edusynth/internal/catalog"
)

// CatalogHandler serves the read-only course catalog to guests.
type CatalogHandler struct {
	Catalog *catalog.Catalog
}

func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{Catalog: c}
}

// List filters with ?search=&category=&level=&sort=popular|rating|newest.
func (h *CatalogHandler) List(c echo.Context) error {
	q := catalog.Query{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		Level:    c.QueryParam("level"),
		Sort:     c.QueryParam("sort"),
	}
	switch q.Sort {
	case "", catalog.SortPopular, catalog.SortRating, catalog.SortNewest:
	default:
		return fail(c, http.StatusBadRequest, CodeInvalidInput, "sort must be popular, rating or newest")
	}
	items := h.Catalog.Filter(q)
	return c.JSON(http.StatusOK, echo.Map{"items": items, "total": len(items)})
}

func (h *CatalogHandler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Catalog.Categories()})
}

func (h *CatalogHandler) Get(c echo.Context) error {
	it, ok := h.Catalog.ByID(c.Param("id"))
	if !ok {
		return fail(c, http.StatusNotFound, CodeNotFound, "course not found")
	}
	return c.JSON(http.StatusOK, it)
}
